package value

import (
	"cmp"
	"fmt"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// Kind is a closed enumeration with a label and a representative color.
type Kind interface {
	~int
	fmt.Stringer
	// Label returns the untranslated display label.
	Label() string
	Color() Color
}

// Enum is a qualified member of a closed enumeration.
type Enum[K Kind] struct {
	Base
	Kind K
}

// Series, Block, Phase and LatticeType are the enumerated element values.
type (
	Series      = Enum[SeriesKind]
	Block       = Enum[BlockKind]
	Phase       = Enum[PhaseKind]
	LatticeType = Enum[LatticeKind]
)

// NewEnum returns a defined enumeration value.
func NewEnum[K Kind](kind K, q Qualifier) Enum[K] {
	return Enum[K]{Base: Base{Q: q}, Kind: kind}
}

// UndefinedEnum returns an enumeration value that only carries a qualifier.
func UndefinedEnum[K Kind](q Qualifier) Enum[K] {
	return Enum[K]{Base: Base{Q: q}}
}

// Render implements QualifiedValue.
func (e Enum[K]) Render(loc *i18n.Localizer, format string) string {
	return Decorate(loc, e.Q, func() string {
		return i18n.Compose(formatOrDefault(format), loc.T(e.Kind.Label()))
	})
}

// Compare implements QualifiedValue by ordinal.
func (e Enum[K]) Compare(other QualifiedValue) int {
	if result, decided := CompareBase(e, other); decided {
		return result
	}
	if o, ok := other.(Enum[K]); ok {
		return cmp.Compare(int(e.Kind), int(o.Kind))
	}
	return 0
}

// Color implements Colored.
func (e Enum[K]) Color() Color {
	if !e.HasValue() {
		return UndefinedColor
	}
	return e.Kind.Color()
}

type kindInfo struct {
	name  string
	label string
	color Color
}

func lookupKind(table []kindInfo, i int) (kindInfo, bool) {
	if i < 0 || i >= len(table) {
		return kindInfo{}, false
	}
	return table[i], true
}

func parseKind(table []kindInfo, what, name string) (int, error) {
	for i, info := range table {
		if info.name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, name)
}

// SeriesKind is a chemical series.
type SeriesKind int

const (
	Nonmetal SeriesKind = iota
	NobleGas
	AlkaliMetal
	AlkalineEarthMetal
	Semimetal
	Halogen
	PostTransitionMetal
	TransitionMetal
	Lanthanide
	Actinide
)

var seriesKinds = []kindInfo{
	Nonmetal:            {"nonmetal", "Nonmetals", Chameleon},
	NobleGas:            {"noble gas", "Noble gases", SkyBlue},
	AlkaliMetal:         {"alkali metal", "Alkali metals", DarkScarletRed},
	AlkalineEarthMetal:  {"alkaline earth metal", "Alkaline earth metals", Orange},
	Semimetal:           {"semimetal", "Semimetals", LightChocolate},
	Halogen:             {"halogen", "Halogens", Butter},
	PostTransitionMetal: {"post-transition metal", "Post-transition metals", MediumAluminium},
	TransitionMetal:     {"transition metal", "Transition metals", LightScarletRed},
	Lanthanide:          {"lanthanide", "Lanthanides", LightPlum},
	Actinide:            {"actinide", "Actinides", DarkPlum},
}

// SeriesKinds lists every chemical series in ordinal order.
func SeriesKinds() []SeriesKind {
	kinds := make([]SeriesKind, len(seriesKinds))
	for i := range kinds {
		kinds[i] = SeriesKind(i)
	}
	return kinds
}

// ParseSeries maps a data-file name to a SeriesKind.
func ParseSeries(name string) (SeriesKind, error) {
	i, err := parseKind(seriesKinds, "series", name)
	return SeriesKind(i), err
}

func (k SeriesKind) String() string {
	if info, ok := lookupKind(seriesKinds, int(k)); ok {
		return info.name
	}
	return fmt.Sprintf("series(%d)", int(k))
}

// Label implements Kind.
func (k SeriesKind) Label() string {
	if info, ok := lookupKind(seriesKinds, int(k)); ok {
		return info.label
	}
	return "(unknown)"
}

// Color implements Kind.
func (k SeriesKind) Color() Color {
	if info, ok := lookupKind(seriesKinds, int(k)); ok {
		return info.color
	}
	return UndefinedColor
}

// BlockKind is a periodic table block.
type BlockKind int

const (
	BlockS BlockKind = iota
	BlockP
	BlockD
	BlockF
)

var blockKinds = []kindInfo{
	BlockS: {"s", "s-block", Orange},
	BlockP: {"p", "p-block", Butter},
	BlockD: {"d", "d-block", LightScarletRed},
	BlockF: {"f", "f-block", DarkPlum},
}

// ParseBlock maps a data-file name to a BlockKind.
func ParseBlock(name string) (BlockKind, error) {
	i, err := parseKind(blockKinds, "block", name)
	return BlockKind(i), err
}

func (k BlockKind) String() string {
	if info, ok := lookupKind(blockKinds, int(k)); ok {
		return info.name
	}
	return fmt.Sprintf("block(%d)", int(k))
}

// Label implements Kind.
func (k BlockKind) Label() string {
	if info, ok := lookupKind(blockKinds, int(k)); ok {
		return info.label
	}
	return "(unknown)"
}

// Color implements Kind.
func (k BlockKind) Color() Color {
	if info, ok := lookupKind(blockKinds, int(k)); ok {
		return info.color
	}
	return UndefinedColor
}

// PhaseKind is a phase of matter.
type PhaseKind int

const (
	Solid PhaseKind = iota
	Liquid
	Gas
)

var phaseKinds = []kindInfo{
	Solid:  {"solid", "Solid", LightChocolate},
	Liquid: {"liquid", "Liquid", Chameleon},
	Gas:    {"gas", "Gas", SkyBlue},
}

func (k PhaseKind) String() string {
	if info, ok := lookupKind(phaseKinds, int(k)); ok {
		return info.name
	}
	return fmt.Sprintf("phase(%d)", int(k))
}

// Label implements Kind.
func (k PhaseKind) Label() string {
	if info, ok := lookupKind(phaseKinds, int(k)); ok {
		return info.label
	}
	return "(unknown)"
}

// Color implements Kind.
func (k PhaseKind) Color() Color {
	if info, ok := lookupKind(phaseKinds, int(k)); ok {
		return info.color
	}
	return UndefinedColor
}

// LatticeKind is a crystal lattice type.
type LatticeKind int

const (
	Triclinic LatticeKind = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	Rhombohedral
	Hexagonal
	SimpleCubic
	BodyCenteredCubic
	FaceCenteredCubic
)

var latticeKinds = []kindInfo{
	Triclinic:         {"tri", "Triclinic", Chameleon},
	Monoclinic:        {"mono", "Monoclinic", SkyBlue},
	Orthorhombic:      {"orth", "Orthorhombic", Orange},
	Tetragonal:        {"tet", "Tetragonal", Butter},
	Rhombohedral:      {"rho", "Rhombohedral", MediumAluminium},
	Hexagonal:         {"hex", "Hexagonal", LightScarletRed},
	SimpleCubic:       {"sc", "Simple cubic", DarkPlum},
	BodyCenteredCubic: {"bcc", "Body-centered cubic", DarkPlum},
	FaceCenteredCubic: {"fcc", "Face-centered cubic", DarkPlum},
}

// ParseLattice maps a data-file name to a LatticeKind.
func ParseLattice(name string) (LatticeKind, error) {
	i, err := parseKind(latticeKinds, "lattice type", name)
	return LatticeKind(i), err
}

func (k LatticeKind) String() string {
	if info, ok := lookupKind(latticeKinds, int(k)); ok {
		return info.name
	}
	return fmt.Sprintf("lattice(%d)", int(k))
}

// Label implements Kind.
func (k LatticeKind) Label() string {
	if info, ok := lookupKind(latticeKinds, int(k)); ok {
		return info.label
	}
	return "(unknown)"
}

// Color implements Kind.
func (k LatticeKind) Color() Color {
	if info, ok := lookupKind(latticeKinds, int(k)); ok {
		return info.color
	}
	return UndefinedColor
}
