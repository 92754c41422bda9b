package element

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// PropertyID identifies one of the fixed element properties. The order is
// the display order within each category.
type PropertyID int

const (
	Name PropertyID = iota
	OfficialName
	AlternateName
	Symbol
	AtomicNumber
	Series
	Group
	Period
	Block

	Discovery
	DiscoveredBy
	Etymology

	Phase
	DensitySolid
	DensityLiquid
	DensityGas
	Appearance

	MeltingPoint
	BoilingPoint
	FusionHeat
	VaporizationHeat
	SpecificHeat
	ThermalConductivity
	DebyeTemperature

	AtomicMass
	AtomicVolume
	AtomicRadius
	CovalentRadius
	VanDerWaalsRadius
	IonicRadii

	LatticeType
	SpaceGroup
	LatticeEdges
	LatticeAngles
	LatticeVolume

	Configuration
	OxidationStates
	Electronegativity
	ElectronAffinity
	FirstEnergy

	Color
	Notes

	propertyCount
)

// Kind names the value shape a property holds.
type Kind int

const (
	KindMessage Kind = iota
	KindString
	KindSymbol
	KindNumber
	KindSeries
	KindInt
	KindBlock
	KindEvent
	KindPhase
	KindFloat
	KindLatticeType
	KindFloatList
	KindIntList
	KindColor
)

// Property describes one element property. Properties are immutable and
// shared for the lifetime of the process.
type Property struct {
	ID          PropertyID
	Key         string
	Name        string
	Format      string
	Description string
	Sources     []Source
	Kind        Kind
}

var properties = [propertyCount]*Property{
	Name: {
		Key: "name", Name: "Name", Kind: KindMessage,
		Description: "The name most commonly used for the element in scientific contexts in the display language.",
		Sources:     []Source{PureAppl1997, PureAppl2003, PureAppl2004},
	},
	OfficialName: {
		Key: "official_name", Name: "Official name", Kind: KindString,
		Description: "The official IUPAC English name of the element.",
		Sources:     []Source{IUPACRecommendation},
	},
	AlternateName: {
		Key: "alternate_name", Name: "Alternate name", Kind: KindString,
		Description: "A recognized alternate name for the element, if any.",
		Sources:     []Source{IUPACRecommendation},
	},
	Symbol: {
		Key: "symbol", Name: "Symbol", Kind: KindSymbol,
		Description: "The chemical symbol for the element.",
		Sources:     []Source{PureAppl1997, PureAppl2003, PureAppl2004},
	},
	AtomicNumber: {
		Key: "number", Name: "Atomic number", Kind: KindNumber,
		Description: "The atomic number of the element.",
		Sources:     []Source{IUPACRecommendation},
	},
	Series: {
		Key: "series", Name: "Series", Kind: KindSeries,
		Description: "The chemical series in which the element is generally classified.",
		Sources:     []Source{Unsourced},
	},
	Group: {
		Key: "group", Name: "Group", Kind: KindInt,
		Description: "The periodic table group to which the element belongs, if any.",
		Sources:     []Source{IUPACRecommendation},
	},
	Period: {
		Key: "period", Name: "Period", Kind: KindInt,
		Description: "The periodic table period to which the element belongs.",
		Sources:     []Source{IUPACRecommendation},
	},
	Block: {
		Key: "block", Name: "Block", Kind: KindBlock,
		Description: "The periodic table block to which the element belongs.",
		Sources:     []Source{IUPACRecommendation},
	},

	Discovery: {
		Key: "discovery", Name: "Discovery", Kind: KindEvent,
		Description: "The year and place (country) of the element's discovery. Forward slashes indicate simultaneous, unrelated discoveries.",
		Sources:     []Source{Unsourced},
	},
	DiscoveredBy: {
		Key: "discovered_by", Name: "Discovered by", Kind: KindMessage,
		Description: "The people and/or institutions which first discovered the element. Forward slashes indicate simultaneous, unrelated discoveries. Commas indicate multiple people and/or places in collaboration.",
		Sources:     []Source{Unsourced},
	},
	Etymology: {
		Key: "etymology", Name: "Etymology", Kind: KindMessage,
		Description: "The origin of the element name in the general format &quot;Language: word (meaning)&quot;. If an alternate name exists, its etymology may appear. Unrelated etymologies are separated by semicolons.",
		Sources:     []Source{Unsourced},
	},

	Phase: {
		Key: "phase", Name: "Phase", Kind: KindPhase, Format: "%1 at 0 deg. C",
		Description: "The phase of matter assumed by the element at standard pressure and a given temperature. By default, the IUPAC standard temperature is used.",
		Sources:     []Source{Calculated},
	},
	DensitySolid: {
		Key: "density_solid", Name: "Density, solid", Kind: KindFloat, Format: "%1 g/cm<sup>3</sup> at 20 deg. C",
		Description: "The density of the element as a solid at 20 degrees Celsius, if applicable, in grams per cubic centimeter.",
		Sources:     []Source{James1992, Lide1996, Dean1992, Kaye1993, Dean1999, Lide2003},
	},
	DensityLiquid: {
		Key: "density_liquid", Name: "Density, liquid", Kind: KindFloat, Format: "%1 g/cm<sup>3</sup> at melting point",
		Description: "The density of the element as a liquid at its melting point, if applicable, in grams per cubic centimeter.",
		Sources:     []Source{Lide2003, Dean1999},
	},
	DensityGas: {
		Key: "density_gas", Name: "Density, gas", Kind: KindFloat, Format: "%1 g/L at 0 deg. C",
		Description: "The density of the element as a gas at zero degrees Celsius, if applicable, in grams per liter.",
		Sources:     []Source{Lide2003, Dean1999, Kuchling1991},
	},
	Appearance: {
		Key: "appearance", Name: "Appearance", Kind: KindMessage,
		Description: "The general appearance of the most common form of the element.",
		Sources:     []Source{Unsourced},
	},

	MeltingPoint: {
		Key: "melting_point", Name: "Melting point", Kind: KindFloat, Format: "%1 K",
		Description: "The melting point of the element in Kelvin.",
		Sources:     []Source{James1992, Kaye1993, Lide2003, Dean1999},
	},
	BoilingPoint: {
		Key: "boiling_point", Name: "Boiling point", Kind: KindFloat, Format: "%1 K",
		Description: "The boiling point of the element in Kelvin.",
		Sources:     []Source{James1992, Kaye1993, Lide2003, Dean1999},
	},
	FusionHeat: {
		Key: "fusion_heat", Name: "Heat of fusion", Kind: KindFloat, Format: "%1 kJ/mol",
		Description: "The heat of fusion of the element in kilojoules per mole.",
		Sources:     []Source{Lide2003, Dean1999, Kaye1993, Lide1998, James1992, Ellis1972},
	},
	VaporizationHeat: {
		Key: "vaporization_heat", Name: "Heat of vaporization", Kind: KindFloat, Format: "%1 kJ/mol",
		Description: "The heat of vaporization of the element in kilojoules per mole.",
		Sources:     []Source{Lide2003, Dean1999, Kaye1993, Lide1998, James1992, Ellis1972},
	},
	SpecificHeat: {
		Key: "specific_heat", Name: "Specific heat capacity", Kind: KindFloat, Format: "%1 J/(g*K) at 25 deg. C",
		Description: "The specific heat of the element at 25 degrees Celsius, in joules per gram-Kelvin.",
		Sources:     []Source{Lide2003},
	},
	ThermalConductivity: {
		Key: "thermal_conductivity", Name: "Thermal conductivity", Kind: KindFloat, Format: "%1 W/(m*K) at 300 K",
		Description: "The thermal conductivity of the element at 300 Kelvin, in watts per meter-Kelvin.",
		Sources:     []Source{Lide2003, Ho1974, Kaye1993, Lide1998, Dean1992, James1992},
	},
	DebyeTemperature: {
		Key: "debye_temperature", Name: "Debye temperature", Kind: KindFloat, Format: "%1 K",
		Description: "The Debye temperature of the element in Kelvin.",
		Sources:     []Source{Unsourced},
	},

	AtomicMass: {
		Key: "atomic_mass", Name: "Atomic mass", Kind: KindFloat, Format: "%1 g/mol",
		Description: "The atomic mass of the element in grams per mole.",
		Sources:     []Source{Wieser2006},
	},
	AtomicVolume: {
		Key: "atomic_volume", Name: "Atomic volume", Kind: KindFloat, Format: "%1 cm<sup>3</sup>/mol",
		Description: "The volume of the element in cubic centimeters per mole.",
		Sources:     []Source{Unsourced},
	},
	AtomicRadius: {
		Key: "atomic_radius", Name: "Atomic radius", Kind: KindFloat, Format: "%1 pm",
		Description: "The atomic radius of the element in picometers.",
		Sources:     []Source{Slater1964, Clementi1963},
	},
	CovalentRadius: {
		Key: "covalent_radius", Name: "Covalent radius", Kind: KindFloat, Format: "%1 pm",
		Description: "The covalent radius of the element in picometers.",
		Sources:     []Source{Sanderson1962, Sutton1965, Huheey1993, Porterfield1984, James1992},
	},
	VanDerWaalsRadius: {
		Key: "van_der_waals_radius", Name: "Van der Waals radius", Kind: KindFloat, Format: "%1 pm",
		Description: "The van der Waals radius of the element in picometers.",
		Sources:     []Source{Bondi1964, Batsanov2001},
	},
	IonicRadii: {
		Key: "ionic_radii", Name: "Ionic radii", Kind: KindString, Format: "%1 pm",
		Description: "The radii of the element's ions, if any, in picometers. The general format is &quot;radius (ion)&quot;.",
		Sources:     []Source{Unsourced},
	},

	LatticeType: {
		Key: "lattice_type", Name: "Lattice type", Kind: KindLatticeType,
		Description: "The type of crystal lattice structure assumed by the element as a solid under normal conditions.",
		Sources:     []Source{WebElementsCrystal},
	},
	SpaceGroup: {
		Key: "space_group", Name: "Space group", Kind: KindInt,
		Description: "The space group number of the element's crystal structure.",
		Sources:     []Source{WebElementsCrystal},
	},
	LatticeEdges: {
		Key: "lattice_edges", Name: "Lattice edge lengths", Kind: KindFloatList, Format: "%1 pm",
		Description: "The lengths, in picometers, of the a, b, and c edges of a unit cell in the element's crystal structure.",
		Sources:     []Source{WebElementsCrystal},
	},
	LatticeAngles: {
		Key: "lattice_angles", Name: "Lattice angles", Kind: KindFloatList, Format: "%1 deg.",
		Description: "The alpha, beta, and gamma angles, in degrees, between the edges of a unit cell in the element's crystal structure.",
		Sources:     []Source{WebElementsCrystal},
	},
	LatticeVolume: {
		Key: "lattice_volume", Name: "Lattice unit volume", Kind: KindFloat, Format: "%1 nm<sup>3</sup>",
		Description: "The volume of a unit cell in the element's crystal structure, in cubic nanometers.",
		Sources:     []Source{Calculated},
	},

	Configuration: {
		Key: "configuration", Name: "Electron configuration", Kind: KindString,
		Description: "The electron configuration of the element, in standard format.",
		Sources:     []Source{Lide2003},
	},
	OxidationStates: {
		Key: "oxidation_states", Name: "Oxidation states", Kind: KindIntList,
		Description: "The oxidation states of the element, if any.",
		Sources:     []Source{Unsourced},
	},
	Electronegativity: {
		Key: "electronegativity", Name: "Electronegativity", Kind: KindFloat, Format: "%1 (Pauling scale)",
		Description: "The electronegativity of the element on the Pauling scale.",
		Sources:     []Source{Pauling1960, Huheey1993, Allred1961},
	},
	ElectronAffinity: {
		Key: "electron_affinity", Name: "Electron affinity", Kind: KindFloat, Format: "%1 kJ/mol",
		Description: "The electron affinity of the element in kilojoules per mole.",
		Sources:     []Source{WikipediaAffinity},
	},
	FirstEnergy: {
		Key: "first_energy", Name: "First ionization energy", Kind: KindFloat, Format: "%1 kJ/mol",
		Description: "The first ionization energy of the element in kilojoules per mole.",
		Sources:     []Source{Huheey1993, James1992, Lide2003},
	},

	Color: {
		Key: "color", Name: "Symbolic color", Kind: KindColor,
		Description: "A color representative of the element.",
		Sources:     []Source{BODRConsensus},
	},
	Notes: {
		Key: "notes", Name: "Notes", Kind: KindMessage,
		Description: "Notes, if any, clarifying other information.",
		Sources:     []Source{Calculated},
	},
}

func init() {
	for id, p := range properties {
		p.ID = PropertyID(id)
	}
}

// Properties returns every property in declaration order.
func Properties() []*Property {
	out := make([]*Property, len(properties))
	copy(out, properties[:])
	return out
}

// Property returns the descriptor of id, or nil for an unknown id.
func (id PropertyID) Property() *Property {
	if !id.Valid() {
		return nil
	}
	return properties[id]
}

// Valid reports whether id names a known property.
func (id PropertyID) Valid() bool {
	return id >= 0 && id < propertyCount
}

func (id PropertyID) String() string {
	if p := id.Property(); p != nil {
		return p.Key
	}
	return fmt.Sprintf("property(%d)", int(id))
}

// LookupProperty finds a property by key or by English name, ignoring case.
func LookupProperty(name string) (*Property, error) {
	needle := strings.TrimSpace(name)
	normalized := strings.ReplaceAll(strings.ToLower(needle), "-", "_")
	for _, p := range properties {
		if p.Key == normalized || strings.EqualFold(p.Name, needle) {
			return p, nil
		}
	}
	return nil, elerrors.NewLookupError(elerrors.UnknownProperty, name)
}

// Structural reports whether the property is identity data rather than a
// qualified value.
func (p *Property) Structural() bool {
	return p.Kind == KindSymbol || p.Kind == KindNumber
}

// Scaled reports whether the property tracks a numeric scale.
func (p *Property) Scaled() bool {
	return p.Kind == KindFloat
}

// Colored reports whether values of the property carry their own color.
func (p *Property) Colored() bool {
	switch p.Kind {
	case KindSeries, KindBlock, KindPhase, KindLatticeType, KindColor:
		return true
	default:
		return false
	}
}

// Colorable reports whether elements can be colored by the property: either
// its values carry a color or it has a valid numeric scale.
func (p *Property) Colorable(scales ScaleSource) bool {
	if p.Colored() {
		return true
	}
	if !p.Scaled() || scales == nil {
		return false
	}
	scale, err := scales.Scale(p.ID)
	return err == nil && scale.Valid()
}

// DisplayName returns the translated property name.
func (p *Property) DisplayName(loc *i18n.Localizer) string {
	return loc.T(p.Name)
}

// Label returns the translated entry label, such as "Melting point:".
func (p *Property) Label(loc *i18n.Localizer) string {
	return loc.Tf("%1:", p.DisplayName(loc))
}

// LocalizedFormat returns the translated value format, or "" if the property
// has none.
func (p *Property) LocalizedFormat(loc *i18n.Localizer) string {
	if p.Format == "" {
		return ""
	}
	return loc.T(p.Format)
}

// LocalizedDescription returns the translated description.
func (p *Property) LocalizedDescription(loc *i18n.Localizer) string {
	return loc.T(p.Description)
}

// Emit pushes v to view under the property label and format.
func (p *Property) Emit(view entries.View, v value.QualifiedValue, loc *i18n.Localizer) {
	p.EmitFormatted(view, v, loc, p.LocalizedFormat(loc))
}

// EmitFormatted pushes v to view under the property label with an explicit
// localized format.
func (p *Property) EmitFormatted(view entries.View, v value.QualifiedValue, loc *i18n.Localizer, format string) {
	value.Emit(view, v, loc, p.Label(loc), format)
}

// EmitText pushes plain text to view under the property label.
func (p *Property) EmitText(view entries.View, text string, loc *i18n.Localizer) {
	p.Emit(view, value.NewValue(text, value.Neutral), loc)
}
