// Package element describes chemical elements: the fixed set of properties
// and categories, numeric scales, and the Element type that exposes a raw
// data row through typed, qualified values.
package element

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// StandardTemperature is the IUPAC standard temperature in Kelvin.
const StandardTemperature = 273.15

const (
	degreesToRadians = math.Pi / 180
	picometersToNano = 0.001
	volumeResolution = 0.001
)

// Element is one chemical element. It refers to its raw record, which must
// outlive it, and holds the values derived from that record.
type Element struct {
	rec *Record
	loc *i18n.Localizer

	officialName  value.String
	standardPhase value.Phase
	latticeVolume value.Float
}

// New builds an Element for rec, rendering and collating text in the
// language of loc.
func New(rec *Record, loc *i18n.Localizer) *Element {
	if loc == nil {
		loc = i18n.Default()
	}

	e := &Element{
		rec:          rec,
		loc:          loc,
		officialName: value.Undefined[string](value.NotApplicable),
	}
	if rec.Name.HasValue() && rec.Name.Source() != rec.Name.Render(loc, "") {
		e.officialName = value.NewValue(rec.Name.Source(), value.Neutral)
	}
	e.standardPhase = e.PhaseAt(StandardTemperature)
	e.latticeVolume = latticeVolume(rec)
	return e
}

// Record returns the raw data row.
func (e *Element) Record() *Record { return e.rec }

// Localizer returns the display language of the element.
func (e *Element) Localizer() *i18n.Localizer { return e.loc }

// Symbol returns the chemical symbol.
func (e *Element) Symbol() string { return e.rec.Symbol }

// Number returns the atomic number.
func (e *Element) Number() int { return e.rec.Number }

// Name returns the rendered display name.
func (e *Element) Name() string {
	return e.rec.Name.Render(e.loc, "")
}

// OfficialName returns the untranslated name when translation changed the
// displayed name, and NotApplicable otherwise.
func (e *Element) OfficialName() value.String { return e.officialName }

// StandardPhase returns the phase at StandardTemperature.
func (e *Element) StandardPhase() value.Phase { return e.standardPhase }

// LatticeVolume returns the unit cell volume in cubic nanometers.
func (e *Element) LatticeVolume() value.Float { return e.latticeVolume }

func (e *Element) message(m value.Message) value.Message {
	return m.In(e.loc)
}

var accessors = map[PropertyID]func(*Element) value.QualifiedValue{
	Name:          func(e *Element) value.QualifiedValue { return e.message(e.rec.Name) },
	OfficialName:  func(e *Element) value.QualifiedValue { return e.officialName },
	AlternateName: func(e *Element) value.QualifiedValue { return e.rec.AlternateName },
	Series:        func(e *Element) value.QualifiedValue { return e.rec.Series },
	Group:         func(e *Element) value.QualifiedValue { return e.rec.Group },
	Period:        func(e *Element) value.QualifiedValue { return e.rec.Period },
	Block:         func(e *Element) value.QualifiedValue { return e.rec.Block },

	Discovery:    func(e *Element) value.QualifiedValue { return e.rec.Discovery },
	DiscoveredBy: func(e *Element) value.QualifiedValue { return e.message(e.rec.DiscoveredBy) },
	Etymology:    func(e *Element) value.QualifiedValue { return e.message(e.rec.Etymology) },

	Phase:         func(e *Element) value.QualifiedValue { return e.standardPhase },
	DensitySolid:  func(e *Element) value.QualifiedValue { return e.rec.DensitySolid },
	DensityLiquid: func(e *Element) value.QualifiedValue { return e.rec.DensityLiquid },
	DensityGas:    func(e *Element) value.QualifiedValue { return e.rec.DensityGas },
	Appearance:    func(e *Element) value.QualifiedValue { return e.message(e.rec.Appearance) },

	MeltingPoint:        func(e *Element) value.QualifiedValue { return e.rec.MeltingPoint },
	BoilingPoint:        func(e *Element) value.QualifiedValue { return e.rec.BoilingPoint },
	FusionHeat:          func(e *Element) value.QualifiedValue { return e.rec.FusionHeat },
	VaporizationHeat:    func(e *Element) value.QualifiedValue { return e.rec.VaporizationHeat },
	SpecificHeat:        func(e *Element) value.QualifiedValue { return e.rec.SpecificHeat },
	ThermalConductivity: func(e *Element) value.QualifiedValue { return e.rec.ThermalConductivity },
	DebyeTemperature:    func(e *Element) value.QualifiedValue { return e.rec.DebyeTemperature },

	AtomicMass:        func(e *Element) value.QualifiedValue { return e.rec.AtomicMass },
	AtomicVolume:      func(e *Element) value.QualifiedValue { return e.rec.AtomicVolume },
	AtomicRadius:      func(e *Element) value.QualifiedValue { return e.rec.AtomicRadius },
	CovalentRadius:    func(e *Element) value.QualifiedValue { return e.rec.CovalentRadius },
	VanDerWaalsRadius: func(e *Element) value.QualifiedValue { return e.rec.VanDerWaalsRadius },
	IonicRadii:        func(e *Element) value.QualifiedValue { return e.rec.IonicRadii },

	LatticeType:   func(e *Element) value.QualifiedValue { return e.rec.LatticeType },
	SpaceGroup:    func(e *Element) value.QualifiedValue { return e.rec.SpaceGroup },
	LatticeEdges:  func(e *Element) value.QualifiedValue { return e.rec.LatticeEdges },
	LatticeAngles: func(e *Element) value.QualifiedValue { return e.rec.LatticeAngles },
	LatticeVolume: func(e *Element) value.QualifiedValue { return e.latticeVolume },

	Configuration:     func(e *Element) value.QualifiedValue { return e.rec.Configuration },
	OxidationStates:   func(e *Element) value.QualifiedValue { return e.rec.OxidationStates },
	Electronegativity: func(e *Element) value.QualifiedValue { return e.rec.Electronegativity },
	ElectronAffinity:  func(e *Element) value.QualifiedValue { return e.rec.ElectronAffinity },
	FirstEnergy:       func(e *Element) value.QualifiedValue { return e.rec.FirstEnergy },

	Color: func(e *Element) value.QualifiedValue { return e.rec.Color },
	Notes: func(e *Element) value.QualifiedValue { return e.message(e.rec.Notes) },
}

// Property returns the qualified value of id. Symbol and atomic number are
// not qualified values; use StructuralValue for them.
func (e *Element) Property(id PropertyID) (value.QualifiedValue, error) {
	if p := id.Property(); p != nil && p.Structural() {
		return nil, elerrors.NewLookupError(elerrors.NotValueProperty, id.String())
	}
	get, ok := accessors[id]
	if !ok {
		return nil, elerrors.NewLookupError(elerrors.UnknownProperty, id.String())
	}
	return get(e), nil
}

// PropertyAs returns the value of id as T, failing when the property holds
// a different shape.
func PropertyAs[T value.QualifiedValue](e *Element, id PropertyID) (T, error) {
	var zero T
	v, err := e.Property(id)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, elerrors.NewLookupError(elerrors.KindMismatch, fmt.Sprintf("%s holds %T, not %T", id, v, zero))
	}
	return typed, nil
}

// StructuralValue returns the text of the symbol or atomic number.
func (e *Element) StructuralValue(id PropertyID) (string, error) {
	switch id {
	case Symbol:
		return e.rec.Symbol, nil
	case AtomicNumber:
		return strconv.Itoa(e.rec.Number), nil
	default:
		return "", elerrors.NewLookupError(elerrors.KindMismatch, id.String()+" is not structural")
	}
}

// PropertyColor returns the color representing the element for id: the
// value's own color, or the scale gradient color for numeric properties.
func (e *Element) PropertyColor(id PropertyID, scales ScaleSource, logarithmic bool) (value.Color, error) {
	v, err := e.Property(id)
	if err != nil {
		return value.UndefinedColor, err
	}
	if colored, ok := v.(value.Colored); ok {
		return colored.Color(), nil
	}
	f, ok := v.(value.Float)
	if !ok || scales == nil {
		return value.UndefinedColor, elerrors.NewLookupError(elerrors.KindMismatch, id.String()+" is not colorable")
	}
	if !f.HasValue() {
		return value.UndefinedColor, nil
	}
	scale, err := scales.Scale(id)
	if err != nil {
		return value.UndefinedColor, err
	}
	cv, err := scale.Color(f, logarithmic)
	if err != nil {
		return value.UndefinedColor, err
	}
	return cv.Color(), nil
}

// PhaseAt returns the phase of matter at tempK. Both thresholds are
// inclusive. With only a melting point, the phase above it is Unknown.
func (e *Element) PhaseAt(tempK float64) value.Phase {
	boiling, melting := e.rec.BoilingPoint, e.rec.MeltingPoint

	switch {
	case boiling.HasValue():
		switch {
		case tempK >= boiling.V:
			return value.NewEnum(value.Gas, value.Neutral)
		case melting.HasValue() && tempK >= melting.V:
			return value.NewEnum(value.Liquid, value.Neutral)
		default:
			return value.NewEnum(value.Solid, value.Neutral)
		}
	case melting.HasValue():
		if tempK >= melting.V {
			return value.UndefinedEnum[value.PhaseKind](value.Unknown)
		}
		return value.NewEnum(value.Solid, value.Neutral)
	default:
		return value.UndefinedEnum[value.PhaseKind](value.Unknown)
	}
}

func latticeVolume(rec *Record) value.Float {
	unknown := value.Undefined[float64](value.Unknown)
	if !rec.LatticeType.HasValue() || !rec.LatticeEdges.HasValue() || !rec.LatticeAngles.HasValue() {
		return unknown
	}
	if rec.LatticeEdges.Len() < 3 || rec.LatticeAngles.Len() < 3 {
		return unknown
	}

	edges, angles := rec.LatticeEdges.Values, rec.LatticeAngles.Values
	a := edges[0] * picometersToNano
	b := edges[1] * picometersToNano
	c := edges[2] * picometersToNano
	alpha := angles[0] * degreesToRadians
	beta := angles[1] * degreesToRadians
	gamma := angles[2] * degreesToRadians

	var result float64
	switch rec.LatticeType.Kind {
	case value.Triclinic, value.Rhombohedral:
		ca, cb, cg := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
		result = a * b * c * math.Sqrt(1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)
	case value.Monoclinic:
		result = a * b * c * math.Sin(beta)
	case value.Orthorhombic, value.Tetragonal, value.SimpleCubic, value.BodyCenteredCubic, value.FaceCenteredCubic:
		result = a * b * c
	case value.Hexagonal:
		result = math.Sqrt(3) * a * b * c / 2
	default:
		return unknown
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return unknown
	}
	return value.NewValue(math.Floor(result/volumeResolution)*volumeResolution, value.Approximate)
}
