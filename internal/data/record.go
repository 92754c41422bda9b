package data

import (
	"fmt"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// rawRecord mirrors one entry of elements.yaml.
type rawRecord struct {
	Number        int               `yaml:"number" validate:"required,min=1"`
	Symbol        string            `yaml:"symbol" validate:"required,symbol"`
	Name          string            `yaml:"name" validate:"required"`
	AlternateName qualified[string] `yaml:"alternate_name"`
	Series        qualified[string] `yaml:"series"`
	Group         qualified[int64]  `yaml:"group"`
	Period        qualified[int64]  `yaml:"period"`
	Block         qualified[string] `yaml:"block"`

	Discovery    event             `yaml:"discovery"`
	DiscoveredBy qualified[string] `yaml:"discovered_by"`
	Etymology    qualified[string] `yaml:"etymology"`

	DensitySolid  qualified[float64] `yaml:"density_solid"`
	DensityLiquid qualified[float64] `yaml:"density_liquid"`
	DensityGas    qualified[float64] `yaml:"density_gas"`
	Appearance    qualified[string]  `yaml:"appearance"`

	MeltingPoint        qualified[float64] `yaml:"melting_point"`
	BoilingPoint        qualified[float64] `yaml:"boiling_point"`
	FusionHeat          qualified[float64] `yaml:"fusion_heat"`
	VaporizationHeat    qualified[float64] `yaml:"vaporization_heat"`
	SpecificHeat        qualified[float64] `yaml:"specific_heat"`
	ThermalConductivity qualified[float64] `yaml:"thermal_conductivity"`
	DebyeTemperature    qualified[float64] `yaml:"debye_temperature"`

	AtomicMass        qualified[float64] `yaml:"atomic_mass"`
	AtomicVolume      qualified[float64] `yaml:"atomic_volume"`
	AtomicRadius      qualified[float64] `yaml:"atomic_radius"`
	CovalentRadius    qualified[float64] `yaml:"covalent_radius"`
	VanDerWaalsRadius qualified[float64] `yaml:"van_der_waals_radius"`
	IonicRadii        qualified[string]  `yaml:"ionic_radii"`

	LatticeType   qualified[string]    `yaml:"lattice_type"`
	SpaceGroup    qualified[int64]     `yaml:"space_group"`
	LatticeEdges  qualified[[]float64] `yaml:"lattice_edges"`
	LatticeAngles qualified[[]float64] `yaml:"lattice_angles"`

	Configuration     qualified[string]  `yaml:"configuration"`
	OxidationStates   qualified[[]int64] `yaml:"oxidation_states"`
	Electronegativity qualified[float64] `yaml:"electronegativity"`
	ElectronAffinity  qualified[float64] `yaml:"electron_affinity"`
	FirstEnergy       qualified[float64] `yaml:"first_energy"`

	Color qualified[string] `yaml:"color"`
	Notes qualified[string] `yaml:"notes"`
}

// record converts the decoded row. index is the zero-based position in the
// table and only feeds error field names.
func (r rawRecord) record(index int) (element.Record, error) {
	rec := element.Record{
		Name:          value.NewMessage(nil, r.Name, value.Neutral),
		AlternateName: scalar(r.AlternateName),
		Symbol:        r.Symbol,
		Number:        r.Number,
		Group:         scalar(r.Group),
		Period:        scalar(r.Period),

		Discovery:    r.Discovery.value(),
		DiscoveredBy: message(r.DiscoveredBy),
		Etymology:    message(r.Etymology),

		DensitySolid:  scalar(r.DensitySolid),
		DensityLiquid: scalar(r.DensityLiquid),
		DensityGas:    scalar(r.DensityGas),
		Appearance:    message(r.Appearance),

		MeltingPoint:        scalar(r.MeltingPoint),
		BoilingPoint:        scalar(r.BoilingPoint),
		FusionHeat:          scalar(r.FusionHeat),
		VaporizationHeat:    scalar(r.VaporizationHeat),
		SpecificHeat:        scalar(r.SpecificHeat),
		ThermalConductivity: scalar(r.ThermalConductivity),
		DebyeTemperature:    scalar(r.DebyeTemperature),

		AtomicMass:        scalar(r.AtomicMass),
		AtomicVolume:      scalar(r.AtomicVolume),
		AtomicRadius:      scalar(r.AtomicRadius),
		CovalentRadius:    scalar(r.CovalentRadius),
		VanDerWaalsRadius: scalar(r.VanDerWaalsRadius),
		IonicRadii:        scalar(r.IonicRadii),

		SpaceGroup:    scalar(r.SpaceGroup),
		LatticeEdges:  list(r.LatticeEdges),
		LatticeAngles: list(r.LatticeAngles),

		Configuration:     scalar(r.Configuration),
		OxidationStates:   list(r.OxidationStates),
		Electronegativity: scalar(r.Electronegativity),
		ElectronAffinity:  scalar(r.ElectronAffinity),
		FirstEnergy:       scalar(r.FirstEnergy),

		Notes: message(r.Notes),
	}

	var err error
	if rec.Series, err = enum(r.Series, value.ParseSeries); err != nil {
		return rec, fieldError(index, "series", err)
	}
	if rec.Block, err = enum(r.Block, value.ParseBlock); err != nil {
		return rec, fieldError(index, "block", err)
	}
	if rec.LatticeType, err = enum(r.LatticeType, value.ParseLattice); err != nil {
		return rec, fieldError(index, "lattice_type", err)
	}

	rec.Color = value.UndefinedColorValue(r.Color.qualifier())
	if r.Color.defined() {
		c, err := value.FromHex(r.Color.Value)
		if err != nil {
			return rec, fieldError(index, "color", err)
		}
		rec.Color = value.NewColorValue(c, r.Color.Q)
	}

	return rec, nil
}

func scalar[T value.Scalar](c qualified[T]) value.Value[T] {
	if !c.defined() {
		return value.Undefined[T](c.qualifier())
	}
	return value.NewValue(c.Value, c.Q)
}

func list[T value.Scalar](c qualified[[]T]) value.List[T] {
	if !c.defined() {
		return value.UndefinedList[T](c.qualifier())
	}
	return value.NewList(c.Value, c.Q)
}

func message(c qualified[string]) value.Message {
	if !c.defined() {
		return value.UndefinedMessage(c.qualifier())
	}
	return value.NewMessage(nil, c.Value, c.Q)
}

func enum[K value.Kind](c qualified[string], parse func(string) (K, error)) (value.Enum[K], error) {
	if !c.defined() {
		return value.UndefinedEnum[K](c.qualifier()), nil
	}
	k, err := parse(c.Value)
	if err != nil {
		return value.UndefinedEnum[K](value.Unknown), err
	}
	return value.NewEnum(k, c.Q), nil
}

func fieldError(index int, field string, err error) error {
	name := fieldFor(index, field)
	return elerrors.NewValidationError(name, fmt.Sprintf("%s: %v", name, err), err)
}

func fieldFor(index int, field string) string {
	return fmt.Sprintf("elements[%d].%s", index, field)
}
