package element

import "github.com/alexisbeaulieu97/elemental/internal/value"

// Record is the raw data row of one element. Every field left at its zero
// value is Unknown.
type Record struct {
	Name          value.Message
	AlternateName value.String
	Symbol        string
	Number        int
	Series        value.Series
	Group         value.Int
	Period        value.Int
	Block         value.Block

	Discovery    value.Event
	DiscoveredBy value.Message
	Etymology    value.Message

	DensitySolid  value.Float
	DensityLiquid value.Float
	DensityGas    value.Float
	Appearance    value.Message

	MeltingPoint        value.Float
	BoilingPoint        value.Float
	FusionHeat          value.Float
	VaporizationHeat    value.Float
	SpecificHeat        value.Float
	ThermalConductivity value.Float
	DebyeTemperature    value.Float

	AtomicMass        value.Float
	AtomicVolume      value.Float
	AtomicRadius      value.Float
	CovalentRadius    value.Float
	VanDerWaalsRadius value.Float
	IonicRadii        value.String

	LatticeType   value.LatticeType
	SpaceGroup    value.Int
	LatticeEdges  value.FloatList
	LatticeAngles value.FloatList

	Configuration     value.String
	OxidationStates   value.IntList
	Electronegativity value.Float
	ElectronAffinity  value.Float
	FirstEnergy       value.Float

	Color value.ColorValue
	Notes value.Message
}
