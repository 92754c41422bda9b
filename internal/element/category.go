package element

import (
	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// CategoryID identifies one of the fixed property categories.
type CategoryID int

const (
	General CategoryID = iota
	Historical
	Physical
	Thermal
	Atomic
	Crystallographic
	Electronic
	Miscellaneous
)

// Category is a named, ordered group of properties.
type Category struct {
	ID         CategoryID
	Key        string
	Name       string
	Properties []PropertyID
}

var categories = []*Category{
	{ID: General, Key: "general", Name: "General", Properties: []PropertyID{
		Name, OfficialName, AlternateName, Symbol, AtomicNumber, Series, Group, Period, Block,
	}},
	{ID: Historical, Key: "historical", Name: "Historical", Properties: []PropertyID{
		Discovery, DiscoveredBy, Etymology,
	}},
	{ID: Physical, Key: "physical", Name: "Physical", Properties: []PropertyID{
		Phase, DensitySolid, DensityLiquid, DensityGas, Appearance,
	}},
	{ID: Thermal, Key: "thermal", Name: "Thermal", Properties: []PropertyID{
		MeltingPoint, BoilingPoint, FusionHeat, VaporizationHeat, SpecificHeat, ThermalConductivity, DebyeTemperature,
	}},
	{ID: Atomic, Key: "atomic", Name: "Atomic", Properties: []PropertyID{
		AtomicMass, AtomicVolume, AtomicRadius, CovalentRadius, VanDerWaalsRadius, IonicRadii,
	}},
	{ID: Crystallographic, Key: "crystallographic", Name: "Crystallographic", Properties: []PropertyID{
		LatticeType, SpaceGroup, LatticeEdges, LatticeAngles, LatticeVolume,
	}},
	{ID: Electronic, Key: "electronic", Name: "Electronic", Properties: []PropertyID{
		Configuration, OxidationStates, Electronegativity, ElectronAffinity, FirstEnergy,
	}},
	{ID: Miscellaneous, Key: "miscellaneous", Name: "Miscellaneous", Properties: []PropertyID{
		Color, Notes,
	}},
}

// Categories returns the categories in their fixed display order.
func Categories() []*Category {
	out := make([]*Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory finds a category by key or translated name.
func LookupCategory(name string, loc *i18n.Localizer) (*Category, bool) {
	for _, c := range categories {
		if c.Key == name || c.Name == name || c.DisplayName(loc) == name {
			return c, true
		}
	}
	return nil, false
}

// Descriptors returns the category's properties in order.
func (c *Category) Descriptors() []*Property {
	out := make([]*Property, len(c.Properties))
	for i, id := range c.Properties {
		out[i] = id.Property()
	}
	return out
}

// DisplayName returns the translated category name.
func (c *Category) DisplayName(loc *i18n.Localizer) string {
	return loc.T(c.Name)
}

// Header pushes the category header to view.
func (c *Category) Header(view entries.View, loc *i18n.Localizer) {
	view.Header(c.DisplayName(loc))
}
