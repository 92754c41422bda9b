package i18n

import "golang.org/x/text/language"

// bundled holds the translations compiled into the binary, keyed by the
// English message identifier.
var bundled = map[language.Tag]map[string]string{
	language.German: german,
}

var german = map[string]string{
	// value decorations
	"(unknown)":                     "(unbekannt)",
	"(n/a)":                         "(entfällt)",
	"(%1)":                          "(%1)",
	"~%1":                           "~%1",
	"[%1]":                          "[%1]",
	"(?) %1":                        "(?) %1",
	"Estimated or calculated value": "Geschätzter oder berechneter Wert",
	"Approximate":                   "Ungefähr",
	"Value for most stable isotope": "Wert für das stabilste Isotop",
	"Undiscovered":                  "Unentdeckt",
	"Known to the ancients":         "Seit der Antike bekannt",
	"%1 (%2)":                       "%1 (%2)",
	"%1:":                           "%1:",
	"%1 at 0 deg. C":                "%1 bei 0 °C",
	"%1 at %2 K":                    "%1 bei %2 K",
	", ":                            ", ",

	// categories
	"General":          "Allgemein",
	"Historical":       "Historisch",
	"Physical":         "Physikalisch",
	"Thermal":          "Thermisch",
	"Atomic":           "Atomar",
	"Crystallographic": "Kristallographisch",
	"Electronic":       "Elektronisch",
	"Miscellaneous":    "Verschiedenes",
	"%1 Properties":    "Eigenschaften von %1",

	// properties
	"Official name":  "Offizieller Name",
	"Alternate name": "Alternativer Name",
	"Atomic number":  "Ordnungszahl",
	"Series":         "Serie",
	"Group":          "Gruppe",
	"Period":         "Periode",
	"Discovery":      "Entdeckung",
	"Discovered by":  "Entdeckt von",
	"Etymology":      "Etymologie",
	"Density, solid": "Dichte, fest",
	"Appearance":     "Aussehen",
	"Melting point":  "Schmelzpunkt",
	"Boiling point":  "Siedepunkt",
	"Atomic mass":    "Atommasse",
	"Lattice type":   "Gittertyp",
	"Notes":          "Anmerkungen",

	// series
	"Nonmetals":              "Nichtmetalle",
	"Noble gases":            "Edelgase",
	"Alkali metals":          "Alkalimetalle",
	"Alkaline earth metals":  "Erdalkalimetalle",
	"Semimetals":             "Halbmetalle",
	"Halogens":               "Halogene",
	"Post-transition metals": "Metalle",
	"Transition metals":      "Übergangsmetalle",
	"Lanthanides":            "Lanthanoide",
	"Actinides":              "Actinoide",

	// phases
	"Solid":  "Fest",
	"Liquid": "Flüssig",
	"Gas":    "Gasförmig",

	// lattice types
	"Triclinic":           "Triklin",
	"Monoclinic":          "Monoklin",
	"Orthorhombic":        "Orthorhombisch",
	"Rhombohedral":        "Rhomboedrisch",
	"Simple cubic":        "Kubisch primitiv",
	"Body-centered cubic": "Kubisch raumzentriert",
	"Face-centered cubic": "Kubisch flächenzentriert",

	// element names that differ from English
	"Hydrogen":     "Wasserstoff",
	"Boron":        "Bor",
	"Carbon":       "Kohlenstoff",
	"Nitrogen":     "Stickstoff",
	"Oxygen":       "Sauerstoff",
	"Fluorine":     "Fluor",
	"Sodium":       "Natrium",
	"Silicon":      "Silicium",
	"Phosphorus":   "Phosphor",
	"Sulfur":       "Schwefel",
	"Chlorine":     "Chlor",
	"Potassium":    "Kalium",
	"Titanium":     "Titan",
	"Chromium":     "Chrom",
	"Manganese":    "Mangan",
	"Iron":         "Eisen",
	"Copper":       "Kupfer",
	"Zinc":         "Zink",
	"Arsenic":      "Arsen",
	"Selenium":     "Selen",
	"Bromine":      "Brom",
	"Niobium":      "Niob",
	"Molybdenum":   "Molybdän",
	"Silver":       "Silber",
	"Tin":          "Zinn",
	"Antimony":     "Antimon",
	"Tellurium":    "Tellur",
	"Iodine":       "Iod",
	"Lanthanum":    "Lanthan",
	"Cerium":       "Cer",
	"Praseodymium": "Praseodym",
	"Neodymium":    "Neodym",
	"Tantalum":     "Tantal",
	"Tungsten":     "Wolfram",
	"Platinum":     "Platin",
	"Mercury":      "Quecksilber",
	"Lead":         "Blei",
	"Bismuth":      "Bismut",
	"Astatine":     "Astat",
	"Uranium":      "Uran",
}
