package element

import "github.com/alexisbeaulieu97/elemental/internal/i18n"

// Source is a citation backing a property. Citations may contain markup.
type Source struct {
	Key  string
	Text string
	// Translatable citations are prose rather than bibliographic entries.
	Translatable bool
}

// Localized returns the citation text in the language of loc.
func (s Source) Localized(loc *i18n.Localizer) string {
	if s.Translatable {
		return loc.T(s.Text)
	}
	return s.Text
}

var (
	BODRConsensus       = Source{Key: "bodr_consensus", Text: "Consensus of the Blue Obelisk project.", Translatable: true}
	Calculated          = Source{Key: "calculated", Text: "Calculated or based on other properties.", Translatable: true}
	IUPACRecommendation = Source{Key: "iupac_rec", Text: "IUPAC recommendation.", Translatable: true}
	Unsourced           = Source{Key: "unsourced", Text: "Currently unsourced.", Translatable: true}

	Allred1961         = Source{Key: "allred_1961", Text: "Allred, A. L. 1961, <i>J. Inorg. Nucl. Chem.</i>, vol. 17, p. 215."}
	Batsanov2001       = Source{Key: "batsanov_2001", Text: "Batsanov, S. S. 2001, <i>Inorganic Materials</i>, vol. 37, no. 9, pp. 871-885."}
	Bondi1964          = Source{Key: "bondi_1964", Text: "Bondi, A. 1964, <i>J. Phys. Chem.</i>, vol. 68, p. 441."}
	Clementi1963       = Source{Key: "clementi_1963", Text: "Clementi, E., Raimondi, D. L., &amp; Reinhardt, W. P. 1963, <i>J. Chem. Phys.</i> vol. 38, p. 2686."}
	Dean1992           = Source{Key: "dean_1992", Text: "Dean, J. A. (ed.) 1992, <i>Lange's Handbook of Chemistry</i>, 14th edn, McGraw-Hill, New York."}
	Dean1999           = Source{Key: "dean_1999", Text: "Dean, J. A. (ed.) 1999, <i>Lange's Handbook of Chemistry</i>, 15th edn, McGraw-Hill, New York."}
	Ellis1972          = Source{Key: "ellis_1972", Text: "Ellis, H. (ed.) 1972, <i>Nuffield Advanced Science Book of Data</i>, Longman, London."}
	Ho1974             = Source{Key: "ho_1974", Text: "Ho, C. Y., Powell, R. W., &amp; Liley, P. E. 1974, <i>J. Phys. Chem. Ref. Data</i>, vol. 3, suppl. 1."}
	Huheey1993         = Source{Key: "huheey_1993", Text: "Huheey, J. E., Keiter, E. A., &amp; Keiter, R. L. 1993, <i>Inorganic Chemistry: Principles of Structure and Reactivity</i>, 4th edn, HarperCollins, New York."}
	James1992          = Source{Key: "james_1992", Text: "James, A. M. &amp; Lord, M. P. 1992, <i>Macmillan's Chemical and Physical Data</i>, Macmillan, London."}
	Kaye1993           = Source{Key: "kaye_1993", Text: "Kaye, G. W. C. &amp; Laby, T. H. 1993, <i>Tables of physical and chemical constants</i>, 15th edn, Longman, London."}
	Kuchling1991       = Source{Key: "kuchling_1991", Text: "Kuchling, Horst. 1991, <i>Taschenbuch der Physik</i>, 13th edn, Verlag Harri Deutsch, Thun und Frankfurt/Main."}
	Lide1996           = Source{Key: "lide_1996", Text: "Lide, D. R. (ed.) 1996, <i>Chemical Rubber Company handbook of chemistry and physics</i>, 77th edn, CRC Press, Boca Raton, Florida."}
	Lide1998           = Source{Key: "lide_1998", Text: "Lide, D. R. (ed.) 1998, <i>Chemical Rubber Company handbook of chemistry and physics</i>, 79th edn, CRC Press, Boca Raton, Florida."}
	Lide2003           = Source{Key: "lide_2003", Text: "Lide, D. R. (ed.) 2003, <i>Chemical Rubber Company handbook of chemistry and physics</i>, 84th edn, CRC Press, Boca Raton, Florida."}
	Pauling1960        = Source{Key: "pauling_1960", Text: "Pauling, L. 1960, <i>The Nature of the Chemical Bond</i>, 3rd edn, Cornell Univ., USA."}
	Porterfield1984    = Source{Key: "porterfield_1984", Text: "Porterfield, W. W. 1984, <i>Inorganic Chemistry: A Unified Approach</i>, Addison-Wesley, Reading, Massachusetts."}
	PureAppl1997       = Source{Key: "pure_appl_1997", Text: "Pure Appl. Chem. 1997, vol. 69, iss. 12, pp. 2471-2473."}
	PureAppl2003       = Source{Key: "pure_appl_2003", Text: "Pure Appl. Chem. 2003, vol. 75, iss. 10, pp. 1613-1615."}
	PureAppl2004       = Source{Key: "pure_appl_2004", Text: "Pure Appl. Chem. 2004, vol. 76, iss. 12, pp. 2101-2103."}
	Sanderson1962      = Source{Key: "sanderson_1962", Text: "Sanderson, R.T. 1962, <i>Chemical Periodicity</i>, Reinhold, New York."}
	Slater1964         = Source{Key: "slater_1964", Text: "Slater, J. C. 1964, <i>J. Chem. Phys.</i>, vol. 41, p. 3199."}
	Sutton1965         = Source{Key: "sutton_1965", Text: "Sutton, L. E. 1965, <i>Table of Interatomic Distances and Configuration in Molecules and Ions</i>, suppl. 1956-1959, spec. pub. no. 18, Chemical Society, London."}
	WebElementsCrystal = Source{Key: "webelements_xtal", Text: "Multiple sources as compiled at <i>WebElements</i>, http://www.webelements.com/."}
	Wieser2006         = Source{Key: "wieser_2006", Text: "Wieser, M. E. 2006, <i>Pure Appl. Chem.</i>, vol. 78, iss. 11, pp. 2051-2066."}
	WikipediaAffinity  = Source{Key: "wikipedia_affinity", Text: "Multiple sources as compiled at Wikipedia, <i>Electron affinity (data page)</i>, http://en.wikipedia.org/wiki/Electron_affinity_%28data_page%29 (as of 2007 Jan. 29, 06:21 GMT)."}
)
