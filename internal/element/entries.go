package element

import (
	"strconv"

	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/value"
)

// EntryOptions controls which entries an element produces.
type EntryOptions struct {
	// All includes the name, symbol and atomic number.
	All bool
	// Temperature in Kelvin for the phase entry. Zero selects
	// StandardTemperature.
	Temperature float64
}

// MakeEntries pushes every category of the element to view.
func (e *Element) MakeEntries(view entries.View, opts EntryOptions) {
	for _, c := range categories {
		e.MakeCategoryEntries(view, c, opts)
	}
}

// MakeCategoryEntries pushes one category of the element to view.
func (e *Element) MakeCategoryEntries(view entries.View, c *Category, opts EntryOptions) {
	loc := e.loc

	switch c.ID {
	case General:
		name := e.Name()
		view.Header(loc.Tf("%1 Properties", name))
		if opts.All {
			Name.Property().Emit(view, e.message(e.rec.Name), loc)
		}
		OfficialName.Property().Emit(view, e.officialName, loc)
		if alt := e.rec.AlternateName; alt.HasValue() && alt.V != name {
			AlternateName.Property().Emit(view, alt, loc)
		}
		if opts.All {
			Symbol.Property().EmitText(view, e.rec.Symbol, loc)
			AtomicNumber.Property().EmitText(view, strconv.Itoa(e.rec.Number), loc)
		}
		for _, id := range []PropertyID{Series, Group, Period, Block} {
			e.emit(view, id)
		}

	case Miscellaneous:
		c.Header(view, loc)
		Color.Property().Emit(view, e.rec.Color, loc)
		if notes := e.message(e.rec.Notes); notes.HasValue() {
			value.Emit(view, notes, loc, "", "")
		}

	default:
		c.Header(view, loc)
		for _, id := range c.Properties {
			if id == Phase {
				phase, format := e.phaseEntry(opts.Temperature)
				Phase.Property().EmitFormatted(view, phase, loc, format)
				continue
			}
			e.emit(view, id)
		}
	}
}

func (e *Element) emit(view entries.View, id PropertyID) {
	v, err := e.Property(id)
	if err != nil {
		return
	}
	id.Property().Emit(view, v, e.loc)
}

func (e *Element) phaseEntry(tempK float64) (value.Phase, string) {
	if tempK == 0 || tempK == StandardTemperature {
		return e.standardPhase, Phase.Property().LocalizedFormat(e.loc)
	}
	kelvin := strconv.FormatFloat(tempK, 'g', -1, 64)
	return e.PhaseAt(tempK), i18n.Compose(e.loc.T("%1 at %2 K"), "%1", kelvin)
}
