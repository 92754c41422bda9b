package value

import (
	"cmp"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// Event is a historical event: a year and a place. Unknown means the event
// has not happened; NotApplicable means it predates recorded history.
type Event struct {
	Base
	Year  int
	Place string
}

// NewEvent returns a dated event.
func NewEvent(year int, place string, q Qualifier) Event {
	return Event{Base: Base{Q: q}, Year: year, Place: place}
}

// UndefinedEvent returns an event that only carries a qualifier.
func UndefinedEvent(q Qualifier) Event {
	return Event{Base: Base{Q: q}}
}

// AlwaysEmit implements QualifiedValue. Events are presented even when
// undefined.
func (e Event) AlwaysEmit() bool { return true }

// Render implements QualifiedValue. The format receives the year as %1 and
// the translated place as %2.
func (e Event) Render(loc *i18n.Localizer, format string) string {
	switch e.Q {
	case Unknown:
		return loc.T("Undiscovered")
	case NotApplicable:
		return loc.T("Known to the ancients")
	}
	if format == "" {
		format = loc.T("%1 (%2)")
		if e.Place == "" {
			format = "%1"
		}
	}
	return i18n.Compose(format, loc.Year(e.Year), loc.T(e.Place))
}

// Compare implements QualifiedValue. Events known since antiquity sort
// before every dated event and undiscovered ones after.
func (e Event) Compare(other QualifiedValue) int {
	if result, decided := compareEventBase(e.Q, other.Qualifier()); decided {
		return result
	}
	if o, ok := other.(Event); ok {
		return cmp.Compare(e.Year, o.Year)
	}
	return 0
}

func compareEventBase(q, other Qualifier) (int, bool) {
	switch q {
	case Unknown:
		if other == Unknown {
			return 0, true
		}
		return 1, true
	case NotApplicable:
		if other == NotApplicable {
			return 0, true
		}
		return -1, true
	default:
		switch other {
		case Unknown:
			return -1, true
		case NotApplicable:
			return 1, true
		default:
			return 0, false
		}
	}
}
