package value

import (
	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// QualifiedValue is a value paired with a Qualifier, with a total ordering
// and a localized rendering that never fails.
type QualifiedValue interface {
	Qualifier() Qualifier
	HasValue() bool
	// AlwaysEmit reports whether the value is presented even when undefined.
	AlwaysEmit() bool
	// Render returns the localized text of the value. The format is a
	// localized positional template; the empty string selects the default.
	Render(loc *i18n.Localizer, format string) string
	Tip(loc *i18n.Localizer) string
	// Compare returns a negative number, zero, or a positive number when the
	// value sorts before, with, or after other.
	Compare(other QualifiedValue) int
}

// Colored is a QualifiedValue with a representative color.
type Colored interface {
	QualifiedValue
	// Color returns UndefinedColor when the value is undefined.
	Color() Color
}

// Base carries the qualification shared by every value type.
type Base struct {
	Q      Qualifier
	Always bool
}

// Qualifier returns the qualification of the value.
func (b Base) Qualifier() Qualifier { return b.Q }

// HasValue reports whether the value is defined.
func (b Base) HasValue() bool { return b.Q.HasValue() }

// AlwaysEmit reports whether undefined values still produce entries.
func (b Base) AlwaysEmit() bool { return b.Always }

// Tip returns a short explanation of the qualifier, if it needs one.
func (b Base) Tip(loc *i18n.Localizer) string {
	switch b.Q {
	case Estimated:
		return loc.T("Estimated or calculated value")
	case Approximate:
		return loc.T("Approximate")
	case IsotopeSpecific:
		return loc.T("Value for most stable isotope")
	default:
		return ""
	}
}

// CompareBase orders two values by definedness alone. Undefined values sort
// after defined ones and equal to each other. The second result is false
// when both are defined and the caller must compare the payloads.
func CompareBase(a, b QualifiedValue) (int, bool) {
	switch {
	case a.HasValue() && b.HasValue():
		return 0, false
	case a.HasValue():
		return -1, true
	case b.HasValue():
		return 1, true
	default:
		return 0, true
	}
}

// Decorate wraps the raw rendering of a value according to its qualifier.
// raw is only called for defined values.
func Decorate(loc *i18n.Localizer, q Qualifier, raw func() string) string {
	switch q {
	case Unknown:
		return loc.T("(unknown)")
	case NotApplicable:
		return loc.T("(n/a)")
	case Estimated:
		return loc.Tf("(%1)", raw())
	case Approximate:
		return loc.Tf("~%1", raw())
	case IsotopeSpecific:
		return loc.Tf("[%1]", raw())
	default:
		return raw()
	}
}

// Emit pushes the rendered value to view if it is defined or always emitted.
func Emit(view entries.View, v QualifiedValue, loc *i18n.Localizer, label, format string) {
	if v == nil || view == nil {
		return
	}
	if v.HasValue() || v.AlwaysEmit() {
		view.Entry(label, v.Render(loc, format), v.Tip(loc))
	}
}

// Equal reports whether two values sort together.
func Equal(a, b QualifiedValue) bool {
	return a.Compare(b) == 0
}

func formatOrDefault(format string) string {
	if format == "" {
		return "%1"
	}
	return format
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
