package value

import (
	"cmp"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// Scalar constrains the payloads of generic values.
type Scalar interface {
	~int | ~int64 | ~float64 | ~string
}

// Number constrains the payloads that convert between each other.
type Number interface {
	~int | ~int64 | ~float64
}

// Value is a qualified value holding a single scalar.
type Value[T Scalar] struct {
	Base
	V T
}

// Float, Int and String are the generic values used by element properties.
type (
	Float     = Value[float64]
	Int       = Value[int64]
	String    = Value[string]
	FloatList = List[float64]
	IntList   = List[int64]
)

// NewValue returns a value with the given payload and qualifier.
func NewValue[T Scalar](v T, q Qualifier) Value[T] {
	return Value[T]{Base: Base{Q: q}, V: v}
}

// Undefined returns a value that only carries a qualifier.
func Undefined[T Scalar](q Qualifier) Value[T] {
	return Value[T]{Base: Base{Q: q}}
}

// Convert narrows or widens a numeric value, keeping its qualifier.
func Convert[T, S Number](src Value[S]) Value[T] {
	return Value[T]{Base: src.Base, V: T(src.V)}
}

// Get returns the payload.
func (v Value[T]) Get() T { return v.V }

// Render implements QualifiedValue.
func (v Value[T]) Render(loc *i18n.Localizer, format string) string {
	return Decorate(loc, v.Q, func() string {
		return i18n.Compose(formatOrDefault(format), formatScalar(v.V))
	})
}

// Compare implements QualifiedValue.
func (v Value[T]) Compare(other QualifiedValue) int {
	if result, decided := CompareBase(v, other); decided {
		return result
	}
	if o, ok := other.(Value[T]); ok {
		return cmp.Compare(v.V, o.V)
	}
	return 0
}

// List is a qualified ordered sequence of scalars.
type List[T Scalar] struct {
	Base
	Values []T
}

// NewList returns a list with the given members and qualifier.
func NewList[T Scalar](values []T, q Qualifier) List[T] {
	return List[T]{Base: Base{Q: q}, Values: values}
}

// UndefinedList returns a list that only carries a qualifier.
func UndefinedList[T Scalar](q Qualifier) List[T] {
	return List[T]{Base: Base{Q: q}}
}

// ConvertList converts every member of a numeric list, keeping its qualifier.
func ConvertList[T, S Number](src List[S]) List[T] {
	values := make([]T, len(src.Values))
	for i, v := range src.Values {
		values[i] = T(v)
	}
	return List[T]{Base: src.Base, Values: values}
}

// Len returns the number of members.
func (l List[T]) Len() int { return len(l.Values) }

// Render implements QualifiedValue. Each member is formatted and decorated
// on its own; members are joined with the localized list separator.
func (l List[T]) Render(loc *i18n.Localizer, format string) string {
	if !l.HasValue() {
		return Decorate(loc, l.Q, nil)
	}
	format = formatOrDefault(format)
	parts := make([]string, len(l.Values))
	for i, member := range l.Values {
		parts[i] = Decorate(loc, l.Q, func() string {
			return i18n.Compose(format, formatScalar(member))
		})
	}
	return strings.Join(parts, loc.ListSeparator())
}

// Compare implements QualifiedValue with lexicographic ordering.
func (l List[T]) Compare(other QualifiedValue) int {
	if result, decided := CompareBase(l, other); decided {
		return result
	}
	if o, ok := other.(List[T]); ok {
		return sign(slices.Compare(l.Values, o.Values))
	}
	return 0
}

func formatScalar[T Scalar](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Int, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	default:
		return rv.String()
	}
}
