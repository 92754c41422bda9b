package value

import "fmt"

// Qualifier tags the meaning of a value independently of its content. The
// zero Qualifier is Unknown, so zero values of every value type are
// undefined.
type Qualifier int

const (
	// Unknown marks a value that is not available.
	Unknown Qualifier = iota
	// Neutral marks a value that is presumably valid.
	Neutral
	// NotApplicable marks a property that does not apply.
	NotApplicable
	// Estimated marks an estimated or calculated value.
	Estimated
	// Approximate marks an approximate value.
	Approximate
	// IsotopeSpecific marks a value for the most stable isotope.
	IsotopeSpecific
)

var qualifierNames = [...]string{
	Unknown:         "unknown",
	Neutral:         "neutral",
	NotApplicable:   "n/a",
	Estimated:       "est",
	Approximate:     "ca",
	IsotopeSpecific: "iso",
}

// String returns the short name used in data files.
func (q Qualifier) String() string {
	if q < 0 || int(q) >= len(qualifierNames) {
		return fmt.Sprintf("qualifier(%d)", int(q))
	}
	return qualifierNames[q]
}

// HasValue reports whether a value with this qualifier is defined.
func (q Qualifier) HasValue() bool {
	return q != Unknown && q != NotApplicable
}

// ParseQualifier maps a short name back to its Qualifier.
func ParseQualifier(name string) (Qualifier, error) {
	for q, candidate := range qualifierNames {
		if candidate == name {
			return Qualifier(q), nil
		}
	}
	return Unknown, fmt.Errorf("unknown qualifier %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (q Qualifier) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Qualifier) UnmarshalText(text []byte) error {
	parsed, err := ParseQualifier(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
