package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks lookups with an identity that is not known.
	ErrInvalidArgument = stdErrors.New("invalid argument")
	// ErrOutOfRange marks an element index outside the table.
	ErrOutOfRange = stdErrors.New("out of range")
	// ErrDomain marks scale queries on a property without a usable scale.
	ErrDomain = stdErrors.New("domain error")
)

// LookupKind names the reason a LookupError was raised.
type LookupKind string

const (
	UnknownProperty  LookupKind = "unknown property"
	NotValueProperty LookupKind = "not a value property"
	UnknownElement   LookupKind = "invalid symbol or number"
	KindMismatch     LookupKind = "value kind mismatch"
	UndefinedValue   LookupKind = "undefined value"
)

// LookupError reports an identity lookup that cannot be satisfied.
type LookupError struct {
	Kind LookupKind
	Key  string
}

// NewLookupError constructs a LookupError.
func NewLookupError(kind LookupKind, key string) error {
	return &LookupError{Kind: kind, Key: key}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Key)
	}
	return string(e.Kind)
}

// Unwrap exposes the argument sentinel.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidArgument
}

// RangeError reports an element index outside [Min, Max].
type RangeError struct {
	Index int
	Min   int
	Max   int
}

// NewRangeError constructs a RangeError.
func NewRangeError(index, min, max int) error {
	return &RangeError{Index: index, Min: min, Max: max}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("atomic number %d out of range [%d, %d]", e.Index, e.Min, e.Max)
}

// Unwrap exposes the range sentinel.
func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrOutOfRange
}

// ScaleError reports a scale query on a property without a valid scale.
type ScaleError struct {
	Property string
	Reason   string
}

// NewScaleError constructs a ScaleError.
func NewScaleError(property, reason string) error {
	return &ScaleError{Property: property, Reason: reason}
}

func (e *ScaleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Property != "" {
		return fmt.Sprintf("scale error [%s]: %s", e.Property, e.Reason)
	}
	return fmt.Sprintf("scale error: %s", e.Reason)
}

// Unwrap exposes the domain sentinel.
func (e *ScaleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrDomain
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures data or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
