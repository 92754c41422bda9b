package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("elements.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "elements.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "elements.yaml:12")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("elements[3].symbol", "failed validation for tag 'required'", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "elements[3].symbol", validationErr.Field)
	require.Contains(t, err.Error(), "required")
}

func TestLookupErrorIsInvalidArgument(t *testing.T) {
	t.Parallel()

	for _, kind := range []LookupKind{UnknownProperty, NotValueProperty, UnknownElement, KindMismatch, UndefinedValue} {
		err := NewLookupError(kind, "Xx")
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.NotErrorIs(t, err, ErrOutOfRange)
		require.Contains(t, err.Error(), string(kind))
	}
}

func TestRangeErrorIsOutOfRange(t *testing.T) {
	t.Parallel()

	err := NewRangeError(0, 1, 118)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.NotErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, "atomic number 0 out of range [1, 118]", err.Error())
}

func TestScaleErrorIsDomain(t *testing.T) {
	t.Parallel()

	err := NewScaleError("Melting point", "invalid scale")

	var scaleErr *ScaleError
	require.ErrorAs(t, err, &scaleErr)
	require.ErrorIs(t, err, ErrDomain)
	require.Equal(t, "scale error [Melting point]: invalid scale", err.Error())
}
