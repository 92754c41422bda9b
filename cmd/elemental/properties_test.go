package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

func TestPropertiesCommandListsAllCategories(t *testing.T) {
	stdout, _, err := executeCommand(t, "properties")
	require.NoError(t, err)
	for _, heading := range []string{"General (general)", "Thermal (thermal)", "Miscellaneous (miscellaneous)"} {
		require.Contains(t, stdout, heading)
	}
	require.Contains(t, stdout, "official_name")
}

func TestPropertiesCommandSingleCategory(t *testing.T) {
	stdout, _, err := executeCommand(t, "properties", "thermal")
	require.NoError(t, err)
	require.Contains(t, stdout, "melting_point  Melting point")
	require.Contains(t, stdout, "Range:")
	require.NotContains(t, stdout, "General")
	require.NotContains(t, stdout, "<i>", "citations are flattened")
}

func TestPropertiesCommandUnknownCategory(t *testing.T) {
	_, _, err := executeCommand(t, "properties", "magical")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Choose one of: general, historical")
}

func TestScaleCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "scale", "melting_point")
	require.NoError(t, err)
	require.Contains(t, stdout, "Melting point (linear)")
	require.Contains(t, stdout, "Minimum:")
	require.Contains(t, stdout, "Maximum:")
	require.Regexp(t, `26\s+Fe\s+1811 K\s+0\.\d{3}\s+#[0-9a-f]{6}`, stdout)
	require.Regexp(t, `2\s+He\s+-`, stdout)
}

func TestScaleCommandLogarithmicFromSettings(t *testing.T) {
	path := writeConfig(t, "logarithmic: [atomic_mass]\n")

	stdout, _, err := executeWithConfig(t, path, "scale", "atomic_mass")
	require.NoError(t, err)
	require.Contains(t, stdout, "(logarithmic)")

	stdout, _, err = executeWithConfig(t, path, "scale", "--log=false", "atomic_mass")
	require.NoError(t, err)
	require.Contains(t, stdout, "(linear)")
}

func TestScaleCommandErrors(t *testing.T) {
	_, _, err := executeCommand(t, "scale", "series")
	require.ErrorIs(t, err, elerrors.ErrDomain)

	_, _, err = executeCommand(t, "scale", "flavor")
	require.ErrorIs(t, err, elerrors.ErrInvalidArgument)
}

func TestFormatMeasureRendersLikePropertyValues(t *testing.T) {
	loc := i18n.Default()

	require.Equal(t, "1811 K", formatMeasure(element.MeltingPoint.Property(), loc, 1811))
	require.Equal(t, "0.0899 g/cm3 at 20 deg. C", formatMeasure(element.DensitySolid.Property(), loc, 0.0899))
	require.Equal(t, "2.2 (Pauling scale)", formatMeasure(element.Electronegativity.Property(), loc, 2.2))
}
