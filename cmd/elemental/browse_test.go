package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elemental/internal/element"
)

func TestBrowserOptionsDefaults(t *testing.T) {
	cmd, app := newTestApp(t, "")

	opts, err := browserOptions(cmd, app, &browseOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, opts.Select)
	require.Equal(t, element.Series, opts.ColorBy)
	require.Equal(t, element.StandardTemperature, opts.Temperature)
	require.False(t, opts.Color)
}

func TestBrowserOptionsFromSettings(t *testing.T) {
	cmd, app := newTestApp(t, "temperature: 2000\nlogarithmic: [density_solid]\nbrowse:\n  color_by: block\n")

	opts, err := browserOptions(cmd, app, &browseOptions{})
	require.NoError(t, err)
	require.Equal(t, element.Block, opts.ColorBy)
	require.Equal(t, 2000.0, opts.Temperature)
	require.True(t, opts.Logarithmic(element.DensitySolid))
	require.False(t, opts.Logarithmic(element.AtomicMass))
}

func TestBrowserOptionsFlags(t *testing.T) {
	cmd, app := newTestApp(t, "")

	opts, err := browserOptions(cmd, app, &browseOptions{selectElement: "Au", colorBy: "melting_point"})
	require.NoError(t, err)
	require.Equal(t, 79, opts.Select)
	require.Equal(t, element.MeltingPoint, opts.ColorBy)
}

func TestBrowserOptionsErrors(t *testing.T) {
	cmd, app := newTestApp(t, "")

	_, err := browserOptions(cmd, app, &browseOptions{selectElement: "Qq"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `selecting element "Qq"`)

	_, err = browserOptions(cmd, app, &browseOptions{colorBy: "configuration"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no colors or numeric scale")

	_, err = browserOptions(cmd, app, &browseOptions{colorBy: "flavor"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `coloring by "flavor"`)
}
