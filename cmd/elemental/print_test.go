package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

func TestPrintCommandWritesSheet(t *testing.T) {
	stdout, _, err := executeCommand(t, "print", "Fe")
	require.NoError(t, err)
	require.Contains(t, stdout, "Iron Properties")
	require.Contains(t, stdout, "Thermal")
	require.Contains(t, stdout, "Melting point:")
	require.Contains(t, stdout, "1811 K")
	require.NotContains(t, stdout, "\x1b[", "output to a buffer is never styled")
}

func TestPrintCommandAcceptsNumbersAndSeveralElements(t *testing.T) {
	stdout, _, err := executeCommand(t, "print", "1", " 2 ", "Li")
	require.NoError(t, err)
	require.Contains(t, stdout, "Hydrogen Properties")
	require.Contains(t, stdout, "Helium Properties")
	require.Contains(t, stdout, "Lithium Properties")
}

func TestPrintCommandJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "print", "--json", "--category", "thermal", "26", "Co")
	require.NoError(t, err)

	var payload []printJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload, 2)
	require.Equal(t, 26, payload[0].Number)
	require.Equal(t, "Fe", payload[0].Symbol)
	require.Equal(t, "Co", payload[1].Symbol)

	require.Len(t, payload[0].Sections, 1)
	section := payload[0].Sections[0]
	require.Equal(t, "Thermal", section.Title)
	require.Equal(t, "Melting point:", section.Entries[0].Name)
	require.Equal(t, "1811 K", section.Entries[0].Value)
}

func TestPrintCommandTemperature(t *testing.T) {
	stdout, _, err := executeCommand(t, "print", "--category", "physical", "--temperature", "2000", "Fe")
	require.NoError(t, err)
	require.Contains(t, stdout, "Liquid at 2000 K")

	_, _, err = executeCommand(t, "print", "--temperature", "-5", "Fe")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--temperature")
}

func TestPrintCommandTranslates(t *testing.T) {
	stdout, _, err := executeCommand(t, "--lang", "de", "print", "Fe")
	require.NoError(t, err)
	require.Contains(t, stdout, "Eigenschaften von Eisen")
}

func TestPrintCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
		target   error
	}{
		{name: "unknown symbol", args: []string{"print", "Xx"}, contains: `looking up element "Xx"`, target: elerrors.ErrInvalidArgument},
		{name: "number out of range", args: []string{"print", "119"}, contains: `looking up element "119"`, target: elerrors.ErrInvalidArgument},
		{name: "unknown category", args: []string{"print", "--category", "magical", "Fe"}, contains: `Failed to print: selecting category "magical"`},
		{name: "no arguments", args: []string{"print"}, contains: "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
			if tt.target != nil {
				require.True(t, errors.Is(err, tt.target))
			}
		})
	}
}
