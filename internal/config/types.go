// Package config loads the user settings file.
package config

import (
	"slices"

	"github.com/alexisbeaulieu97/elemental/internal/element"
)

// Color modes accepted by Settings.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are the user preferences read from config.yaml.
type Settings struct {
	// Language is a BCP 47 tag; empty selects English.
	Language string `yaml:"language" validate:"omitempty,language"`
	// Temperature in Kelvin used for the phase entry.
	Temperature float64 `yaml:"temperature" validate:"gte=0"`
	Color       string  `yaml:"color" validate:"oneof=auto always never"`
	// Logarithmic lists the float properties shown on a log scale.
	Logarithmic []string `yaml:"logarithmic" validate:"dive,scaled_property"`
	Browse      Browse   `yaml:"browse"`
}

// Browse holds settings for the interactive table.
type Browse struct {
	ColorBy string `yaml:"color_by" validate:"required,colorable_property"`
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		Temperature: element.StandardTemperature,
		Color:       ColorAuto,
		Logarithmic: []string{},
		Browse:      Browse{ColorBy: element.Series.String()},
	}
}

// IsLogarithmic reports whether id is configured for a log scale.
func (s *Settings) IsLogarithmic(id element.PropertyID) bool {
	if s == nil {
		return false
	}
	return slices.ContainsFunc(s.Logarithmic, func(name string) bool {
		p, err := element.LookupProperty(name)
		return err == nil && p.ID == id
	})
}

// UseColor resolves the color mode against whether output is a terminal.
func (s *Settings) UseColor(terminal bool) bool {
	if s == nil {
		return terminal
	}
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}
