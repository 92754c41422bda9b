package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/elemental/internal/value"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(value.DarkChocolate.Lipgloss())
	keyStyle     = lipgloss.NewStyle().Foreground(value.DarkPlum.Lipgloss())
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// painter applies styles only when color output is enabled.
type painter bool

func (p painter) render(style lipgloss.Style, text string) string {
	if !p {
		return text
	}
	return style.Render(text)
}

// swatch renders a two-cell block of c.
func (p painter) swatch(c value.Color) string {
	if !p {
		return ""
	}
	return lipgloss.NewStyle().Background(c.Lipgloss()).Render("  ") + " "
}
