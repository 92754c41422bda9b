package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/elemental/internal/value"
)

var (
	mutedColor = lipgloss.Color("245")
	errorColor = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(value.DarkChocolate.Lipgloss()).
			PaddingLeft(1).
			MarginBottom(1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	selectedCellStyle = cellStyle.
				Bold(true).
				Underline(true)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				PaddingLeft(1)
)

const cellWidth = 4
