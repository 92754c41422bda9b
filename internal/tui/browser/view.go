package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/value"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case ViewDetail:
		return m.renderDetail()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderTable()
	}
}

func (m Model) renderTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n")

	for row := 1; row <= gridRows; row++ {
		var line strings.Builder
		for col := 1; col <= gridColumns; col++ {
			line.WriteString(m.renderCell(m.layout.at(cell{row, col})))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString(errorBannerStyle.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) title() string {
	p := m.ColorBy().Property()
	loc := m.reg.Localizer()
	title := "Elements colored by " + p.DisplayName(loc)
	if m.Logarithmic() {
		title += " (log)"
	}
	return title
}

func (m Model) renderCell(number int) string {
	if number == 0 {
		return emptyCellStyle.Render("")
	}
	e, err := m.reg.Element(number)
	if err != nil {
		return emptyCellStyle.Render("")
	}

	style := cellStyle
	if number == m.selected {
		style = selectedCellStyle
	}
	if m.color {
		bg := m.cellColor(e)
		style = style.Background(bg.Lipgloss()).Foreground(bg.Complement().Lipgloss())
	}
	return style.Render(e.Symbol())
}

func (m Model) cellColor(e *element.Element) value.Color {
	c, err := e.PropertyColor(m.ColorBy(), m.reg, m.Logarithmic())
	if err != nil {
		return value.UndefinedColor
	}
	return c
}

// status summarizes the selected element and its value for the coloring
// property.
func (m Model) status() string {
	e := m.Selected()
	if e == nil {
		return ""
	}
	loc := m.reg.Localizer()
	line := fmt.Sprintf("%d  %s  %s", e.Number(), e.Symbol(), e.Name())

	id := m.ColorBy()
	if v, err := e.Property(id); err == nil {
		p := id.Property()
		line += "    " + p.Label(loc) + " " + v.Render(loc, p.LocalizedFormat(loc))
	}
	return line
}

func (m Model) renderDetail() string {
	e := m.Selected()
	if e == nil {
		return ""
	}
	header := titleStyle.Render(fmt.Sprintf("%d  %s  %s", e.Number(), e.Symbol(), e.Name()))
	footer := lipgloss.NewStyle().Foreground(mutedColor).Render(
		fmt.Sprintf("%3.f%%  esc back  tab/shift+tab next/previous  q quit", m.viewport.ScrollPercent()*100),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func (m Model) renderHelp() string {
	full := m.help
	full.ShowAll = true
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keys"),
		full.View(m.keys),
	)
}
