package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/table"
)

const (
	// chrome is the number of lines around the viewport in the detail view.
	chrome = 4
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chrome)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.mode = ViewTable
		}
		return m, nil
	default:
		return m.handleTableKeys(msg)
	}
}

func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMsg = ""

	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = m.layout.step(m.selected, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.selected = m.layout.step(m.selected, 1, 0)
	case key.Matches(msg, m.keys.Left):
		m.selected = m.layout.step(m.selected, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.selected = m.layout.step(m.selected, 0, 1)
	case key.Matches(msg, m.keys.Next):
		m.selectNumber(m.selected + 1)
	case key.Matches(msg, m.keys.Prev):
		m.selectNumber(m.selected - 1)
	case key.Matches(msg, m.keys.ColorBy):
		m.cycleColorBy()
	case key.Matches(msg, m.keys.Logarithmic):
		m.toggleLogarithmic()
	case key.Matches(msg, m.keys.Help):
		m.mode = ViewHelp
	case key.Matches(msg, m.keys.Open):
		if err := m.openDetail(); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.mode = ViewDetail
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ViewTable
		return m, nil
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		if key.Matches(msg, m.keys.Next) {
			m.selectNumber(m.selected + 1)
		} else {
			m.selectNumber(m.selected - 1)
		}
		if err := m.openDetail(); err != nil {
			m.errorMsg = err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openDetail renders the selected element's sheet into the viewport.
func (m *Model) openDetail() error {
	e, err := m.reg.Element(m.selected)
	if err != nil {
		return err
	}

	opts := table.SheetOptions{}
	opts.Temperature = m.temperature
	if m.color {
		styles := entries.DefaultStreamStyles()
		opts.Styles = &styles
	}

	var b strings.Builder
	if err := m.reg.WriteSheet(&b, e, opts); err != nil {
		return err
	}
	m.viewport.SetContent(strings.TrimPrefix(b.String(), "\n"))
	m.viewport.GotoTop()
	return nil
}
