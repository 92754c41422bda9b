package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/table"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	reg, err := table.Default()
	require.NoError(t, err)
	return NewModel(reg, opts)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, Options{ColorBy: element.MeltingPoint, Select: 26})

	assert.Equal(t, ViewTable, m.Mode())
	assert.Equal(t, "Fe", m.Selected().Symbol())
	assert.Equal(t, element.MeltingPoint, m.ColorBy())
	assert.False(t, m.Logarithmic())

	fallback := newTestModel(t, Options{ColorBy: element.Configuration, Select: 500})
	assert.Equal(t, 1, fallback.Selected().Number())
	assert.Equal(t, element.Series, fallback.ColorBy())
}

func TestGridNavigation(t *testing.T) {
	m := newTestModel(t, Options{Select: 26})

	// Periods 1 to 3 have no group 8 element.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "Fe", m.Selected().Symbol())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Ru", m.Selected().Symbol())

	m = press(t, m, runes("k"))
	assert.Equal(t, "Fe", m.Selected().Symbol())

	m = press(t, m, runes("l"))
	assert.Equal(t, "Co", m.Selected().Symbol())

	m = press(t, m, runes("h"), runes("h"))
	assert.Equal(t, "Mn", m.Selected().Symbol())

	// Hydrogen to helium skips the empty cells of period 1.
	m = newTestModel(t, Options{Select: 1})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "He", m.Selected().Symbol())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "He", m.Selected().Symbol())
}

func TestSequentialNavigation(t *testing.T) {
	m := newTestModel(t, Options{Select: 118})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 118, m.Selected().Number())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 117, m.Selected().Number())
}

func TestLayoutPlacesFBlock(t *testing.T) {
	reg, err := table.Default()
	require.NoError(t, err)
	l := newLayout(reg.Elements())

	assert.Len(t, l.numbers, 118)
	assert.Equal(t, 58, l.at(cell{lanthanideRow, firstFColumn}))
	assert.Equal(t, 71, l.at(cell{lanthanideRow, 17}))
	assert.Equal(t, 90, l.at(cell{actinideRow, firstFColumn}))
	assert.Equal(t, 57, l.at(cell{6, 3}))
	assert.Equal(t, 118, l.at(cell{7, 18}))
}

func TestColorByAndLogarithmic(t *testing.T) {
	m := newTestModel(t, Options{ColorBy: element.Series})

	m = press(t, m, runes("L"))
	assert.False(t, m.Logarithmic(), "series has no scale")

	start := m.ColorBy()
	m = press(t, m, runes("c"))
	assert.NotEqual(t, start, m.ColorBy())

	m = newTestModel(t, Options{ColorBy: element.AtomicMass})
	m = press(t, m, runes("L"))
	assert.True(t, m.Logarithmic())
	assert.Contains(t, m.View(), "(log)")
}

func TestDetailView(t *testing.T) {
	m := newTestModel(t, Options{Select: 26})
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 80})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewDetail, m.Mode())
	view := m.View()
	assert.Contains(t, view, "Iron Properties")
	assert.Contains(t, view, "Melting point:")
	assert.Contains(t, view, "1811")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Co", m.Selected().Symbol())
	assert.Contains(t, m.View(), "Cobalt Properties")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewTable, m.Mode())
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, runes("?"))
	require.Equal(t, ViewHelp, m.Mode())
	assert.Contains(t, m.View(), "color by")

	m = press(t, m, runes("?"))
	assert.Equal(t, ViewTable, m.Mode())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTableViewListsSymbols(t *testing.T) {
	m := newTestModel(t, Options{Select: 79, ColorBy: element.MeltingPoint})
	view := m.View()

	for _, symbol := range []string{"H", "He", "Fe", "Au", "Og", "Ce", "Lr"} {
		assert.Contains(t, view, symbol)
	}
	assert.Contains(t, view, "Elements colored by Melting point")
	assert.Contains(t, view, "79  Au  Gold")
	assert.Contains(t, view, "Melting point: 1337.33 K")
}
