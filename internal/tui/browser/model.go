// Package browser is the interactive periodic table: a grid of elements
// colored by a property, with a scrollable property sheet per element.
package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/table"
)

// ViewMode selects the screen the browser shows.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewDetail
	ViewHelp
)

// Options configures a Model.
type Options struct {
	// ColorBy is the property elements are colored by.
	ColorBy element.PropertyID
	// Logarithmic reports whether a property uses a log scale.
	Logarithmic func(element.PropertyID) bool
	// Temperature in Kelvin for the phase entry; zero is standard.
	Temperature float64
	// Select is the atomic number selected on start.
	Select int
	// Color enables background colors.
	Color bool
}

// Model is the bubbletea model of the browser.
type Model struct {
	reg    *table.Registry
	layout layout

	mode     ViewMode
	selected int

	colorable   []element.PropertyID
	colorBy     int
	logarithmic map[element.PropertyID]bool
	temperature float64
	color       bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	errorMsg string

	width  int
	height int
}

// NewModel creates a browser over the registry.
func NewModel(reg *table.Registry, opts Options) Model {
	m := Model{
		reg:         reg,
		layout:      newLayout(reg.Elements()),
		mode:        ViewTable,
		selected:    1,
		logarithmic: make(map[element.PropertyID]bool),
		temperature: opts.Temperature,
		color:       opts.Color,
		keys:        defaultKeyMap(),
		help:        help.New(),
		viewport:    viewport.New(80, 20),
		width:       80,
		height:      24,
	}

	for _, p := range element.Properties() {
		if p.Colorable(reg) {
			m.colorable = append(m.colorable, p.ID)
			if opts.Logarithmic != nil && opts.Logarithmic(p.ID) {
				m.logarithmic[p.ID] = true
			}
		}
	}
	for i, id := range m.colorable {
		if id == opts.ColorBy {
			m.colorBy = i
		}
	}

	if _, err := reg.Element(opts.Select); err == nil {
		m.selected = opts.Select
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the selected element.
func (m Model) Selected() *element.Element {
	e, _ := m.reg.Element(m.selected)
	return e
}

// Mode returns the current screen.
func (m Model) Mode() ViewMode {
	return m.mode
}

// ColorBy returns the property elements are colored by.
func (m Model) ColorBy() element.PropertyID {
	if len(m.colorable) == 0 {
		return element.Series
	}
	return m.colorable[m.colorBy]
}

// Logarithmic reports whether the current coloring uses a log scale.
func (m Model) Logarithmic() bool {
	return m.logarithmic[m.ColorBy()]
}

func (m *Model) cycleColorBy() {
	if len(m.colorable) == 0 {
		return
	}
	m.colorBy = (m.colorBy + 1) % len(m.colorable)
}

func (m *Model) toggleLogarithmic() {
	id := m.ColorBy()
	if !id.Property().Scaled() {
		return
	}
	m.logarithmic[id] = !m.logarithmic[id]
}

func (m *Model) selectNumber(number int) {
	if _, err := m.reg.Element(number); err == nil {
		m.selected = number
	}
}
