package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Next        key.Binding
	Prev        key.Binding
	Open        key.Binding
	Back        key.Binding
	ColorBy     key.Binding
	Logarithmic key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Next:        key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next element")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "p"), key.WithHelp("shift+tab", "previous element")),
		Open:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "properties")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		ColorBy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color by")),
		Logarithmic: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log scale")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.ColorBy, k.Logarithmic, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev, k.Open, k.Back},
		{k.ColorBy, k.Logarithmic, k.Help, k.Quit},
	}
}
