package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Click  key.Binding
	Fruit  key.Binding
	Add    key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Click:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "click me")),
		Fruit:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "change fruit")),
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// contextual help: the todo section types text, so q is not a quit key there
type sectionHelp struct {
	keys  keyMap
	focus section
}

func (h sectionHelp) ShortHelp() []key.Binding {
	switch h.focus {
	case sectionState:
		return []key.Binding{h.keys.Click, h.keys.Fruit, h.keys.Next, h.keys.Quit}
	case sectionEffect:
		return []key.Binding{h.keys.Click, h.keys.Next, h.keys.Prev, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Add, h.keys.Up, h.keys.Down, h.keys.Next, h.keys.Cancel}
	}
}

func (h sectionHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
