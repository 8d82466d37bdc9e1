package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive demo and blocks until the user quits.
func Run(opt Options) error {
	m := New(opt)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
