package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/hooks/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	heading := func(s section, name string) string {
		if m.focus == s {
			return t.Selected.Render(name)
		}
		return t.Title.Render(name)
	}
	button := func(label string) string { return t.Accent.Render("[ " + label + " ]") }

	stateBox := ui.Box(strings.Join([]string{
		heading(sectionState, "State Hook"),
		fmt.Sprintf("You clicked %d times", m.count.Value()),
		button("Click me"),
		"",
		"current fruit: " + m.fruit.Value(),
		button("Change fruit"),
	}, "\n"))

	effectBox := ui.Box(strings.Join([]string{
		heading(sectionEffect, "Effect Hook"),
		fmt.Sprintf("You clicked %d times", m.clicks.Value()),
		button("Click me"),
		t.Muted.Render("window title: " + m.WindowTitle()),
	}, "\n"))

	todoLines := []string{heading(sectionTodos, "Custom Hook"), m.input.View()}
	if m.err != "" {
		todoLines = append(todoLines, t.Error.Render(m.err))
	}
	if len(m.list.Items()) == 0 {
		todoLines = append(todoLines, t.Muted.Render("no todos yet"))
	} else {
		todoLines = append(todoLines, m.list.View())
	}
	todoBox := ui.Box(strings.Join(todoLines, "\n"))

	top := lipgloss.JoinHorizontal(lipgloss.Top, stateBox, " ", effectBox)
	helpView := m.help.View(sectionHelp{keys: m.keys, focus: m.focus})
	return lipgloss.JoinVertical(lipgloss.Left, top, todoBox, helpView)
}
