package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/hooks/internal/model"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail/Panel. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymDone+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymCross+" "+msg))
}

// Box frames content using the current theme.
func Box(content string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(content)
}

// Panel draws a framed box around lines.
func Panel(lines []string) {
	fmt.Fprintln(stdout, Box(strings.Join(lines, "\n")))
}

// maxTodoWidth bounds the text cell of a row; longer text ends in "...".
const maxTodoWidth = 80

// TodoRow renders one item as "text | completed: false".
func TodoRow(it model.Todo) string {
	text := ansi.Truncate(it.Text, maxTodoWidth, "...")
	return fmt.Sprintf("%s %s | %s", current.Muted.Render(current.Bullet), text,
		current.Muted.Render(fmt.Sprintf("completed: %t", it.Completed)))
}

// TodoLines renders the header and rows of a todo list.
func TodoLines(items []model.Todo) []string {
	header := fmt.Sprintf("%s  %s %d",
		current.Title.Render("Todos"),
		current.Accent.Render("Total"), len(items),
	)

	lines := []string{header, ""}
	if len(items) == 0 {
		return append(lines, current.Muted.Render("no items"))
	}
	for i, it := range items {
		idx := current.Muted.Render(fmt.Sprintf("%2d.", i+1))
		lines = append(lines, idx+" "+TodoRow(it))
	}
	return lines
}
