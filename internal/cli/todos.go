package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/hooks/internal/script"
	"github.com/idilsaglam/hooks/internal/todo"
	"github.com/idilsaglam/hooks/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Dispatch one add action per argument and print the list",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				text := strings.TrimSpace(arg)
				if text == "" {
					return usagef("add: empty text")
				}
				if err := a.store.Dispatch(todo.Add{Text: text}); err != nil {
					return fmt.Errorf("add: %w", err)
				}
			}
			printTodos(a)
			ui.OK(fmt.Sprintf("added %d", len(args)))
			return nil
		},
	}
}

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Dispatch the actions of a JSON or YAML script in order",
		Long: `Replay reads a list of {type, text} records and dispatches them to a
fresh todo store. Records without a type abort the replay; unknown types
follow --unknown-actions.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := script.Load(args[0])
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			n, err := script.Replay(a.store, actions)
			a.logger.Info("replayed script",
				zap.String("file", args[0]),
				zap.Int("applied", n),
				zap.Int("total", len(actions)))
			printTodos(a)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			ui.OK(fmt.Sprintf("replayed %d actions", n))
			return nil
		},
	}
}

func printTodos(a *app) {
	lines := ui.TodoLines(a.store.State())
	lines = append(lines, "", ui.Current().Muted.Render("Tip: add with `hooks add \"Buy milk\"`"))
	ui.Panel(lines)
}
