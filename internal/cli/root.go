package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/hooks/internal/config"
	"github.com/idilsaglam/hooks/internal/logging"
	"github.com/idilsaglam/hooks/internal/todo"
	"github.com/idilsaglam/hooks/internal/tui"
	"github.com/idilsaglam/hooks/internal/ui"
)

// usageError marks errors that exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app is the state shared by every subcommand, filled in by PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	store  *todo.Store

	theme   string
	policy  string
	debug   bool
	logFile string
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, out, errOut io.Writer) int {
	ui.SetOutput(out, errOut)
	root := newRootCmd(&app{})
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(errOut, ui.Current().Muted.Render("Hint: run `hooks --help`"))
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hooks",
		Short: "hooks - state, effect and reducer hooks in the terminal",
		Long: `hooks demonstrates a reducer-backed store and two component hooks.

Run without arguments to start the interactive demo: a click counter with a
fruit selector, a counter whose effect sets the window title, and a todo list
whose every change goes through the store's dispatch.`,
		Example: `  hooks
  hooks add "Buy milk" eggs
  hooks replay actions.yaml --unknown-actions=reject`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, !cmd.HasParent())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tui.Run(tui.Options{
				Store:        a.store,
				Logger:       a.logger,
				InitialFruit: a.cfg.InitialFruit,
			}); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	f := root.PersistentFlags()
	f.StringVar(&a.theme, "theme", "", "color theme: "+strings.Join(ui.Themes, ", ")+" (env HOOKS_THEME)")
	f.StringVar(&a.policy, "unknown-actions", "", "unknown action policy: ignore, log or reject (env HOOKS_UNKNOWN_ACTIONS)")
	f.BoolVar(&a.debug, "debug", false, "debug logging (env HOOKS_DEBUG)")
	f.StringVar(&a.logFile, "log-file", "", "write logs to this file (env HOOKS_LOG_FILE)")

	root.AddCommand(newAddCmd(a), newReplayCmd(a))
	return root
}

// setup resolves config (flags over env), theme, logger and the todo store.
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	cfg, err := config.Load()
	if err != nil {
		return usageError{err}
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("unknown-actions") {
		cfg.UnknownActions = a.policy
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}

	if !ui.SetTheme(cfg.Theme) {
		return usagef("unknown theme %q (want %s)", cfg.Theme, strings.Join(ui.Themes, ", "))
	}
	policy, err := cfg.Policy()
	if err != nil {
		return usageError{err}
	}
	logger, err := logging.New(logging.Options{
		Debug:       cfg.Debug,
		File:        cfg.LogFile,
		Interactive: interactive,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.store = todo.NewStore(policy, logger)
	logger.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.Theme),
		zap.String("unknown_actions", string(policy)))
	return nil
}

// usageArgs turns cobra's argument validation failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usagef("usage: %s: %w", cmd.UseLine(), err)
		}
		return nil
	}
}
