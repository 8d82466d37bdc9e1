package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/hooks/internal/hooks"
	"github.com/idilsaglam/hooks/internal/model"
	"github.com/idilsaglam/hooks/internal/todo"
)

type section int

const (
	sectionState section = iota
	sectionEffect
	sectionTodos
	sectionCount
)

// storeChangedMsg carries the todo list published by the store subscription.
type storeChangedMsg struct {
	todos []model.Todo
}

// Options wire the demo to its collaborators.
type Options struct {
	Store        *todo.Store
	Logger       *zap.Logger
	InitialFruit string
}

// Model is the bubbletea model of the hooks demo. Hooks and the store are
// held by pointer so copies made by bubbletea share them.
type Model struct {
	focus section
	keys  keyMap
	help  help.Model

	// state hook section
	count *hooks.State[int]
	fruit *hooks.State[string]

	// effect hook section
	clicks *hooks.State[int]
	title  *hooks.Effect[int]
	window *string // last title written by the effect

	// todos section
	store       *todo.Store
	changes     chan []model.Todo
	unsubscribe func()
	list        list.Model
	input       textinput.Model
	err         string

	logger *zap.Logger
}

// New builds the demo model and binds it to the store.
func New(opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := opt.Store
	if st == nil {
		st = todo.NewStore(todo.PolicyIgnore, logger)
	}
	fruit := opt.InitialFruit
	if fruit == "" {
		fruit = "banana"
	}

	window := new(string)
	title := hooks.NewEffect(func(n int) func() {
		*window = fmt.Sprintf("You clicked %d times", n)
		return func() { logger.Info("call clean up", zap.Int("clicks", n)) }
	})

	// buffered so Dispatch inside Update never blocks on the subscriber
	changes := make(chan []model.Todo, 1)
	unsubscribe := st.Subscribe(func(todos []model.Todo) {
		select {
		case changes <- todos:
		default:
			// a newer state replaces the one nobody read yet
			select {
			case <-changes:
			default:
			}
			select {
			case changes <- todos:
			default:
			}
		}
	})

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."
	ti.CharLimit = 200

	l := newTodoList()
	l.SetItems(toListItems(st.State()))

	return Model{
		keys:        defaultKeys(),
		help:        help.New(),
		count:       hooks.NewState(0),
		fruit:       hooks.NewState(fruit),
		clicks:      hooks.NewState(0),
		title:       title,
		window:      window,
		store:       st,
		changes:     changes,
		unsubscribe: unsubscribe,
		list:        l,
		input:       ti,
		logger:      logger,
	}
}

// Close detaches from the store and runs the outstanding effect cleanup.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.title.Dispose()
	close(m.changes)
}

// WindowTitle is the title the effect last set.
func (m Model) WindowTitle() string { return *m.window }

// Todos returns the store's current list.
func (m Model) Todos() []model.Todo { return m.store.State() }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.syncTitle(), waitForChange(m.changes))
}

// syncTitle reruns the title effect when the effect counter moved.
func (m Model) syncTitle() tea.Cmd {
	if !m.title.Sync(m.clicks.Value()) {
		return nil
	}
	return tea.SetWindowTitle(*m.window)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		cmd := m.list.SetItems(toListItems(msg.todos))
		m.list.Select(len(msg.todos) - 1)
		return m, tea.Batch(cmd, waitForChange(m.changes))

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 4)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % sectionCount)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + sectionCount - 1) % sectionCount)
		}
		switch m.focus {
		case sectionState:
			return m.updateState(msg)
		case sectionEffect:
			return m.updateEffect(msg)
		default:
			return m.updateTodos(msg)
		}
	}

	if m.focus == sectionTodos {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setFocus(s section) (tea.Model, tea.Cmd) {
	m.focus = s
	if s == sectionTodos {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

func (m Model) updateState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Click):
		if err := m.count.Update(func(n int) int { return n + 1 }); err != nil {
			m.logger.Warn("click failed", zap.Error(err))
		}
	case key.Matches(msg, m.keys.Fruit):
		if err := m.fruit.Set("apple"); err != nil {
			m.logger.Warn("set fruit failed", zap.Error(err))
		}
	}
	return m, nil
}

func (m Model) updateEffect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Click):
		if err := m.clicks.Update(func(n int) int { return n + 1 }); err != nil {
			m.logger.Warn("click failed", zap.Error(err))
		}
		return m, m.syncTitle()
	}
	return m, nil
}

func (m Model) updateTodos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.err = "Todo cannot be empty"
			return m, nil
		}
		if err := m.store.Dispatch(todo.Add{Text: text}); err != nil {
			m.err = err.Error()
			m.logger.Warn("add failed", zap.Error(err))
			return m, nil
		}
		m.err = ""
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
