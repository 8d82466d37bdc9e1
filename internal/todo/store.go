package todo

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/hooks/internal/model"
	"github.com/idilsaglam/hooks/internal/store"
)

// Policy decides what a todo store does with Unknown actions.
type Policy string

const (
	PolicyIgnore Policy = "ignore" // reduce as identity
	PolicyLog    Policy = "log"    // identity, plus a warn line
	PolicyReject Policy = "reject" // refuse with *InvalidActionError
)

// ParsePolicy maps a config value to a Policy. Empty means ignore.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyIgnore, nil
	case PolicyIgnore, PolicyLog, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown action policy %q (want ignore, log or reject)", s)
	}
}

// Store is the todo list store.
type Store = store.Store[[]model.Todo, Action]

// NewStore returns a store holding an empty list, reducing with Reduce.
// Readers and the subscriber get copies of the list.
func NewStore(policy Policy, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return store.New[[]model.Todo, Action](Reduce, []model.Todo{},
		store.WithLogger[[]model.Todo, Action](logger),
		store.WithSnapshot[[]model.Todo, Action](slices.Clone[[]model.Todo, model.Todo]),
		store.WithValidate[[]model.Todo](func(a Action) error {
			u, ok := a.(Unknown)
			if !ok {
				return nil
			}
			switch policy {
			case PolicyLog:
				logger.Warn("ignoring unknown action", zap.String("type", u.Kind))
			case PolicyReject:
				return &InvalidActionError{Reason: "unknown action type", Value: u.Kind}
			}
			return nil
		}),
	)
}
