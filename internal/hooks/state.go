// Package hooks provides component-local state and side-effect helpers for the
// terminal demo: State is a single value behind a store, Effect reruns a side
// effect whenever its dependencies change and cleans up after itself.
package hooks

import (
	"fmt"

	"github.com/idilsaglam/hooks/internal/store"
)

// Setter is the action type of a State: a transform of the current value.
type Setter[T any] func(T) T

// State holds one value. Setting an equal value does not notify.
type State[T any] struct {
	st *store.Store[T, Setter[T]]
}

// NewState creates a State starting at initial.
func NewState[T any](initial T, opts ...store.Option[T, Setter[T]]) *State[T] {
	apply := func(cur T, set Setter[T]) T { return set(cur) }
	return &State[T]{st: store.New[T, Setter[T]](apply, initial, opts...)}
}

// Value returns the current value.
func (s *State[T]) Value() T { return s.st.State() }

// Set replaces the value.
func (s *State[T]) Set(v T) error {
	return s.st.Dispatch(func(T) T { return v })
}

// Update applies transform to the current value.
func (s *State[T]) Update(transform func(T) T) error {
	if transform == nil {
		return fmt.Errorf("update: %w", store.ErrInvalidAction)
	}
	return s.st.Dispatch(Setter[T](transform))
}

// Subscribe registers the consumer notified after each change.
func (s *State[T]) Subscribe(fn func(T)) func() { return s.st.Subscribe(fn) }
