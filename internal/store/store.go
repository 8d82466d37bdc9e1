// Package store holds one piece of application state and the single entry
// point allowed to replace it.
//
// A Store is built from a reducer, a pure func(state, action) state. Dispatch
// runs the reducer against the current state, swaps in the result when it
// differs by value, and then hands the new state to the bound subscriber.
// Dispatches are serialised, so readers see the state either before or after
// a dispatch, never a partially built value.
package store

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

var (
	// ErrInvalidAction is returned when Dispatch receives a nil action or the
	// configured validator refuses it.
	ErrInvalidAction = errors.New("invalid action")
	// ErrReducerPanic is returned when the reducer panics. State is left as it was.
	ErrReducerPanic = errors.New("reducer panicked")
)

// Reducer computes the next state from the current one and an action.
type Reducer[S, A any] func(state S, action A) S

type subscription[S any] struct {
	fn func(S)
}

// Store owns the current state.
type Store[S, A any] struct {
	reduce   Reducer[S, A]
	equal    func(a, b S) bool
	snapshot func(S) S
	validate func(A) error
	logger   *zap.Logger

	mu      sync.RWMutex
	state   S
	version uint64

	// held for the whole dispatch so notifications keep dispatch order
	dispatchMu sync.Mutex

	subMu sync.Mutex
	sub   *subscription[S]
}

// Option configures a Store.
type Option[S, A any] func(*Store[S, A])

// WithEqual replaces the default cmp.Equal comparison used to decide whether
// a dispatch changed the state.
func WithEqual[S, A any](eq func(a, b S) bool) Option[S, A] {
	return func(s *Store[S, A]) {
		if eq != nil {
			s.equal = eq
		}
	}
}

// WithSnapshot sets the copy made of the state before it leaves the store,
// from State and to the subscriber. Stores whose state shares memory (slices,
// maps, pointers) need one for readers to get a read-only view.
func WithSnapshot[S, A any](fn func(S) S) Option[S, A] {
	return func(s *Store[S, A]) { s.snapshot = fn }
}

// WithValidate installs a check that runs before the reducer. A non-nil error
// aborts the dispatch and is returned to the caller.
func WithValidate[S, A any](fn func(A) error) Option[S, A] {
	return func(s *Store[S, A]) { s.validate = fn }
}

// WithLogger sets the logger used for debug transition lines.
func WithLogger[S, A any](l *zap.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a store whose current state is initial.
func New[S, A any](reducer Reducer[S, A], initial S, opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		reduce: reducer,
		equal:  func(a, b S) bool { return cmp.Equal(a, b, allFields) },
		logger: zap.NewNop(),
		state:  initial,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state snapshot. Callers must treat it as read-only
// and route every change through Dispatch.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view(s.state)
}

// Version counts accepted state changes since New.
func (s *Store[S, A]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Dispatch applies action to the current state. A nil action, a refused
// action or a panicking reducer returns an error and leaves state untouched.
// A dispatch whose result equals the current state does not notify.
func (s *Store[S, A]) Dispatch(action A) error {
	if isNil(action) {
		return fmt.Errorf("dispatch: nil action: %w", ErrInvalidAction)
	}
	if s.validate != nil {
		if err := s.validate(action); err != nil {
			return fmt.Errorf("dispatch: %w", err)
		}
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, changed, err := s.step(s.state, action)
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("dispatch failed", zap.Error(err))
		return err
	}
	if changed {
		s.state = next
		s.version++
	}
	version := s.version
	s.mu.Unlock()

	if !changed {
		s.logger.Debug("dispatch left state unchanged", zap.String("action", fmt.Sprintf("%T", action)))
		return nil
	}
	s.logger.Debug("state replaced",
		zap.String("action", fmt.Sprintf("%T", action)),
		zap.Uint64("version", version))
	s.notify(s.view(next))
	return nil
}

// Subscribe binds fn as the store's consumer. A store has one subscriber; a
// later call replaces an earlier one. fn runs on the dispatching goroutine and
// must not call Dispatch on the same store.
func (s *Store[S, A]) Subscribe(fn func(S)) (unsubscribe func()) {
	sub := &subscription[S]{fn: fn}
	s.subMu.Lock()
	s.sub = sub
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			if s.sub == sub {
				s.sub = nil
			}
			s.subMu.Unlock()
		})
	}
}

func (s *Store[S, A]) step(cur S, action A) (next S, changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero S
			next, changed = zero, false
			err = fmt.Errorf("dispatch: %w: %v", ErrReducerPanic, r)
		}
	}()
	next = s.reduce(cur, action)
	return next, !s.equal(cur, next), nil
}

func (s *Store[S, A]) view(state S) S {
	if s.snapshot == nil {
		return state
	}
	return s.snapshot(state)
}

func (s *Store[S, A]) notify(state S) {
	s.subMu.Lock()
	sub := s.sub
	s.subMu.Unlock()
	if sub == nil || sub.fn == nil {
		return
	}
	sub.fn(state)
}

// allFields lets the default comparison look at unexported struct fields
// instead of panicking on them.
var allFields = cmp.Exporter(func(reflect.Type) bool { return true })

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
