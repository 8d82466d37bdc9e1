package hooks

import (
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Effect runs a side effect keyed by a dependency value. Sync reruns it only
// when the dependencies differ from the last run, calling the previous
// cleanup first.
type Effect[D any] struct {
	mu       sync.Mutex
	run      func(deps D) (cleanup func())
	deps     D
	ran      bool
	cleanup  func()
	disposed bool
}

// NewEffect wraps run. run may return a nil cleanup.
func NewEffect[D any](run func(deps D) (cleanup func())) *Effect[D] {
	return &Effect[D]{run: run}
}

// Sync runs the effect if this is the first call or deps changed. It reports
// whether the effect ran. After Dispose it does nothing.
func (e *Effect[D]) Sync(deps D) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed || e.run == nil {
		return false
	}
	if e.ran && cmp.Equal(e.deps, deps, allFields) {
		return false
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.cleanup = e.run(deps)
	e.deps = deps
	e.ran = true
	return true
}

// Dispose runs the outstanding cleanup, once.
func (e *Effect[D]) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return
	}
	e.disposed = true
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

var allFields = cmp.Exporter(func(reflect.Type) bool { return true })
