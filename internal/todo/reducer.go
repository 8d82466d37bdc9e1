package todo

import "github.com/idilsaglam/hooks/internal/model"

// Reduce computes the next todo list. Add returns a fresh slice with the new
// item at the end; every other action returns state itself. state is never
// written to.
func Reduce(state []model.Todo, action Action) []model.Todo {
	switch a := action.(type) {
	case Add:
		next := make([]model.Todo, len(state), len(state)+1)
		copy(next, state)
		return append(next, model.Todo{Text: a.Text, Completed: false})
	default:
		return state
	}
}
