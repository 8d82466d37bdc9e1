package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/hooks/internal/model"
)

func TestReduceAdd(t *testing.T) {
	tests := []struct {
		name  string
		state []model.Todo
		text  string
		want  []model.Todo
	}{
		{
			name:  "onto empty",
			state: []model.Todo{},
			text:  "milk",
			want:  []model.Todo{{Text: "milk"}},
		},
		{
			name:  "keeps order and prior items",
			state: []model.Todo{{Text: "milk"}},
			text:  "eggs",
			want:  []model.Todo{{Text: "milk"}, {Text: "eggs"}},
		},
		{
			name:  "empty text is still an item",
			state: nil,
			text:  "",
			want:  []model.Todo{{Text: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.state, Add{Text: tt.text})
			assert.Equal(t, tt.want, got)
			assert.False(t, got[len(got)-1].Completed)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	// spare capacity would let a naive append write into the caller's array
	state := make([]model.Todo, 1, 4)
	state[0] = model.Todo{Text: "milk"}
	backing := state[:2]

	first := Reduce(state, Add{Text: "eggs"})
	second := Reduce(state, Add{Text: "eggs"})

	assert.Equal(t, first, second)
	assert.Equal(t, []model.Todo{{Text: "milk"}}, state)
	assert.Equal(t, model.Todo{}, backing[1])
}

func TestReduceUnknownIsIdentity(t *testing.T) {
	for _, state := range [][]model.Todo{{}, {{Text: "milk"}}} {
		got := Reduce(state, Unknown{Kind: "remove"})
		assert.Equal(t, state, got)
		if len(state) > 0 {
			assert.Same(t, &state[0], &got[0])
		}
	}
}
