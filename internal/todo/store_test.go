package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/hooks/internal/model"
)

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"": PolicyIgnore, "LOG": PolicyLog, " reject ": PolicyReject, "ignore": PolicyIgnore} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParsePolicy("explode")
	assert.Error(t, err)
}

func TestStoreDispatchSequence(t *testing.T) {
	st := NewStore(PolicyIgnore, nil)
	assert.Equal(t, []model.Todo{}, st.State())

	var seen [][]model.Todo
	st.Subscribe(func(s []model.Todo) { seen = append(seen, s) })

	require.NoError(t, st.Dispatch(Add{Text: "a"}))
	require.NoError(t, st.Dispatch(Add{Text: "b"}))

	want := []model.Todo{{Text: "a"}, {Text: "b"}}
	assert.Equal(t, want, st.State())
	assert.Len(t, seen, 2)
	assert.Equal(t, want, seen[1])
}

func TestStoreUnknownActionIgnored(t *testing.T) {
	st := NewStore(PolicyIgnore, nil)
	require.NoError(t, st.Dispatch(Add{Text: "milk"}))

	calls := 0
	st.Subscribe(func([]model.Todo) { calls++ })
	require.NoError(t, st.Dispatch(Unknown{Kind: "remove"}))

	assert.Equal(t, []model.Todo{{Text: "milk"}}, st.State())
	assert.Zero(t, calls)
}

func TestStoreUnknownActionLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	st := NewStore(PolicyLog, zap.New(core))

	require.NoError(t, st.Dispatch(Unknown{Kind: "remove"}))

	entries := logs.FilterMessage("ignoring unknown action").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "remove", entries[0].ContextMap()["type"])
}

func TestStoreUnknownActionRejected(t *testing.T) {
	st := NewStore(PolicyReject, nil)
	require.NoError(t, st.Dispatch(Add{Text: "milk"}))

	err := st.Dispatch(Unknown{Kind: "remove"})
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, []model.Todo{{Text: "milk"}}, st.State())
}

func TestStoreNilActionRejected(t *testing.T) {
	st := NewStore(PolicyIgnore, nil)
	require.NoError(t, st.Dispatch(Add{Text: "milk"}))

	err := st.Dispatch(nil)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, []model.Todo{{Text: "milk"}}, st.State())
}

func TestStoreStateIsACopy(t *testing.T) {
	st := NewStore(PolicyIgnore, nil)
	var notified []model.Todo
	st.Subscribe(func(s []model.Todo) { notified = s })
	require.NoError(t, st.Dispatch(Add{Text: "milk"}))

	snap := st.State()
	snap[0].Text = "eggs"
	snap[0].Completed = true
	notified[0].Text = "bread"

	assert.Equal(t, []model.Todo{{Text: "milk"}}, st.State())
}
