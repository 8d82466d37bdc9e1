package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/hooks/internal/todo"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOOKS_THEME", "HOOKS_UNKNOWN_ACTIONS", "HOOKS_DEBUG", "HOOKS_LOG_FILE", "HOOKS_INITIAL_FRUIT"} {
		t.Setenv(k, "") // restored on cleanup
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "banana", cfg.InitialFruit)
	assert.False(t, cfg.Debug)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, todo.PolicyIgnore, p)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOOKS_THEME", "neon")
	t.Setenv("HOOKS_UNKNOWN_ACTIONS", "reject")
	t.Setenv("HOOKS_DEBUG", "true")
	t.Setenv("HOOKS_LOG_FILE", "/tmp/hooks.log")
	t.Setenv("HOOKS_INITIAL_FRUIT", "kiwi")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Theme:          "neon",
		UnknownActions: "reject",
		Debug:          true,
		LogFile:        "/tmp/hooks.log",
		InitialFruit:   "kiwi",
	}, cfg)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, todo.PolicyReject, p)
}

func TestLoadBadBool(t *testing.T) {
	t.Setenv("HOOKS_DEBUG", "maybe")
	_, err := Load()
	assert.Error(t, err)
}
