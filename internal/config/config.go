package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/idilsaglam/hooks/internal/todo"
)

// Config is read from HOOKS_* environment variables; CLI flags override it.
type Config struct {
	Theme          string `env:"HOOKS_THEME" envDefault:"classic"`
	UnknownActions string `env:"HOOKS_UNKNOWN_ACTIONS" envDefault:"ignore"`
	Debug          bool   `env:"HOOKS_DEBUG"`
	LogFile        string `env:"HOOKS_LOG_FILE"`
	InitialFruit   string `env:"HOOKS_INITIAL_FRUIT" envDefault:"banana"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Policy returns the unknown-action policy named by the config.
func (c Config) Policy() (todo.Policy, error) {
	return todo.ParsePolicy(c.UnknownActions)
}
