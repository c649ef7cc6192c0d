// Package config loads fintrack configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration. CLI flags override these
// values; the environment only supplies defaults.
type Config struct {
	// DatabasePath is the SQLite database file.
	DatabasePath string `env:"FINTRACK_DB" envDefault:"financeiro.db"`

	// Logging
	LogLevel string `env:"FINTRACK_LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
