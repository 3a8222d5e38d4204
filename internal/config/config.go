// Package config loads hub settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings. Values come from FUNHUB_* environment
// variables; command-line flags may override individual fields afterwards.
type Config struct {
	// ScoresPath overrides the default scores file location.
	ScoresPath string `env:"FUNHUB_SCORES_PATH"`
	// LogPath enables debug logging to the given file. The terminal owns
	// stdout, so logs never go there.
	LogPath string `env:"FUNHUB_LOG_PATH"`
	// Seed fixes the RNG seed; 0 means seed from the current time.
	Seed int64 `env:"FUNHUB_SEED"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
