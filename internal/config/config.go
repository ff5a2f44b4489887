// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/pennywise-dev/pennywise/internal/storage"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	// DataDir is where the file store and sqlite database live.
	// Environment variable: PENNYWISE_DATA_DIR
	DataDir string `koanf:"PENNYWISE_DATA_DIR"`

	// Backend selects the storage backend: file, sqlite, or memory.
	// Environment variable: PENNYWISE_BACKEND
	Backend string `koanf:"PENNYWISE_BACKEND"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	// Environment variable: PENNYWISE_LOG_LEVEL
	LogLevel string `koanf:"PENNYWISE_LOG_LEVEL"`

	// LogJSON switches log output to JSON.
	// Environment variable: PENNYWISE_LOG_JSON
	LogJSON bool `koanf:"PENNYWISE_LOG_JSON"`

	// AutosaveInterval is the period of the redundant background re-save
	// used by long-running commands.
	// Environment variable: PENNYWISE_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `koanf:"PENNYWISE_AUTOSAVE_INTERVAL"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DataDir:          "data",
		Backend:          string(storage.BackendFile),
		LogLevel:         "info",
		AutosaveInterval: 30 * time.Second,
	}
}

// Load reads configuration from a .env file (if present) and the
// environment, over the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	if !storage.Backend(c.Backend).IsValid() {
		return fmt.Errorf("invalid backend %q: must be file, sqlite, or memory", c.Backend)
	}
	if c.AutosaveInterval < time.Second {
		return fmt.Errorf("invalid autosave interval %v: must be at least 1 second", c.AutosaveInterval)
	}
	return nil
}
