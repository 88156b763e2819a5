// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath is the SQLite file; empty means ~/.debtpad/debtpad.db.
	DBPath string `env:"DEBTPAD_DB"`
	// LogCalls writes one structured line per service use case to stderr.
	LogCalls bool `env:"DEBTPAD_LOG_CALLS" envDefault:"false"`

	HTTPAddr         string `env:"DEBTPAD_HTTP_ADDR" envDefault:"127.0.0.1:8787"`
	ReminderSchedule string `env:"DEBTPAD_REMINDER_SCHEDULE" envDefault:"@every 1h"`

	FlockCount int `env:"DEBTPAD_FLOCK_COUNT" envDefault:"150"`
	// FlockSeed fixes the particle layout; zero seeds randomly.
	FlockSeed uint64 `env:"DEBTPAD_FLOCK_SEED" envDefault:"0"`
}

// DefaultConfig returns the settings used when no variable is set, with the
// database path still unresolved.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:         "127.0.0.1:8787",
		ReminderSchedule: "@every 1h",
		FlockCount:       150,
	}
}

// LoadConfig parses the environment and resolves the database path.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FlockCount < 0 {
		return Config{}, fmt.Errorf("DEBTPAD_FLOCK_COUNT must not be negative, got %d", cfg.FlockCount)
	}

	path, err := resolveDBPath(cfg.DBPath)
	if err != nil {
		return Config{}, err
	}
	cfg.DBPath = path
	return cfg, nil
}

func resolveDBPath(p string) (string, error) {
	if p != "" && p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	if p == "" {
		return filepath.Join(home, ".debtpad", "debtpad.db"), nil
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(p, "~"), "/")), nil
}
