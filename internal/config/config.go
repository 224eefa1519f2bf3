package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	DataDir  string `env:"GRINDLOG_DATA_DIR"`
	LogLevel string `env:"GRINDLOG_LOG_LEVEL" envDefault:"warn"`
	NoUI     bool   `env:"GRINDLOG_NO_UI" envDefault:"false"`
}

// Load parses the environment and fills in the default data directory
// (~/.grindlog) when none is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".grindlog")
	}
	return cfg, nil
}

// DatabasePath is the sqlite file holding the key/value entries.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "grindlog.db")
}
