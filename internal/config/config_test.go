package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers restoration; unset to test true absence.
	for _, k := range []string{"GRINDLOG_DATA_DIR", "GRINDLOG_LOG_LEVEL", "GRINDLOG_NO_UI"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.LogLevel)
	}
	if cfg.NoUI {
		t.Error("NoUI should default to false")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should fall back to the home directory")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRINDLOG_DATA_DIR", dir)
	t.Setenv("GRINDLOG_LOG_LEVEL", "debug")
	t.Setenv("GRINDLOG_NO_UI", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("data dir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.LogLevel != "debug" || !cfg.NoUI {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "grindlog.db") {
		t.Errorf("database path = %q", cfg.DatabasePath())
	}
}
