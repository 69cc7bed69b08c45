package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Currency = "INR"
	cfg.Goals.Minimum = 300000

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Currency != "INR" {
		t.Errorf("Currency: got %q, want INR", loaded.Currency)
	}
	if loaded.Goals.Minimum != 300000 {
		t.Errorf("Goals.Minimum: got %v, want 300000", loaded.Goals.Minimum)
	}
	if loaded.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model: got %q", loaded.Model)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("default model: got %q", cfg.Model)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("default max_tokens: got %d, want 1000", cfg.MaxTokens)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("default timeout_seconds: got %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.Currency != "USD" {
		t.Errorf("default currency: got %q, want USD", cfg.Currency)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	cfg := LoadOrDefault(t.TempDir())
	if cfg.Model != DefaultConfig().Model {
		t.Errorf("fallback model: got %q", cfg.Model)
	}
}

func TestBackwardCompatibility(t *testing.T) {
	// A minimal config file without the goals block still loads.
	tmpDir := t.TempDir()
	oldConfig := `version: 1
model: claude-sonnet-4-20250514
max_tokens: 1000
timeout_seconds: 30
currency: USD
`
	configPath := filepath.Join(tmpDir, ".nichekit")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte(oldConfig), 0644); err != nil {
		t.Fatalf("failed to write old config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed on minimal config: %v", err)
	}
	if cfg.Goals != (GoalsConfig{}) {
		t.Errorf("goals should be zero for minimal config: %+v", cfg.Goals)
	}
}
