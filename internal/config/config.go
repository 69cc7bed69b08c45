// Package config handles reading and writing .nichekit/config.yaml
// and resolving the API key from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .nichekit/config.yaml.
type Config struct {
	Version        int         `yaml:"version"`
	Model          string      `yaml:"model"`
	MaxTokens      int         `yaml:"max_tokens"`
	TimeoutSeconds int         `yaml:"timeout_seconds"`
	Currency       string      `yaml:"currency"`
	Goals          GoalsConfig `yaml:"goals"`
}

// GoalsConfig holds the annual income goal thresholds shown by the
// calculator. Zero values mean "use the currency defaults".
type GoalsConfig struct {
	Minimum float64 `yaml:"minimum"`
	Side    float64 `yaml:"side"`
	Full    float64 `yaml:"full"`
}

const configDir = ".nichekit"
const configFile = "config.yaml"

// Dir returns the config directory path under the given base
// directory. It is also where the event log and exported plans live.
func Dir(base string) string {
	return filepath.Join(base, configDir)
}

// ReadConfig reads .nichekit/config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .nichekit/config.yaml in the given
// directory, creating .nichekit/ if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// LoadOrDefault reads the config from dir, falling back to defaults
// when no config file exists yet.
func LoadOrDefault(dir string) *Config {
	cfg, err := ReadConfig(dir)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		Model:          "claude-sonnet-4-20250514",
		MaxTokens:      1000,
		TimeoutSeconds: 30,
		Currency:       "USD",
	}
}

// APIKey resolves the Anthropic API key. A .env file in the current
// directory is loaded first if present, then the environment wins.
// Returns "" when no key is configured.
func APIKey() string {
	_ = godotenv.Load()
	return os.Getenv("ANTHROPIC_API_KEY")
}
