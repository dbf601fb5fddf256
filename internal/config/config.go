// Package config loads deepsearch settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepsearch/engine"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "DEEPSEARCH_"

// Config contains all deepsearch settings.
type Config struct {
	// Search holds the default budgets.
	Search SearchConfig `yaml:"search"`

	// Logging holds the log settings.
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds search budgets. A problem file or a command-line flag
// overrides them.
type SearchConfig struct {
	FrontierCapacity int `yaml:"frontier_capacity"`
	TotalCapacity    int `yaml:"total_capacity"`

	// MaxRounds caps iterative-deepening rounds; 0 means no cap.
	MaxRounds int `yaml:"max_rounds"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			FrontierCapacity: engine.DefaultFrontierCapacity,
			TotalCapacity:    engine.DefaultTotalCapacity,
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// DefaultPath returns ~/.deepsearch/config.yaml, or "" if there is no home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".deepsearch", "config.yaml")
}

// Load builds the configuration.
// Order: defaults -> path (DefaultPath when empty, skipped if absent) -> environment.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Search.FrontierCapacity < 0 {
		return fmt.Errorf("frontier_capacity must be non-negative, got %d", c.Search.FrontierCapacity)
	}
	if c.Search.TotalCapacity < 0 {
		return fmt.Errorf("total_capacity must be non-negative, got %d", c.Search.TotalCapacity)
	}
	if c.Search.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must be non-negative, got %d", c.Search.MaxRounds)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies DEEPSEARCH_* variables to cfg.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvPrefix + "FRONTIER_CAPACITY", &cfg.Search.FrontierCapacity},
		{EnvPrefix + "TOTAL_CAPACITY", &cfg.Search.TotalCapacity},
		{EnvPrefix + "MAX_ROUNDS", &cfg.Search.MaxRounds},
	}
	for _, v := range ints {
		s := os.Getenv(v.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", v.name, err)
		}
		*v.dst = n
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
