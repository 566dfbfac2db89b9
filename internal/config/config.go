// Package config loads readplan settings from ~/.readplan/config.toml,
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	dataDirName    = ".readplan"
	configFileName = "config.toml"
)

// Config holds the readplan settings.
type Config struct {
	// PlansDir is the directory holding plan files and the change
	// journal. Empty means the default, ~/.readplan.
	PlansDir string `toml:"plans_dir"`
	// NoColor disables styled output, like the --no-ansi flag.
	NoColor bool `toml:"no_color"`
	// DefaultCount is how many entries the view command shows.
	DefaultCount int `toml:"default_count"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		DefaultCount: 1,
	}
}

// Path returns the config file location under the user's home.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, dataDirName, configFileName), nil
}

// Load reads the config file if it exists and applies environment
// overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config from a specific file. A missing file
// is not an error, a malformed one is.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// fillDefaults backfills values the config file zeroed or omitted.
func (c *Config) fillDefaults() {
	if c.DefaultCount < 1 {
		c.DefaultCount = Default().DefaultCount
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - READPLAN_DIR: overrides plans_dir
//   - READPLAN_NO_COLOR: set to "1" or "true" to disable styled output
//   - NO_COLOR: any non-empty value disables styled output
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("READPLAN_DIR"); dir != "" {
		c.PlansDir = dir
	}
	if v := os.Getenv("READPLAN_NO_COLOR"); v != "" {
		c.NoColor = v == "1" || strings.ToLower(v) == "true"
	}
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
}
