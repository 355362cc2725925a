// Package config loads the user configuration file.
// Search order: explicit path -> ~/.popten/config.yaml -> defaults.
// Command-line flags override whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings.
type Config struct {
	// Style selects the board glyph set: "unicode" or "ascii".
	Style string `yaml:"style"`
	// DataDir is the base directory for the score log and database.
	DataDir string `yaml:"data_dir"`
	// DBPath is the high-score database location.
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Style:   "unicode",
		DataDir: "~/.popten",
		DBPath:  "~/.popten/scores.db",
	}
}

// Load reads configuration, merging file values over defaults.
// A missing user config file is not an error; an explicit customPath
// that cannot be read is.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: failed to parse %s: %w", userPath, err)
			}
		}
	}

	return fillDefaults(cfg), nil
}

// fillDefaults backfills fields the file left empty.
func fillDefaults(cfg Config) Config {
	def := Default()
	if cfg.Style == "" {
		cfg.Style = def.Style
	}
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	return cfg
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popten", "config.yaml")
}
