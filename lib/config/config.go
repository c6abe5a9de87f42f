// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/vprofile-foundation/vprofile/lib/profile"
)

// Theme selects the terminal color scheme.
type Theme string

const (
	// ThemeAuto detects the terminal background at startup.
	ThemeAuto Theme = "auto"
	// ThemeDark forces the dark palette.
	ThemeDark Theme = "dark"
	// ThemeLight forces the light palette.
	ThemeLight Theme = "light"
)

// Config is the vprofile configuration.
type Config struct {
	// Theme selects the color scheme: auto, dark, or light.
	Theme Theme `yaml:"theme"`

	// ExportDir is where history entries are written on export.
	// Default: ~/.local/share/vprofile/exports
	ExportDir string `yaml:"export_dir"`

	// HistoryLimit caps the session history length. Zero means
	// unlimited. Oldest entries are evicted first.
	HistoryLimit int `yaml:"history_limit"`

	// DefaultProvider preselects an ITS provider when the form opens.
	// Empty means no preselection. Unregistered names are rejected by
	// Validate.
	DefaultProvider string `yaml:"default_provider"`

	// LogOutput is a file path for JSON diagnostic logs. Empty
	// disables logging. Logs never go to the terminal, which the form
	// owns.
	LogOutput string `yaml:"log_output"`
}

// Default returns the default configuration. These defaults apply when
// no config file is given, and as the base the file merges into.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Theme:     ThemeAuto,
		ExportDir: filepath.Join(homeDir, ".local", "share", "vprofile", "exports"),
	}
}

// Load loads configuration from the VPROFILE_CONFIG environment
// variable. When the variable is unset the defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv("VPROFILE_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth; environment variables do not
// override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} patterns in path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.ExportDir = expandVars(c.ExportDir, vars)
	c.LogOutput = expandVars(c.LogOutput, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Theme != ThemeAuto && c.Theme != ThemeDark && c.Theme != ThemeLight {
		errs = append(errs, fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme))
	}

	if c.ExportDir == "" {
		errs = append(errs, fmt.Errorf("export_dir is required"))
	}

	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("history_limit must not be negative"))
	}

	if c.DefaultProvider != "" && !profile.Provider(c.DefaultProvider).Valid() {
		errs = append(errs, fmt.Errorf("default_provider %q is not a registered ITS provider", c.DefaultProvider))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
