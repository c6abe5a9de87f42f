// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vprofile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Theme != ThemeAuto {
		t.Errorf("default theme = %s, want auto", cfg.Theme)
	}
	if cfg.ExportDir == "" {
		t.Error("default export dir must not be empty")
	}
	if cfg.HistoryLimit != 0 {
		t.Errorf("default history limit = %d, want 0 (unlimited)", cfg.HistoryLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
theme: light
export_dir: /tmp/vprofile-exports
history_limit: 50
default_provider: Kapsch
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("theme = %s, want light", cfg.Theme)
	}
	if cfg.ExportDir != "/tmp/vprofile-exports" {
		t.Errorf("export_dir = %s", cfg.ExportDir)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("history_limit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.DefaultProvider != "Kapsch" {
		t.Errorf("default_provider = %s, want Kapsch", cfg.DefaultProvider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config fails validation: %v", err)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("theme = %s, want dark", cfg.Theme)
	}
	if cfg.ExportDir == "" {
		t.Error("unset export_dir should keep the default")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("HOME", "/home/operator")
	path := writeConfig(t, "export_dir: ${HOME}/profiles\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ExportDir != "/home/operator/profiles" {
		t.Errorf("export_dir = %s, want /home/operator/profiles", cfg.ExportDir)
	}
}

func TestExpandVariablesDefault(t *testing.T) {
	got := expandVars("${VPROFILE_UNSET_VAR:-/fallback}/exports", nil)
	if got != "/fallback/exports" {
		t.Errorf("expansion = %s, want /fallback/exports", got)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad theme", func(c *Config) { c.Theme = "solarized" }, "invalid theme"},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }, "export_dir"},
		{"negative limit", func(c *Config) { c.HistoryLimit = -1 }, "history_limit"},
		{"unknown provider", func(c *Config) { c.DefaultProvider = "Bosch" }, "default_provider"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate accepted an invalid config")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not mention %s", err, test.want)
			}
		})
	}
}

func TestLoadWithoutEnvReturnsDefaults(t *testing.T) {
	t.Setenv("VPROFILE_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != ThemeAuto {
		t.Errorf("theme = %s, want auto", cfg.Theme)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")
	t.Setenv("VPROFILE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("theme = %s, want dark", cfg.Theme)
	}
}
