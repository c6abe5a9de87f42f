// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// vprofile is an interactive terminal UI for generating vehicle ITS
// (Intelligent Transportation Systems) access profiles.
//
// The form collects an ITS provider, a set of V2X communication modes,
// and a set of system access permissions, then encodes them into the
// colon-separated profile string
//
//	<ITS_CODE>:<V2X_HEX>:<HARDWARE_ID>:<ACCESS_HEX>
//
// where the hardware ID segment is freshly drawn from a cryptographic
// random source on every generation. Generated profiles accumulate in
// an in-memory session history that can be exported entry by entry to
// text files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vprofile-foundation/vprofile/lib/config"
	"github.com/vprofile-foundation/vprofile/lib/history"
	"github.com/vprofile-foundation/vprofile/lib/profile"
	"github.com/vprofile-foundation/vprofile/lib/profileui"
	"github.com/vprofile-foundation/vprofile/lib/tui"
	"github.com/vprofile-foundation/vprofile/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var exportDir string
	var themeName string
	var providerName string
	var historyLimit int
	var logOutput string

	flagSet := pflag.NewFlagSet("vprofile", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to vprofile.yaml (default: $VPROFILE_CONFIG)")
	flagSet.StringVar(&exportDir, "export-dir", "", "directory for exported profile files (overrides config)")
	flagSet.StringVar(&themeName, "theme", "", "color theme: auto, dark, or light (overrides config)")
	flagSet.StringVar(&providerName, "provider", "", "preselect an ITS provider (overrides config)")
	flagSet.IntVar(&historyLimit, "history-limit", -1, "cap on session history entries, 0 for unlimited (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("vprofile")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags override the config file.
	if exportDir != "" {
		cfg.ExportDir = exportDir
	}
	if themeName != "" {
		cfg.Theme = config.Theme(themeName)
	}
	if providerName != "" {
		cfg.DefaultProvider = providerName
	}
	if historyLimit >= 0 {
		cfg.HistoryLimit = historyLimit
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("vprofile is an interactive terminal application; stdout is not a terminal")
	}

	logger, loggerCleanup, err := openLogger(cfg.LogOutput)
	if err != nil {
		return err
	}
	defer loggerCleanup()

	var options []history.Option
	if cfg.HistoryLimit > 0 {
		options = append(options, history.WithLimit(cfg.HistoryLimit))
	}
	session := history.NewSession(options...)

	model := profileui.NewModel(profile.NewEncoder(), session)
	model.SetTheme(selectTheme(cfg.Theme))
	model.SetExportDir(cfg.ExportDir)
	if cfg.DefaultProvider != "" {
		model.SetProvider(profile.Provider(cfg.DefaultProvider))
	}

	logger.Info("starting profile generator",
		"export_dir", cfg.ExportDir,
		"history_limit", cfg.HistoryLimit,
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if err != nil {
		logger.Error("program exited with error", "error", err)
	}
	return err
}

// loadConfig resolves the configuration: an explicit --config path
// wins, then $VPROFILE_CONFIG, then built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", configPath, err)
		}
		return cfg, nil
	}
	return config.Load()
}

// selectTheme maps the configured theme name to a palette. Auto asks
// the terminal for its background color.
func selectTheme(theme config.Theme) tui.Theme {
	switch theme {
	case config.ThemeDark:
		return tui.DarkTheme
	case config.ThemeLight:
		return tui.LightTheme
	default:
		return tui.DetectTheme()
	}
}

// openLogger returns a logger writing JSON records to the given file
// path, or a disabled logger when the path is empty. Logs never go to
// the terminal, which the form owns.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Vehicle ITS profile generator — interactive terminal UI.

Select an ITS provider, V2X communication modes, and system access
permissions, then generate a profile string of the form

  <ITS_CODE>:<V2X_HEX>:<HARDWARE_ID>:<ACCESS_HEX>

The hardware ID segment is freshly randomized on every generation.
Generated profiles accumulate in the session history pane, where each
entry can be exported to a text file or copied to the clipboard.

Configuration is read from the YAML file named by $VPROFILE_CONFIG or
--config; flags override file values.

Usage:
  vprofile [flags]

Examples:
  # Open the generator with defaults
  vprofile

  # Force the light palette and export into the current directory
  vprofile --theme light --export-dir .

  # Preselect a provider and keep at most 50 history entries
  vprofile --provider Siemens --history-limit 50

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
