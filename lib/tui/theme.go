// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette and visual properties for the
// VProfile terminal UI. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories of this UI: validation states and the four
// profile segments.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row / focused widget item.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Validation states. Success marks satisfied requirements and
	// checked boxes, Warning marks missing selections, Error marks
	// failed operations in the status bar.
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Segment colors for the generated profile breakdown, indexed in
	// wire order: ITS code, V2X hex, hardware ID, access hex.
	SegmentColors [4]lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Overlay boxes (dropdowns).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// SegmentColor returns the color for a profile segment index (0-3).
// Out-of-range values return NormalText.
func (theme Theme) SegmentColor(segment int) lipgloss.Color {
	if segment < 0 || segment >= len(theme.SegmentColors) {
		return theme.NormalText
	}
	return theme.SegmentColors[segment]
}

// DarkTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DarkTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	Success: lipgloss.Color("114"), // green
	Warning: lipgloss.Color("220"), // yellow/amber
	Error:   lipgloss.Color("196"), // red

	SegmentColors: [4]lipgloss.Color{
		lipgloss.Color("75"),  // ITS code: blue
		lipgloss.Color("141"), // V2X field: light purple
		lipgloss.Color("245"), // hardware ID: gray (random, no meaning)
		lipgloss.Color("208"), // access scope: orange
	},

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}

// LightTheme is the light-background variant. Same semantic roles,
// darker ink.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	Success: lipgloss.Color("28"),  // dark green
	Warning: lipgloss.Color("130"), // brown/amber
	Error:   lipgloss.Color("124"), // dark red

	SegmentColors: [4]lipgloss.Color{
		lipgloss.Color("25"),  // ITS code: blue
		lipgloss.Color("91"),  // V2X field: purple
		lipgloss.Color("243"), // hardware ID: gray
		lipgloss.Color("166"), // access scope: orange
	},

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("249"),
	HelpText:         lipgloss.Color("247"),

	OverlayForeground: lipgloss.Color("235"),
	OverlayBackground: lipgloss.Color("254"),
}

// DetectTheme queries the terminal background via termenv and returns
// the matching built-in theme. Falls back to DarkTheme when detection
// is unavailable (termenv reports a dark background by default).
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme
	}
	return LightTheme
}
