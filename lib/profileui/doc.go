// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// Package profileui implements the interactive terminal form for
// generating vehicle ITS profiles. Built on bubbletea (Elm
// architecture), it presents the provider picker, the V2X mode
// checkboxes, and the tabbed access permission groups, validates that
// every category has a selection, and drives the encoder on demand.
//
// Generic UI components (theme, checkbox groups, dropdown overlays,
// overlay splicing) live in [tui]. Profile-specific logic (the form
// layout, validation rules, generation, the session history pane, and
// per-entry export) stays in this package.
//
// Data flow:
//
//	[operator keystrokes]
//	        | bubbletea event loop
//	    [Model] -- Generate --> lib/profile.Encoder
//	        |                        |
//	        |<-- Profile ------------+
//	        |
//	  [history.Session]  [terminal output]  [export files]
package profileui
