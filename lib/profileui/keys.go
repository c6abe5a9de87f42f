// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the profile generator form.
type KeyMap struct {
	// Movement within the focused section (checkbox cursor, history
	// cursor, dropdown cursor).
	Up   key.Binding
	Down key.Binding

	// Section cycling: provider -> V2X -> access -> history.
	NextSection key.Binding
	PrevSection key.Binding

	// Access permission tab switching.
	TabControl  key.Binding
	TabSafety   key.Binding
	TabMedia    key.Binding
	TabServices key.Binding

	// Selection.
	Toggle    key.Binding // Toggle the checkbox under the cursor.
	Open      key.Binding // Open the provider dropdown / export the history entry.
	SelectAll key.Binding // Check every box in the focused group.
	ClearAll  key.Binding // Uncheck every box in every group.

	// Actions.
	Generate     key.Binding
	Copy         key.Binding // Copy the last generated profile to the clipboard.
	ClearHistory key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "prev section"),
	),
	TabControl: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "control"),
	),
	TabSafety: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "safety"),
	),
	TabMedia: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "media"),
	),
	TabServices: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "services"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select/export"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	ClearAll: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear selections"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy profile"),
	),
	ClearHistory: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear history"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
