// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CheckboxItem is a single entry in a checkbox group.
type CheckboxItem struct {
	Label   string // Display text next to the box.
	Value   string // Value reported to the model.
	Checked bool
}

// CheckboxGroup is a multi-select list of checkboxes with a movement
// cursor. The owning model routes key input to it while the group has
// focus: up/down move the cursor, space toggles, plus bulk
// select-all/clear-all actions.
type CheckboxGroup struct {
	Items  []CheckboxItem
	Cursor int
}

// NewCheckboxGroup builds a group with one unchecked item per value,
// using the value as the label.
func NewCheckboxGroup(values []string) CheckboxGroup {
	items := make([]CheckboxItem, len(values))
	for index, value := range values {
		items[index] = CheckboxItem{Label: value, Value: value}
	}
	return CheckboxGroup{Items: items}
}

// MoveUp moves the cursor up by one, stopping at the first item.
func (group *CheckboxGroup) MoveUp() {
	if group.Cursor > 0 {
		group.Cursor--
	}
}

// MoveDown moves the cursor down by one, stopping at the last item.
func (group *CheckboxGroup) MoveDown() {
	if group.Cursor < len(group.Items)-1 {
		group.Cursor++
	}
}

// Toggle flips the checked state of the item under the cursor.
func (group *CheckboxGroup) Toggle() {
	if group.Cursor >= 0 && group.Cursor < len(group.Items) {
		group.Items[group.Cursor].Checked = !group.Items[group.Cursor].Checked
	}
}

// SetAll checks or unchecks every item in the group.
func (group *CheckboxGroup) SetAll(checked bool) {
	for index := range group.Items {
		group.Items[index].Checked = checked
	}
}

// AnyChecked reports whether at least one item is checked.
func (group *CheckboxGroup) AnyChecked() bool {
	for _, item := range group.Items {
		if item.Checked {
			return true
		}
	}
	return false
}

// Selections returns the checked state keyed by item value.
func (group *CheckboxGroup) Selections() map[string]bool {
	selections := make(map[string]bool, len(group.Items))
	for _, item := range group.Items {
		selections[item.Value] = item.Checked
	}
	return selections
}

// Render produces the group's lines laid out in the given number of
// columns, column-major (the first ceil(n/columns) items fill the
// first column). Each cell is columnWidth columns wide. The cursor row
// is highlighted only when the group has focus, so an unfocused group
// still shows its checked state without claiming attention.
func (group *CheckboxGroup) Render(theme Theme, focused bool, columns, columnWidth int) string {
	if columns < 1 {
		columns = 1
	}
	rows := (len(group.Items) + columns - 1) / columns

	normalStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	checkedStyle := lipgloss.NewStyle().Foreground(theme.Success)
	cursorStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for row := 0; row < rows; row++ {
		var cells []string
		for column := 0; column < columns; column++ {
			index := column*rows + row
			if index >= len(group.Items) {
				break
			}
			item := group.Items[index]

			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			content := box + " " + item.Label

			pad := columnWidth - ansi.StringWidth(content)
			if pad < 0 {
				pad = 0
			}

			var cell string
			switch {
			case focused && index == group.Cursor:
				cell = cursorStyle.Render(content) + strings.Repeat(" ", pad)
			case item.Checked:
				cell = checkedStyle.Render(content) + strings.Repeat(" ", pad)
			default:
				cell = normalStyle.Render(content) + strings.Repeat(" ", pad)
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	return strings.Join(lines, "\n")
}
