// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vprofile-foundation/vprofile/lib/profile"
	"github.com/vprofile-foundation/vprofile/lib/tui"
)

// Fixed layout coordinates for the provider line. The dropdown overlay
// anchors directly beneath the rendered provider value.
const (
	providerLineY  = 2
	providerValueX = 19
)

// checkboxColumnWidth is the cell width for checkbox layout. Wide
// enough for "[x] POWERTRAIN_CTRL" plus padding.
const checkboxColumnWidth = 22

// View implements tea.Model. Renders the full form frame.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, model.renderHeader())
	sections = append(sections, model.renderSeparator())
	sections = append(sections, model.renderProviderLine())
	sections = append(sections, "")
	sections = append(sections, model.renderV2XSection())
	sections = append(sections, "")
	sections = append(sections, model.renderAccessSection())
	sections = append(sections, "")
	sections = append(sections, model.renderRequirements())

	if model.lastEntry != nil {
		sections = append(sections, "")
		sections = append(sections, model.renderGenerated())
	}

	sections = append(sections, "")
	sections = append(sections, model.renderHistory())
	sections = append(sections, model.renderSeparator())
	sections = append(sections, model.renderHelp())
	sections = append(sections, model.renderStatus())

	output := strings.Join(sections, "\n")

	if model.dropdown != nil {
		output = tui.SpliceOverlay(output, model.dropdown.Render(model.theme),
			model.dropdown.AnchorX, model.dropdown.AnchorY)
	}

	return output
}

// renderHeader renders the title line.
func (model Model) renderHeader() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render(" Vehicle ITS Profile Generator")
}

// renderSeparator renders a full-width horizontal rule.
func (model Model) renderSeparator() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
}

// sectionTitle styles a numbered section heading, highlighting the
// focused section.
func (model Model) sectionTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground)
	if focused {
		style = style.Bold(true).Foreground(model.theme.SelectedForeground)
	}
	return style.Render(title)
}

// renderProviderLine renders the provider picker line. The value
// column starts at providerValueX so the dropdown overlay lines up
// beneath it.
func (model Model) renderProviderLine() string {
	title := model.sectionTitle(" 1. ITS Provider", model.focus == FocusProvider)

	var value string
	if model.provider == "" {
		value = lipgloss.NewStyle().
			Foreground(model.theme.Warning).
			Render("▾ (none selected)")
	} else {
		value = lipgloss.NewStyle().
			Foreground(model.theme.Success).
			Render("▾ " + string(model.provider))
	}

	// Pad the title to the value column.
	pad := providerValueX - len(" 1. ITS Provider")
	return title + strings.Repeat(" ", pad) + value
}

// renderV2XSection renders the V2X mode checkbox group in two
// columns, mirroring the original form's split.
func (model Model) renderV2XSection() string {
	focused := model.focus == FocusV2X
	title := model.sectionTitle(" 2. V2X Communication Modes", focused)
	if !model.v2xGroup.AnyChecked() {
		title += lipgloss.NewStyle().
			Foreground(model.theme.Warning).
			Render("  ⚠ select at least one")
	}

	boxes := model.v2xGroup.Render(model.theme, focused, 2, checkboxColumnWidth)
	return title + "\n" + indent(boxes, 4)
}

// renderAccessSection renders the access permission tab bar and the
// active tab's checkbox group. The group area is padded to the height
// of the tallest tab so switching tabs does not shift the layout.
func (model Model) renderAccessSection() string {
	focused := model.focus == FocusAccess
	title := model.sectionTitle(" 3. System Access Permissions", focused)

	anyAccess := false
	for tab := range model.accessGroups {
		if model.accessGroups[tab].AnyChecked() {
			anyAccess = true
			break
		}
	}
	if !anyAccess {
		title += lipgloss.NewStyle().
			Foreground(model.theme.Warning).
			Render("  ⚠ select at least one")
	}

	var tabs []string
	for tab, tabTitle := range accessTabTitles {
		count := 0
		for _, item := range model.accessGroups[tab].Items {
			if item.Checked {
				count++
			}
		}
		label := fmt.Sprintf("%d:%s", tab+1, tabTitle)
		if count > 0 {
			label = fmt.Sprintf("%s(%d)", label, count)
		}

		style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		if AccessTab(tab) == model.accessTab {
			style = lipgloss.NewStyle().
				Bold(true).
				Foreground(model.theme.SelectedForeground).
				Background(model.theme.SelectedBackground)
		}
		tabs = append(tabs, style.Render(" "+label+" "))
	}
	tabBar := "    " + strings.Join(tabs, " ")

	boxes := model.accessGroups[model.accessTab].Render(model.theme, focused, 1, checkboxColumnWidth)

	// Pad to the tallest tab (Control and Services hold five rows).
	lines := strings.Count(boxes, "\n") + 1
	padding := strings.Repeat("\n", maxAccessRows-lines)

	return title + "\n" + tabBar + "\n" + indent(boxes, 4) + padding
}

// maxAccessRows is the row count of the tallest access tab.
const maxAccessRows = 5

// renderRequirements renders the generation readiness line.
func (model Model) renderRequirements() string {
	missing := model.missingRequirements()
	if len(missing) == 0 {
		return lipgloss.NewStyle().
			Foreground(model.theme.Success).
			Render(" ✓ All requirements met — press g to generate")
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.Warning).
		Render(" ✗ Missing: " + strings.Join(missing, ", "))
}

// renderGenerated renders the most recent profile with its
// four-segment breakdown and active mode summary.
func (model Model) renderGenerated() string {
	entry := model.lastEntry
	segments := []string{
		entry.Profile.ITSCode,
		entry.Profile.V2XHex,
		entry.Profile.HardwareID,
		entry.Profile.AccessHex,
	}

	var colored []string
	for index, segment := range segments {
		colored = append(colored, lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.SegmentColor(index)).
			Render(segment))
	}
	separator := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(":")

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	labels := faint.Render("    ITS code · V2X profile · hardware ID · access scope")

	summary := faint.Render(fmt.Sprintf("    Active V2X: %s   Active access: %s",
		joinV2X(entry.V2XModes), joinAccess(entry.AccessModes)))

	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Render(" Generated profile")

	return title + "\n    " + strings.Join(colored, separator) + "\n" + labels + "\n" + summary
}

// renderHistory renders the newest-first history pane with its scroll
// window.
func (model Model) renderHistory() string {
	entries := model.displayEntries()
	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground)
	if model.focus == FocusHistory {
		title = title.Bold(true).Foreground(model.theme.SelectedForeground)
	}
	header := title.Render(fmt.Sprintf(" 4. Profile History (%d)", len(entries)))

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("    no profiles generated yet")
		return header + "\n" + empty
	}

	var rows []string
	end := model.historyScroll + historyVisibleMax
	if end > len(entries) {
		end = len(entries)
	}
	for index := model.historyScroll; index < end; index++ {
		entry := entries[index]
		row := fmt.Sprintf("  %s  %-9s  %s",
			entry.Timestamp.Format("15:04:05"),
			entry.Provider,
			entry.Profile.String())

		if model.focus == FocusHistory && index == model.historyCursor {
			row = lipgloss.NewStyle().
				Background(model.theme.SelectedBackground).
				Foreground(model.theme.SelectedForeground).
				Render("> " + row)
		} else {
			row = lipgloss.NewStyle().
				Foreground(model.theme.NormalText).
				Render("  " + row)
		}
		rows = append(rows, row)
	}

	return header + "\n" + strings.Join(rows, "\n")
}

// renderHelp renders the key binding help bar.
func (model Model) renderHelp() string {
	bindings := []string{
		"Tab sections",
		"j/k move",
		"Space toggle",
		"Enter select/export",
		"1-4 access tabs",
		"a all",
		"x clear",
		"g generate",
		"c copy",
		"C clear history",
		"q quit",
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(" " + strings.Join(bindings, " · "))
}

// renderStatus renders the status bar notice, or an empty line to
// keep the frame height stable.
func (model Model) renderStatus() string {
	if model.statusText == "" {
		return ""
	}

	var color lipgloss.Color
	switch model.statusKind {
	case statusSuccess:
		color = model.theme.Success
	case statusWarning:
		color = model.theme.Warning
	case statusError:
		color = model.theme.Error
	default:
		color = model.theme.NormalText
	}
	return lipgloss.NewStyle().Foreground(color).Render(" " + model.statusText)
}

// indent prefixes every line of block with the given number of spaces.
func indent(block string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(block, "\n")
	for index := range lines {
		lines[index] = prefix + lines[index]
	}
	return strings.Join(lines, "\n")
}

// joinV2X renders a V2X mode list for the summary line.
func joinV2X(modes []profile.V2XMode) string {
	if len(modes) == 0 {
		return "none"
	}
	names := make([]string, len(modes))
	for index, mode := range modes {
		names[index] = string(mode)
	}
	return strings.Join(names, ", ")
}

// joinAccess renders an access mode list for the summary line.
func joinAccess(modes []profile.AccessMode) string {
	if len(modes) == 0 {
		return "none"
	}
	names := make([]string, len(modes))
	for index, mode := range modes {
		names[index] = string(mode)
	}
	return strings.Join(names, ", ")
}
