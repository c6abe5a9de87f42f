// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vprofile-foundation/vprofile/lib/history"
	"github.com/vprofile-foundation/vprofile/lib/profile"
	"github.com/vprofile-foundation/vprofile/lib/tui"
)

// FocusRegion identifies which form section has keyboard focus.
type FocusRegion int

const (
	// FocusProvider means enter opens the ITS provider dropdown.
	FocusProvider FocusRegion = iota
	// FocusV2X means movement and toggling act on the V2X mode group.
	FocusV2X
	// FocusAccess means movement and toggling act on the active
	// access permission tab.
	FocusAccess
	// FocusHistory means movement acts on the history list and enter
	// exports the selected entry.
	FocusHistory
)

// AccessTab identifies one of the four access permission groups. The
// grouping is presentational only — all sixteen permissions land in
// the same 16-bit field.
type AccessTab int

const (
	// TabControl holds CAN bus and vehicle control permissions.
	TabControl AccessTab = iota
	// TabSafety holds ADAS and sensor permissions.
	TabSafety
	// TabMedia holds media and display permissions.
	TabMedia
	// TabServices holds telemetry, update, and comfort permissions.
	TabServices
)

// accessTabCount is the number of access permission tabs.
const accessTabCount = 4

// accessTabTitles are the tab bar labels, indexed by AccessTab.
var accessTabTitles = [accessTabCount]string{"Control", "Safety", "Media", "Services"}

// accessTabModes assigns each permission to its display tab, indexed
// by AccessTab. Order within a tab is bit order.
var accessTabModes = [accessTabCount][]profile.AccessMode{
	TabControl:  {profile.ReadCAN, profile.WriteCAN, profile.BrakeCtrl, profile.SteerCtrl, profile.PowertrainCtrl},
	TabSafety:   {profile.ADASAlerts, profile.SensorFeed},
	TabMedia:    {profile.VideoStream, profile.AudioStream, profile.NavDisplay, profile.HMINotif},
	TabServices: {profile.TelemetryTX, profile.OTAUpdate, profile.Diagnostics, profile.HVACCtrl, profile.LightsCtrl},
}

// historyVisibleMax caps the number of history rows shown in the
// history pane. Older entries stay in the session and remain
// reachable by cursor movement, which scrolls the window.
const historyVisibleMax = 8

// statusFadeDelay is how long transient status bar notices stay
// visible.
const statusFadeDelay = 4 * time.Second

// statusKind classifies a status bar message for styling.
type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// statusFadeMsg clears the status bar notice it was scheduled for.
// The sequence number guards against a stale fade wiping a newer
// notice.
type statusFadeMsg struct {
	sequence int
}

// clipboardWrittenMsg reports completion of the OSC 52 clipboard
// write.
type clipboardWrittenMsg struct{}

// Model is the top-level bubbletea model for the profile generator
// form.
type Model struct {
	encoder *profile.Encoder
	session *history.Session

	theme tui.Theme
	keys  KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Export directory for history entry downloads.
	exportDir string

	// Provider selection. Empty means nothing selected yet.
	provider profile.Provider
	dropdown *tui.DropdownOverlay

	// Selection groups.
	v2xGroup     tui.CheckboxGroup
	accessGroups [accessTabCount]tui.CheckboxGroup
	accessTab    AccessTab

	// Focus and history cursor (index into the newest-first display
	// list).
	focus             FocusRegion
	historyCursor     int
	historyScroll     int
	lastEntry         *history.Entry

	// Status bar notice.
	statusText     string
	statusKind     statusKind
	statusSequence int
}

// NewModel creates the form model. The session is owned by the caller
// and survives the model's value-copy update cycle because it is held
// by pointer.
func NewModel(encoder *profile.Encoder, session *history.Session) Model {
	model := Model{
		encoder:   encoder,
		session:   session,
		theme:     tui.DarkTheme,
		keys:      DefaultKeyMap,
		exportDir: ".",
	}

	v2xValues := make([]string, 0, len(profile.V2XModes()))
	for _, mode := range profile.V2XModes() {
		v2xValues = append(v2xValues, string(mode))
	}
	model.v2xGroup = tui.NewCheckboxGroup(v2xValues)

	for tab := range model.accessGroups {
		values := make([]string, 0, len(accessTabModes[tab]))
		for _, mode := range accessTabModes[tab] {
			values = append(values, string(mode))
		}
		model.accessGroups[tab] = tui.NewCheckboxGroup(values)
	}

	return model
}

// SetTheme replaces the color theme.
func (model *Model) SetTheme(theme tui.Theme) {
	model.theme = theme
}

// SetExportDir sets the directory history entries are exported to.
func (model *Model) SetExportDir(dir string) {
	model.exportDir = dir
}

// SetProvider preselects a provider (from config). Unregistered names
// are ignored — the form then starts with no selection, as usual.
func (model *Model) SetProvider(provider profile.Provider) {
	if provider.Valid() {
		model.provider = provider
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.ready = true
		return model, nil

	case statusFadeMsg:
		if msg.sequence == model.statusSequence {
			model.statusText = ""
			model.statusKind = statusNone
		}
		return model, nil

	case clipboardWrittenMsg:
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(msg)
	}

	return model, nil
}

// handleKey routes a key event by focus region. An active dropdown
// captures everything first.
func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.dropdown != nil {
		return model.handleDropdownKey(msg)
	}

	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.NextSection):
		model.focus = (model.focus + 1) % 4
		return model, nil

	case key.Matches(msg, model.keys.PrevSection):
		model.focus = (model.focus + 3) % 4
		return model, nil

	case key.Matches(msg, model.keys.TabControl):
		return model.switchAccessTab(TabControl)
	case key.Matches(msg, model.keys.TabSafety):
		return model.switchAccessTab(TabSafety)
	case key.Matches(msg, model.keys.TabMedia):
		return model.switchAccessTab(TabMedia)
	case key.Matches(msg, model.keys.TabServices):
		return model.switchAccessTab(TabServices)

	case key.Matches(msg, model.keys.Up):
		return model.moveCursor(-1)
	case key.Matches(msg, model.keys.Down):
		return model.moveCursor(1)

	case key.Matches(msg, model.keys.Toggle):
		switch model.focus {
		case FocusV2X:
			model.v2xGroup.Toggle()
		case FocusAccess:
			model.accessGroups[model.accessTab].Toggle()
		}
		return model, nil

	case key.Matches(msg, model.keys.Open):
		switch model.focus {
		case FocusProvider:
			return model.openProviderDropdown()
		case FocusHistory:
			return model.exportSelectedEntry()
		}
		return model, nil

	case key.Matches(msg, model.keys.SelectAll):
		switch model.focus {
		case FocusV2X:
			model.v2xGroup.SetAll(true)
		case FocusAccess:
			model.accessGroups[model.accessTab].SetAll(true)
		}
		return model, nil

	case key.Matches(msg, model.keys.ClearAll):
		model.v2xGroup.SetAll(false)
		for tab := range model.accessGroups {
			model.accessGroups[tab].SetAll(false)
		}
		return model, nil

	case key.Matches(msg, model.keys.Generate):
		return model.generate()

	case key.Matches(msg, model.keys.Copy):
		return model.copyLastProfile()

	case key.Matches(msg, model.keys.ClearHistory):
		model.session.Clear()
		model.historyCursor = 0
		model.historyScroll = 0
		return model.setStatus(statusSuccess, "Profile history cleared")
	}

	return model, nil
}

// handleDropdownKey routes input while the provider dropdown is open.
func (model Model) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Up):
		model.dropdown.MoveUp()
	case key.Matches(msg, model.keys.Down):
		model.dropdown.MoveDown()
	case key.Matches(msg, model.keys.Open):
		model.provider = profile.Provider(model.dropdown.Selected().Value)
		model.dropdown = nil
	case msg.Type == tea.KeyEscape:
		model.dropdown = nil
	}
	return model, nil
}

// switchAccessTab activates an access tab and moves focus to the
// access section so the tab keys always land somewhere visible.
func (model Model) switchAccessTab(tab AccessTab) (tea.Model, tea.Cmd) {
	model.accessTab = tab
	model.focus = FocusAccess
	return model, nil
}

// moveCursor moves the focused section's cursor by delta.
func (model Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	switch model.focus {
	case FocusV2X:
		if delta < 0 {
			model.v2xGroup.MoveUp()
		} else {
			model.v2xGroup.MoveDown()
		}
	case FocusAccess:
		if delta < 0 {
			model.accessGroups[model.accessTab].MoveUp()
		} else {
			model.accessGroups[model.accessTab].MoveDown()
		}
	case FocusHistory:
		model.historyCursor += delta
		if model.historyCursor < 0 {
			model.historyCursor = 0
		}
		if last := model.session.Len() - 1; model.historyCursor > last && last >= 0 {
			model.historyCursor = last
		}
		model.ensureHistoryCursorVisible()
	}
	return model, nil
}

// ensureHistoryCursorVisible adjusts the history scroll window so the
// cursor row is rendered.
func (model *Model) ensureHistoryCursorVisible() {
	if model.historyCursor < model.historyScroll {
		model.historyScroll = model.historyCursor
	}
	if model.historyCursor >= model.historyScroll+historyVisibleMax {
		model.historyScroll = model.historyCursor - historyVisibleMax + 1
	}
}

// openProviderDropdown builds the dropdown overlay from the fixed
// provider table, anchored under the provider line, with the cursor on
// the current selection.
func (model Model) openProviderDropdown() (tea.Model, tea.Cmd) {
	providers := profile.Providers()
	options := make([]tui.DropdownOption, 0, len(providers))
	cursor := 0
	for index, provider := range providers {
		options = append(options, tui.DropdownOption{
			Label: string(provider),
			Value: string(provider),
		})
		if provider == model.provider {
			cursor = index
		}
	}

	model.dropdown = &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: providerValueX,
		AnchorY: providerLineY + 1,
	}
	return model, nil
}

// missingRequirements lists the unmet preconditions for generation,
// in form order. Empty means ready to generate.
func (model Model) missingRequirements() []string {
	var missing []string
	if model.provider == "" {
		missing = append(missing, "ITS provider")
	}
	if !model.v2xGroup.AnyChecked() {
		missing = append(missing, "at least one V2X mode")
	}
	anyAccess := false
	for tab := range model.accessGroups {
		if model.accessGroups[tab].AnyChecked() {
			anyAccess = true
			break
		}
	}
	if !anyAccess {
		missing = append(missing, "at least one access permission")
	}
	return missing
}

// v2xSelections converts the V2X checkbox state into the encoder's
// selection map.
func (model Model) v2xSelections() map[profile.V2XMode]bool {
	selections := make(map[profile.V2XMode]bool)
	for value, checked := range model.v2xGroup.Selections() {
		selections[profile.V2XMode(value)] = checked
	}
	return selections
}

// accessSelections merges all four tab groups into the encoder's
// selection map.
func (model Model) accessSelections() map[profile.AccessMode]bool {
	selections := make(map[profile.AccessMode]bool)
	for tab := range model.accessGroups {
		for value, checked := range model.accessGroups[tab].Selections() {
			selections[profile.AccessMode(value)] = checked
		}
	}
	return selections
}

// generate validates the form, runs the encoder, and records the
// result. Validation failures and encode errors surface in the status
// bar and leave history untouched.
func (model Model) generate() (tea.Model, tea.Cmd) {
	if missing := model.missingRequirements(); len(missing) > 0 {
		return model.setStatus(statusWarning, "Cannot generate — missing: "+strings.Join(missing, ", "))
	}

	generated, err := model.encoder.Encode(model.provider, model.v2xSelections(), model.accessSelections())
	if err != nil {
		var unknownProvider *profile.UnknownProviderError
		if errors.As(err, &unknownProvider) {
			return model.setStatus(statusError, "Invalid ITS provider: "+string(unknownProvider.Name))
		}
		return model.setStatus(statusError, "Error generating profile: "+err.Error())
	}

	entry := model.session.Record(model.provider, generated)
	model.lastEntry = &entry
	model.historyCursor = 0
	model.historyScroll = 0
	return model.setStatus(statusSuccess, "Profile generated")
}

// exportSelectedEntry writes the history entry under the cursor to the
// export directory.
func (model Model) exportSelectedEntry() (tea.Model, tea.Cmd) {
	entries := model.displayEntries()
	if model.historyCursor >= len(entries) {
		return model, nil
	}

	path, err := history.Export(model.exportDir, entries[model.historyCursor])
	if err != nil {
		return model.setStatus(statusError, "Export failed: "+err.Error())
	}
	return model.setStatus(statusSuccess, "Exported "+path)
}

// copyLastProfile sends the most recently generated profile to the
// system clipboard.
func (model Model) copyLastProfile() (tea.Model, tea.Cmd) {
	if model.lastEntry == nil {
		return model.setStatus(statusWarning, "Nothing to copy — generate a profile first")
	}

	updated, fadeCmd := model.setStatus(statusSuccess, "Copied profile to clipboard")
	return updated, tea.Batch(copyToClipboard(model.lastEntry.Profile.String()), fadeCmd)
}

// displayEntries returns the session history newest first, the order
// the history pane renders.
func (model Model) displayEntries() []history.Entry {
	entries := model.session.Entries()
	for front, back := 0, len(entries)-1; front < back; front, back = front+1, back-1 {
		entries[front], entries[back] = entries[back], entries[front]
	}
	return entries
}

// setStatus installs a status bar notice and schedules its fade.
func (model Model) setStatus(kind statusKind, text string) (Model, tea.Cmd) {
	model.statusKind = kind
	model.statusText = text
	model.statusSequence++

	sequence := model.statusSequence
	return model, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{sequence: sequence}
	})
}
