// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vprofile-foundation/vprofile/lib/history"
	"github.com/vprofile-foundation/vprofile/lib/profile"
)

// newTestModel builds a model with a deterministic encoder (hardware
// IDs count up from zero), a fixed-clock session, and a temp export
// directory.
func newTestModel(t *testing.T) Model {
	t.Helper()

	var next uint32
	encoder := profile.NewEncoderWithRandom(func() (uint32, error) {
		value := next
		next++
		return value, nil
	})

	clock := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	session := history.NewSession(history.WithClock(func() time.Time {
		now := clock
		clock = clock.Add(time.Second)
		return now
	}))

	model := NewModel(encoder, session)
	model.SetExportDir(t.TempDir())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// press feeds a sequence of key events through Update. Multi-byte
// names address special keys; anything else is sent as runes.
func press(t *testing.T, model Model, keys ...string) Model {
	t.Helper()
	for _, name := range keys {
		var msg tea.KeyMsg
		switch name {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
		}
		updated, _ := model.Update(msg)
		model = updated.(Model)
	}
	return model
}

func TestSectionCycling(t *testing.T) {
	model := newTestModel(t)

	if model.focus != FocusProvider {
		t.Fatalf("initial focus = %d, want FocusProvider", model.focus)
	}

	model = press(t, model, "tab")
	if model.focus != FocusV2X {
		t.Errorf("focus after tab = %d, want FocusV2X", model.focus)
	}
	model = press(t, model, "tab", "tab")
	if model.focus != FocusHistory {
		t.Errorf("focus after three tabs = %d, want FocusHistory", model.focus)
	}
	model = press(t, model, "tab")
	if model.focus != FocusProvider {
		t.Errorf("focus should wrap back to FocusProvider, got %d", model.focus)
	}
	model = press(t, model, "shift+tab")
	if model.focus != FocusHistory {
		t.Errorf("shift+tab should cycle backwards, got %d", model.focus)
	}
}

func TestProviderDropdownSelection(t *testing.T) {
	model := newTestModel(t)

	model = press(t, model, "enter")
	if model.dropdown == nil {
		t.Fatal("enter on the provider line should open the dropdown")
	}
	if len(model.dropdown.Options) != 10 {
		t.Fatalf("dropdown has %d options, want 10", len(model.dropdown.Options))
	}

	// Move to the third provider (Schneider) and select it.
	model = press(t, model, "j", "j", "enter")
	if model.dropdown != nil {
		t.Fatal("selection should close the dropdown")
	}
	if model.provider != profile.ProviderSchneider {
		t.Errorf("provider = %s, want Schneider", model.provider)
	}
}

func TestProviderDropdownDismiss(t *testing.T) {
	model := newTestModel(t)

	model = press(t, model, "enter", "j", "esc")
	if model.dropdown != nil {
		t.Fatal("escape should close the dropdown")
	}
	if model.provider != "" {
		t.Errorf("dismissing the dropdown should not select, got %s", model.provider)
	}
}

func TestV2XToggling(t *testing.T) {
	model := newTestModel(t)
	model = press(t, model, "tab") // focus V2X

	model = press(t, model, "space")
	if !model.v2xGroup.Items[0].Checked {
		t.Error("space should check V2V")
	}

	model = press(t, model, "j", "space")
	if !model.v2xGroup.Items[1].Checked {
		t.Error("j+space should check V2I")
	}

	model = press(t, model, "space")
	if model.v2xGroup.Items[1].Checked {
		t.Error("second space should uncheck V2I")
	}
}

func TestAccessTabSwitching(t *testing.T) {
	model := newTestModel(t)

	model = press(t, model, "3")
	if model.accessTab != TabMedia {
		t.Errorf("accessTab = %d, want TabMedia", model.accessTab)
	}
	if model.focus != FocusAccess {
		t.Errorf("tab key should focus the access section, got %d", model.focus)
	}

	model = press(t, model, "space")
	if !model.accessGroups[TabMedia].Items[0].Checked {
		t.Error("space should check VIDEO_STREAM on the media tab")
	}
}

func TestSelectAllAndClearAll(t *testing.T) {
	model := newTestModel(t)

	model = press(t, model, "tab", "a") // focus V2X, select all
	for index, item := range model.v2xGroup.Items {
		if !item.Checked {
			t.Fatalf("V2X item %d unchecked after select-all", index)
		}
	}

	model = press(t, model, "tab", "a") // focus access, select all on Control tab
	if !model.accessGroups[TabControl].AnyChecked() {
		t.Fatal("select-all should check the active access tab")
	}
	if model.accessGroups[TabSafety].AnyChecked() {
		t.Error("select-all must only affect the focused group")
	}

	model = press(t, model, "x")
	if model.v2xGroup.AnyChecked() || model.accessGroups[TabControl].AnyChecked() {
		t.Error("clear-all should uncheck every group")
	}
}

func TestGenerateBlockedUntilComplete(t *testing.T) {
	model := newTestModel(t)

	model = press(t, model, "g")
	if model.session.Len() != 0 {
		t.Fatal("generate with missing selections must not record history")
	}
	if model.statusKind != statusWarning {
		t.Errorf("status kind = %d, want warning", model.statusKind)
	}
	if !strings.Contains(model.statusText, "ITS provider") {
		t.Errorf("status %q should name the missing provider", model.statusText)
	}
	if !strings.Contains(model.statusText, "V2X") || !strings.Contains(model.statusText, "access") {
		t.Errorf("status %q should name all missing categories", model.statusText)
	}
}

// completeForm selects Siemens, V2V, and READ_CAN — the minimal valid
// form.
func completeForm(t *testing.T, model Model) Model {
	t.Helper()
	model = press(t, model, "enter", "enter") // open dropdown, select Siemens
	model = press(t, model, "tab", "space")   // V2V
	model = press(t, model, "tab", "space")   // READ_CAN
	return model
}

func TestGenerateRecordsHistory(t *testing.T) {
	model := newTestModel(t)
	model = completeForm(t, model)

	model = press(t, model, "g")
	if model.session.Len() != 1 {
		t.Fatalf("session length = %d, want 1", model.session.Len())
	}
	if model.lastEntry == nil {
		t.Fatal("lastEntry should be set after generation")
	}

	// Deterministic test encoder: first hardware ID is zero.
	if got := model.lastEntry.Profile.String(); got != "1126:80:00000000:8000" {
		t.Errorf("generated profile = %s, want 1126:80:00000000:8000", got)
	}
	if model.statusKind != statusSuccess {
		t.Errorf("status kind = %d, want success", model.statusKind)
	}

	// A second generation appends and draws a fresh hardware ID.
	model = press(t, model, "g")
	if model.session.Len() != 2 {
		t.Fatalf("session length after second generate = %d, want 2", model.session.Len())
	}
	if got := model.lastEntry.Profile.String(); got != "1126:80:00000001:8000" {
		t.Errorf("second profile = %s, want 1126:80:00000001:8000", got)
	}
}

func TestHistoryExport(t *testing.T) {
	model := newTestModel(t)
	model = completeForm(t, model)
	model = press(t, model, "g")

	// Focus history (one more tab from access) and export the entry.
	model = press(t, model, "tab", "enter")
	if model.statusKind != statusSuccess {
		t.Fatalf("export status kind = %d (%s), want success", model.statusKind, model.statusText)
	}

	path := filepath.Join(model.exportDir, "profile_Siemens_092653.txt")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(content) != "1126:80:00000000:8000" {
		t.Errorf("export content = %q", content)
	}
}

func TestClearHistory(t *testing.T) {
	model := newTestModel(t)
	model = completeForm(t, model)
	model = press(t, model, "g", "g", "g")
	if model.session.Len() != 3 {
		t.Fatalf("session length = %d, want 3", model.session.Len())
	}

	model = press(t, model, "C")
	if model.session.Len() != 0 {
		t.Errorf("session length after clear = %d, want 0", model.session.Len())
	}

	// Entries generated after the clear are visible again.
	model = press(t, model, "g")
	if model.session.Len() != 1 {
		t.Errorf("session length after post-clear generate = %d, want 1", model.session.Len())
	}
}

func TestHistoryCursorBounds(t *testing.T) {
	model := newTestModel(t)
	model = completeForm(t, model)
	model = press(t, model, "g", "g")

	model = press(t, model, "tab") // focus history
	model = press(t, model, "k")
	if model.historyCursor != 0 {
		t.Errorf("cursor above top = %d, want 0", model.historyCursor)
	}
	model = press(t, model, "j", "j", "j")
	if model.historyCursor != 1 {
		t.Errorf("cursor below bottom = %d, want 1", model.historyCursor)
	}
}

func TestStatusFade(t *testing.T) {
	model := newTestModel(t)
	model = press(t, model, "g") // warning status

	// A stale fade (older sequence) must not clear a newer notice.
	updated, _ := model.Update(statusFadeMsg{sequence: model.statusSequence - 1})
	model = updated.(Model)
	if model.statusText == "" {
		t.Fatal("stale fade cleared a live status")
	}

	updated, _ = model.Update(statusFadeMsg{sequence: model.statusSequence})
	model = updated.(Model)
	if model.statusText != "" {
		t.Error("matching fade should clear the status")
	}
}

func TestViewShowsValidationAndProfile(t *testing.T) {
	model := newTestModel(t)

	view := model.View()
	if !strings.Contains(view, "(none selected)") {
		t.Error("view should show the unselected provider placeholder")
	}
	if !strings.Contains(view, "Missing:") {
		t.Error("view should list missing requirements")
	}
	if !strings.Contains(view, "no profiles generated yet") {
		t.Error("view should show the empty history placeholder")
	}

	model = completeForm(t, model)
	model = press(t, model, "g")
	view = model.View()

	if !strings.Contains(view, "Siemens") {
		t.Error("view should show the selected provider")
	}
	if !strings.Contains(view, "00000000") {
		t.Error("view should show the generated hardware ID segment")
	}
	if !strings.Contains(view, "All requirements met") {
		t.Error("view should show the satisfied-requirements line")
	}
	if !strings.Contains(view, "Profile History (1)") {
		t.Error("view should show the history count")
	}
}

func TestViewDropdownOverlay(t *testing.T) {
	model := newTestModel(t)
	model = press(t, model, "enter")

	view := model.View()
	for _, provider := range []string{"Siemens", "Harman", "NEC"} {
		if !strings.Contains(view, provider) {
			t.Errorf("dropdown view should list %s", provider)
		}
	}
}
