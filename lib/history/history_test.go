// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vprofile-foundation/vprofile/lib/profile"
)

// testClock returns a clock that starts at a fixed instant and
// advances one second per call.
func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

// generate encodes a profile with a pinned hardware ID for
// reproducible history entries.
func generate(t *testing.T, provider profile.Provider, v2x map[profile.V2XMode]bool, access map[profile.AccessMode]bool) profile.Profile {
	t.Helper()
	encoder := profile.NewEncoderWithRandom(func() (uint32, error) { return 0x01020304, nil })
	generated, err := encoder.Encode(provider, v2x, access)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return generated
}

func TestRecordDerivesModeLists(t *testing.T) {
	session := NewSession(WithClock(testClock(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))))
	generated := generate(t, profile.ProviderSiemens,
		map[profile.V2XMode]bool{profile.V2V: true, profile.V2G: true},
		map[profile.AccessMode]bool{profile.ReadCAN: true, profile.Diagnostics: true})

	entry := session.Record(profile.ProviderSiemens, generated)

	if entry.Timestamp != time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) {
		t.Errorf("timestamp = %v", entry.Timestamp)
	}
	if len(entry.V2XModes) != 2 || entry.V2XModes[0] != profile.V2V || entry.V2XModes[1] != profile.V2G {
		t.Errorf("V2X modes = %v, want [V2V V2G]", entry.V2XModes)
	}
	if len(entry.AccessModes) != 2 || entry.AccessModes[0] != profile.ReadCAN || entry.AccessModes[1] != profile.Diagnostics {
		t.Errorf("access modes = %v, want [READ_CAN DIAGNOSTICS]", entry.AccessModes)
	}
	if session.Len() != 1 {
		t.Errorf("session length = %d, want 1", session.Len())
	}
}

func TestEntriesSnapshotIsACopy(t *testing.T) {
	session := NewSession()
	generated := generate(t, profile.ProviderNEC,
		map[profile.V2XMode]bool{profile.V2I: true},
		map[profile.AccessMode]bool{profile.WriteCAN: true})
	session.Record(profile.ProviderNEC, generated)

	snapshot := session.Entries()
	snapshot[0].Provider = "MUTATED"

	if session.Entries()[0].Provider != profile.ProviderNEC {
		t.Error("Entries returned a shared slice")
	}
}

func TestClearEmptiesSession(t *testing.T) {
	session := NewSession()
	generated := generate(t, profile.ProviderGMV,
		map[profile.V2XMode]bool{profile.V2N: true},
		map[profile.AccessMode]bool{profile.SensorFeed: true})

	session.Record(profile.ProviderGMV, generated)
	session.Record(profile.ProviderGMV, generated)
	session.Clear()

	if session.Len() != 0 {
		t.Fatalf("session length after clear = %d, want 0", session.Len())
	}

	// Entries recorded after the clear are visible; the pre-clear ones
	// stay gone.
	session.Record(profile.ProviderGMV, generated)
	if session.Len() != 1 {
		t.Errorf("session length after post-clear record = %d, want 1", session.Len())
	}
}

func TestLimitEvictsOldest(t *testing.T) {
	clock := testClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	session := NewSession(WithLimit(2), WithClock(clock))
	generated := generate(t, profile.ProviderTATA,
		map[profile.V2XMode]bool{profile.V2D: true},
		map[profile.AccessMode]bool{profile.HMINotif: true})

	session.Record(profile.ProviderTATA, generated)
	session.Record(profile.ProviderTATA, generated)
	session.Record(profile.ProviderTATA, generated)

	entries := session.Entries()
	if len(entries) != 2 {
		t.Fatalf("session length = %d, want 2", len(entries))
	}
	// The first entry (12:00:00) was evicted.
	if entries[0].Timestamp.Second() != 1 || entries[1].Timestamp.Second() != 2 {
		t.Errorf("wrong entries survived eviction: %v, %v",
			entries[0].Timestamp, entries[1].Timestamp)
	}
}

func TestExportFileName(t *testing.T) {
	entry := Entry{
		Timestamp: time.Date(2026, 3, 14, 9, 5, 7, 0, time.UTC),
		Provider:  profile.ProviderKapsch,
	}
	if name := ExportFileName(entry); name != "profile_Kapsch_090507.txt" {
		t.Errorf("ExportFileName = %s, want profile_Kapsch_090507.txt", name)
	}
}

func TestExportWritesRawProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	session := NewSession(WithClock(testClock(time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC))))
	generated := generate(t, profile.ProviderHuawei,
		map[profile.V2XMode]bool{profile.V2V: true},
		map[profile.AccessMode]bool{profile.ReadCAN: true})
	entry := session.Record(profile.ProviderHuawei, generated)

	path, err := Export(dir, entry)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "profile_Huawei_163000.txt" {
		t.Errorf("export path = %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(content) != generated.String() {
		t.Errorf("export content = %q, want %q", content, generated)
	}
}
