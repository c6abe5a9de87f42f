// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"time"

	"github.com/vprofile-foundation/vprofile/lib/profile"
)

// Entry is one generated profile with the context it was generated
// under. Entries are immutable once recorded.
type Entry struct {
	// Timestamp is the wall-clock time of generation.
	Timestamp time.Time

	// Provider is the ITS provider the profile was generated for.
	Provider profile.Provider

	// Profile is the generated profile.
	Profile profile.Profile

	// V2XModes lists the V2X modes that were active, in bit order.
	V2XModes []profile.V2XMode

	// AccessModes lists the access permissions that were active, in
	// bit order.
	AccessModes []profile.AccessMode
}

// Session is an ordered, in-memory history of generated profiles.
// It has a single logical writer (the interactive session that owns
// it) and is not safe for concurrent use.
type Session struct {
	entries []Entry
	limit   int
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLimit caps the session at the given number of entries. When a
// record would exceed the cap, the oldest entry is evicted. A limit of
// zero (the default) means unbounded.
func WithLimit(limit int) Option {
	return func(session *Session) { session.limit = limit }
}

// WithClock substitutes the wall clock, for deterministic timestamps
// in tests.
func WithClock(now func() time.Time) Option {
	return func(session *Session) { session.now = now }
}

// NewSession creates an empty history session.
func NewSession(options ...Option) *Session {
	session := &Session{now: time.Now}
	for _, option := range options {
		option(session)
	}
	return session
}

// Record appends an entry for a freshly generated profile, stamping it
// with the current time. The active mode lists are derived from the
// profile's own bit fields, so the entry always agrees with the
// encoded string.
func (session *Session) Record(provider profile.Provider, generated profile.Profile) Entry {
	entry := Entry{
		Timestamp:   session.now(),
		Provider:    provider,
		Profile:     generated,
		V2XModes:    profile.V2XModesOf(generated.V2XField()),
		AccessModes: profile.AccessModesOf(generated.AccessField()),
	}

	session.entries = append(session.entries, entry)
	if session.limit > 0 && len(session.entries) > session.limit {
		overflow := len(session.entries) - session.limit
		session.entries = append(session.entries[:0], session.entries[overflow:]...)
	}
	return entry
}

// Entries returns a snapshot copy of the history, oldest first.
func (session *Session) Entries() []Entry {
	snapshot := make([]Entry, len(session.entries))
	copy(snapshot, session.entries)
	return snapshot
}

// Len returns the number of recorded entries.
func (session *Session) Len() int {
	return len(session.entries)
}

// Clear empties the session. Subsequent reads and exports reflect only
// entries recorded after the clear.
func (session *Session) Clear() {
	session.entries = nil
}
