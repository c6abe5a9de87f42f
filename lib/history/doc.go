// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// Package history keeps the per-session record of generated profiles.
//
// A [Session] is explicit state owned by its caller (the TUI model
// creates one per run) — there is no package-level history. Entries
// are appended on successful generation only, read back as snapshot
// copies, and discarded when the operator clears the session or the
// process exits. The only thing that leaves memory is the per-entry
// plain-text export.
package history
