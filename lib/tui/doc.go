// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// VProfile's interactive form. Built on bubbletea (Elm architecture),
// these components handle the common widget patterns: themed
// rendering, multi-select checkbox groups, dropdown overlays, and
// ANSI-aware overlay splicing.
//
// The form model (lib/profileui) imports this package for consistent
// look and behavior; this package holds no profile-domain logic.
package tui
