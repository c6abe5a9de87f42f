// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the vprofile
// generator.
//
// Configuration is loaded from a single YAML file specified by:
//   - VPROFILE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; without a file the
// built-in defaults apply. Environment variables never override config
// values. The only expansion performed is ${VAR} and ${VAR:-default}
// in path fields for portability.
package config
