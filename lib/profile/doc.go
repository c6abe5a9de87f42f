// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile implements the vehicle ITS profile encoder.
//
// A profile is the colon-delimited string
//
//	<ITS_CODE>:<V2X_HEX>:<HARDWARE_ID>:<ACCESS_HEX>
//
// where ITS_CODE is the 4-digit decimal code of the selected provider,
// V2X_HEX is an 8-bit field of enabled V2X communication modes (2
// uppercase hex digits, MSB-first bit assignment), HARDWARE_ID is 32
// bits of fresh randomness (8 uppercase hex digits), and ACCESS_HEX is
// a 16-bit field of granted system access permissions (4 uppercase hex
// digits, MSB-first).
//
// The provider table and both bit tables are fixed at build time.
// [Encoder.Encode] is the only operation with an effect beyond pure
// computation, and that effect is limited to drawing the hardware ID
// from the encoder's randomness source. The source is injectable so
// tests can pin it.
package profile
