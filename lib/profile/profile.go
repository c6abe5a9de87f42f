// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is an encoded vehicle ITS profile. It is a value object:
// once produced by [Encoder.Encode] (or [Parse]) it is never mutated.
type Profile struct {
	// ITSCode is the provider segment: 4 decimal digits.
	ITSCode string

	// V2XHex is the V2X mode field: exactly 2 uppercase hex digits.
	V2XHex string

	// HardwareID is the random hardware identifier: exactly 8
	// uppercase hex digits. It carries no semantic meaning beyond
	// uniqueness and traceability.
	HardwareID string

	// AccessHex is the access scope field: exactly 4 uppercase hex
	// digits.
	AccessHex string
}

// String renders the profile in its external form,
// ITS_CODE:V2X_HEX:HARDWARE_ID:ACCESS_HEX.
func (p Profile) String() string {
	return p.ITSCode + ":" + p.V2XHex + ":" + p.HardwareID + ":" + p.AccessHex
}

// V2XField returns the decoded 8-bit V2X field.
func (p Profile) V2XField() uint8 {
	value, _ := strconv.ParseUint(p.V2XHex, 16, 8)
	return uint8(value)
}

// AccessField returns the decoded 16-bit access scope field.
func (p Profile) AccessField() uint16 {
	value, _ := strconv.ParseUint(p.AccessHex, 16, 16)
	return uint16(value)
}

// segmentWidths are the exact character counts of the four profile
// segments in order: ITS code, V2X hex, hardware ID, access hex.
var segmentWidths = [4]int{4, 2, 8, 4}

// Parse splits a profile string into its four segments, validating
// segment count, segment widths, and digit alphabets. The decimal
// provider segment is not checked against the provider table: parsing
// recovers structure, not provenance.
func Parse(s string) (Profile, error) {
	segments := strings.Split(s, ":")
	if len(segments) != 4 {
		return Profile{}, fmt.Errorf("profile %q: expected 4 colon-separated segments, got %d", s, len(segments))
	}

	for index, segment := range segments {
		if len(segment) != segmentWidths[index] {
			return Profile{}, fmt.Errorf("profile %q: segment %d must be %d characters, got %d",
				s, index, segmentWidths[index], len(segment))
		}
	}

	if _, err := strconv.ParseUint(segments[0], 10, 16); err != nil {
		return Profile{}, fmt.Errorf("profile %q: ITS code segment is not decimal: %w", s, err)
	}
	for _, index := range []int{1, 2, 3} {
		if !isUpperHex(segments[index]) {
			return Profile{}, fmt.Errorf("profile %q: segment %d is not uppercase hexadecimal", s, index)
		}
	}

	return Profile{
		ITSCode:    segments[0],
		V2XHex:     segments[1],
		HardwareID: segments[2],
		AccessHex:  segments[3],
	}, nil
}

// isUpperHex reports whether every character of s is an uppercase
// hexadecimal digit.
func isUpperHex(s string) bool {
	for _, character := range s {
		switch {
		case character >= '0' && character <= '9':
		case character >= 'A' && character <= 'F':
		default:
			return false
		}
	}
	return true
}
