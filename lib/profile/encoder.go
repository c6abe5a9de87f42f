// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Encoder produces vehicle ITS profiles from selection sets. The only
// non-deterministic input is the hardware ID randomness source, which
// is fixed at construction so tests can substitute a deterministic
// generator.
//
// An Encoder is stateless apart from the source and safe for
// concurrent use when the source is.
type Encoder struct {
	random func() (uint32, error)
}

// NewEncoder returns an encoder drawing hardware IDs from crypto/rand.
func NewEncoder() *Encoder {
	return &Encoder{random: cryptoRandom}
}

// NewEncoderWithRandom returns an encoder drawing hardware IDs from
// the given source. The source must return 32 uniformly random bits
// per call for the hardware ID's uniqueness property to hold.
func NewEncoderWithRandom(random func() (uint32, error)) *Encoder {
	return &Encoder{random: random}
}

// cryptoRandom draws 32 bits from the operating system's CSPRNG.
func cryptoRandom() (uint32, error) {
	var buffer [4]byte
	if _, err := rand.Read(buffer[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buffer[:]), nil
}

// Encode builds a profile from a provider and two selection sets.
//
// The provider must be in the fixed provider table; an unregistered
// name returns an [UnknownProviderError]. Selection keys that are not
// registered modes are ignored. Encode does not enforce the "at least
// one selection per category" rule — that constraint belongs to the
// caller, which owns the closed choice surface; an all-false category
// simply encodes as a zero field.
//
// Encode has no side effects: it does not touch history and a failed
// call produces nothing.
func (encoder *Encoder) Encode(provider Provider, v2xSelections map[V2XMode]bool, accessSelections map[AccessMode]bool) (Profile, error) {
	code, err := provider.Code()
	if err != nil {
		return Profile{}, err
	}

	hardwareID, err := encoder.random()
	if err != nil {
		return Profile{}, fmt.Errorf("drawing hardware ID: %w", err)
	}

	return Profile{
		ITSCode:    fmt.Sprintf("%04d", code),
		V2XHex:     fmt.Sprintf("%02X", V2XField(v2xSelections)),
		HardwareID: fmt.Sprintf("%08X", hardwareID),
		AccessHex:  fmt.Sprintf("%04X", AccessField(accessSelections)),
	}, nil
}
