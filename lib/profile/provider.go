// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "fmt"

// Provider is the name of an ITS (Intelligent Transportation Systems)
// vendor. The set of valid providers is closed: only the names in the
// fixed provider table encode successfully.
type Provider string

// The ten registered ITS providers.
const (
	ProviderSiemens   Provider = "Siemens"
	ProviderHarman    Provider = "Harman"
	ProviderSchneider Provider = "Schneider"
	ProviderTATA      Provider = "TATA"
	ProviderUMTC      Provider = "UMTC"
	ProviderHuawei    Provider = "Huawei"
	ProviderKapsch    Provider = "Kapsch"
	ProviderHitachi   Provider = "Hitachi"
	ProviderGMV       Provider = "GMV"
	ProviderNEC       Provider = "NEC"
)

// providerCodes maps each registered provider to its 4-digit ITS code.
// The assignments are part of the external identifier format and never
// change.
var providerCodes = map[Provider]uint16{
	ProviderSiemens:   1126,
	ProviderHarman:    2852,
	ProviderSchneider: 4389,
	ProviderTATA:      1142,
	ProviderUMTC:      5374,
	ProviderHuawei:    6782,
	ProviderKapsch:    3758,
	ProviderHitachi:   6820,
	ProviderGMV:       9903,
	ProviderNEC:       1096,
}

// providerOrder is the display order for provider choice lists. Kept
// separate from the code map because Go map iteration is unordered.
var providerOrder = []Provider{
	ProviderSiemens,
	ProviderHarman,
	ProviderSchneider,
	ProviderTATA,
	ProviderUMTC,
	ProviderHuawei,
	ProviderKapsch,
	ProviderHitachi,
	ProviderGMV,
	ProviderNEC,
}

// UnknownProviderError reports an encode attempt with a provider name
// that is not in the fixed provider table. Callers distinguish it from
// other failures with errors.As.
type UnknownProviderError struct {
	// Name is the provider name that failed the table lookup.
	Name Provider
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown ITS provider %q", string(e.Name))
}

// Code returns the 4-digit ITS code for a provider, or an
// [UnknownProviderError] when the provider is not registered.
func (p Provider) Code() (uint16, error) {
	code, ok := providerCodes[p]
	if !ok {
		return 0, &UnknownProviderError{Name: p}
	}
	return code, nil
}

// Valid reports whether the provider is in the fixed table.
func (p Provider) Valid() bool {
	_, ok := providerCodes[p]
	return ok
}

// Providers returns the registered providers in display order. The
// returned slice is a copy; callers may reorder it freely.
func Providers() []Provider {
	providers := make([]Provider, len(providerOrder))
	copy(providers, providerOrder)
	return providers
}
