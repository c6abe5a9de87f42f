// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package profile

// V2XMode is a vehicle-to-X communication mode name. Eight modes map
// onto the bits of the profile's 8-bit V2X field.
type V2XMode string

// The eight V2X communication modes, in bit order. Bit positions are
// MSB-first: V2V occupies the most significant bit of the field, RES
// the least significant.
const (
	V2V V2XMode = "V2V" // Vehicle-to-Vehicle
	V2I V2XMode = "V2I" // Vehicle-to-Infrastructure
	V2N V2XMode = "V2N" // Vehicle-to-Network
	V2P V2XMode = "V2P" // Vehicle-to-Pedestrian
	V2G V2XMode = "V2G" // Vehicle-to-Grid
	V2D V2XMode = "V2D" // Vehicle-to-Device
	V2H V2XMode = "V2H" // Vehicle-to-Home
	RES V2XMode = "RES" // Reserved for future use
)

// v2xBits maps each V2X mode to its MSB-first bit position (0 = most
// significant bit of the 8-bit field).
var v2xBits = map[V2XMode]int{
	V2V: 0,
	V2I: 1,
	V2N: 2,
	V2P: 3,
	V2G: 4,
	V2D: 5,
	V2H: 6,
	RES: 7,
}

// v2xOrder lists the modes in bit order for enumeration and decoding.
var v2xOrder = []V2XMode{V2V, V2I, V2N, V2P, V2G, V2D, V2H, RES}

// AccessMode is a system access permission name. Sixteen permissions
// map onto the bits of the profile's 16-bit access scope field.
type AccessMode string

// The sixteen access permissions, in bit order (MSB-first).
const (
	ReadCAN        AccessMode = "READ_CAN"
	WriteCAN       AccessMode = "WRITE_CAN"
	BrakeCtrl      AccessMode = "BRAKE_CTRL"
	SteerCtrl      AccessMode = "STEER_CTRL"
	PowertrainCtrl AccessMode = "POWERTRAIN_CTRL"
	ADASAlerts     AccessMode = "ADAS_ALERTS"
	SensorFeed     AccessMode = "SENSOR_FEED"
	VideoStream    AccessMode = "VIDEO_STREAM"
	AudioStream    AccessMode = "AUDIO_STREAM"
	NavDisplay     AccessMode = "NAV_DISPLAY"
	HMINotif       AccessMode = "HMI_NOTIF"
	TelemetryTX    AccessMode = "TELEMETRY_TX"
	OTAUpdate      AccessMode = "OTA_UPDATE"
	Diagnostics    AccessMode = "DIAGNOSTICS"
	HVACCtrl       AccessMode = "HVAC_CTRL"
	LightsCtrl     AccessMode = "LIGHTS_CTRL"
)

// accessBits maps each access permission to its MSB-first bit position
// (0 = most significant bit of the 16-bit field).
var accessBits = map[AccessMode]int{
	ReadCAN:        0,
	WriteCAN:       1,
	BrakeCtrl:      2,
	SteerCtrl:      3,
	PowertrainCtrl: 4,
	ADASAlerts:     5,
	SensorFeed:     6,
	VideoStream:    7,
	AudioStream:    8,
	NavDisplay:     9,
	HMINotif:       10,
	TelemetryTX:    11,
	OTAUpdate:      12,
	Diagnostics:    13,
	HVACCtrl:       14,
	LightsCtrl:     15,
}

// accessOrder lists the permissions in bit order.
var accessOrder = []AccessMode{
	ReadCAN, WriteCAN, BrakeCtrl, SteerCtrl,
	PowertrainCtrl, ADASAlerts, SensorFeed, VideoStream,
	AudioStream, NavDisplay, HMINotif, TelemetryTX,
	OTAUpdate, Diagnostics, HVACCtrl, LightsCtrl,
}

// V2XModes returns the eight V2X modes in bit order.
func V2XModes() []V2XMode {
	modes := make([]V2XMode, len(v2xOrder))
	copy(modes, v2xOrder)
	return modes
}

// AccessModes returns the sixteen access permissions in bit order.
func AccessModes() []AccessMode {
	modes := make([]AccessMode, len(accessOrder))
	copy(modes, accessOrder)
	return modes
}

// V2XField packs a selection set into the 8-bit V2X field. A mode's
// bit is set when its map value is true. Keys that are not registered
// V2X modes are ignored rather than rejected: the caller's form may
// carry extra state, and the bit tables are the single authority on
// what encodes.
func V2XField(selected map[V2XMode]bool) uint8 {
	var field uint8
	for mode, enabled := range selected {
		position, known := v2xBits[mode]
		if !enabled || !known {
			continue
		}
		field |= 1 << (7 - position)
	}
	return field
}

// AccessField packs a selection set into the 16-bit access scope
// field. Unknown keys are ignored, matching [V2XField].
func AccessField(selected map[AccessMode]bool) uint16 {
	var field uint16
	for mode, enabled := range selected {
		position, known := accessBits[mode]
		if !enabled || !known {
			continue
		}
		field |= 1 << (15 - position)
	}
	return field
}

// V2XModesOf returns the modes whose bits are set in an 8-bit V2X
// field, in bit order.
func V2XModesOf(field uint8) []V2XMode {
	var modes []V2XMode
	for _, mode := range v2xOrder {
		if field&(1<<(7-v2xBits[mode])) != 0 {
			modes = append(modes, mode)
		}
	}
	return modes
}

// AccessModesOf returns the permissions whose bits are set in a 16-bit
// access scope field, in bit order.
func AccessModesOf(field uint16) []AccessMode {
	var modes []AccessMode
	for _, mode := range accessOrder {
		if field&(1<<(15-accessBits[mode])) != 0 {
			modes = append(modes, mode)
		}
	}
	return modes
}
