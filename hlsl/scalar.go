// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// Bool is the HLSL bool: 4 bytes holding exactly 0 or 1.
type Bool uint32

// Boolean values.
const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Value reports whether b is true.
func (b Bool) Value() bool {
	return b != False
}

// bit returns b as exactly 0 or 1. Values other than False count as true.
func (b Bool) bit() Bool {
	return BoolOf(b.Value())
}

// String returns "true" or "false".
func (b Bool) String() string {
	if b.Value() {
		return "true"
	}
	return "false"
}
