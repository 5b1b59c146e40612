// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// Cast is the relation between two types under numeric conversion.
type Cast uint8

const (
	// CastNone means no conversion exists.
	CastNone Cast = iota

	// CastImplicit means the conversion cannot lose precision or sign and
	// is applied without being spelled out.
	CastImplicit

	// CastExplicit means the conversion may narrow, truncate or change
	// sign and must be requested.
	CastExplicit
)

// String returns the relation name.
func (c Cast) String() string {
	switch c {
	case CastNone:
		return "none"
	case CastImplicit:
		return "implicit"
	case CastExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Conversion returns the relation for converting scalars of kind from to
// kind to. Every ordered pair of the five model scalars is either implicit
// or explicit:
//
//	same type              implicit (identity)
//	bool   → any numeric   implicit (0 or 1)
//	int, uint, float → double  implicit (exact)
//	anything else          explicit
func Conversion(from, to ScalarType) Cast {
	if from == to {
		return CastImplicit
	}
	if from.Kind == ScalarBool && to.IsNumeric() {
		return CastImplicit
	}
	if to.Kind == ScalarFloat && to.Width == 8 {
		switch {
		case from.IsInteger() && from.Width <= 4:
			return CastImplicit
		case from.Kind == ScalarFloat && from.Width < 8:
			return CastImplicit
		}
	}
	return CastExplicit
}

// ConversionBetween returns the relation for converting a value of type
// from to type to. Shapes must match exactly; a reinterpretation to a
// different shape is never a numeric conversion.
func ConversionBetween(from, to TypeInner) Cast {
	if !SameShape(from, to) {
		return CastNone
	}
	fs, ok := ScalarOf(from)
	if !ok {
		return CastNone
	}
	ts, ok := ScalarOf(to)
	if !ok {
		return CastNone
	}
	return Conversion(fs, ts)
}

// HostConversion reports whether the conversion from → to is computed by a
// host-defined member. Implicit edges are, and so is float narrowing
// (double → float), which rounds to nearest on both sides. Every other
// explicit edge is kernel-only.
func HostConversion(from, to ScalarType) bool {
	switch Conversion(from, to) {
	case CastImplicit:
		return true
	case CastExplicit:
		return from.Kind == ScalarFloat && to.Kind == ScalarFloat
	default:
		return false
	}
}
