// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "strings"

// SwizzleComponent represents a single component in a vector swizzle.
type SwizzleComponent uint8

const (
	SwizzleX SwizzleComponent = 0
	SwizzleY SwizzleComponent = 1
	SwizzleZ SwizzleComponent = 2
	SwizzleW SwizzleComponent = 3
)

const (
	positionAlphabet = "xyzw"
	colorAlphabet    = "rgba"
)

// Letter returns the component's name in the position (xyzw) or color
// (rgba) alphabet.
func (c SwizzleComponent) Letter(color bool) byte {
	if color {
		return colorAlphabet[c&3]
	}
	return positionAlphabet[c&3]
}

// ParseSwizzle parses a swizzle pattern such as "zw", "XXY" or "bgra".
// Position and color letters cannot be mixed.
func ParseSwizzle(pattern string) (components []SwizzleComponent, color bool, ok bool) {
	if len(pattern) == 0 || len(pattern) > 4 {
		return nil, false, false
	}
	lower := strings.ToLower(pattern)
	color = strings.IndexByte(colorAlphabet, lower[0]) >= 0
	alphabet := positionAlphabet
	if color {
		alphabet = colorAlphabet
	}
	components = make([]SwizzleComponent, len(lower))
	for i := 0; i < len(lower); i++ {
		idx := strings.IndexByte(alphabet, lower[i])
		if idx < 0 {
			return nil, false, false
		}
		components[i] = SwizzleComponent(idx)
	}
	return components, color, true
}

// SwizzleString formats a pattern in the requested alphabet.
func SwizzleString(pattern []SwizzleComponent, color bool) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, c := range pattern {
		b.WriteByte(c.Letter(color))
	}
	return b.String()
}

// IsDistinct reports whether no component repeats in the pattern.
// Only distinct patterns can be assigned through.
func IsDistinct(pattern []SwizzleComponent) bool {
	var seen uint8
	for _, c := range pattern {
		bit := uint8(1) << (c & 3)
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// UnaryOperator represents unary operations.
type UnaryOperator uint8

const (
	UnaryNegate     UnaryOperator = iota // Arithmetic negation
	UnaryLogicalNot                      // Logical not (!)
	UnaryBitwiseNot                      // Bitwise not (~)
)

// BinaryOperator represents binary operations.
type BinaryOperator uint8

const (
	// Arithmetic operations
	BinaryAdd      BinaryOperator = iota // Addition
	BinarySubtract                       // Subtraction
	BinaryMultiply                       // Multiplication (componentwise)
	BinaryDivide                         // Division
	BinaryModulo                         // Modulo (remainder)

	// Comparison operations
	BinaryEqual        // Equal (==)
	BinaryNotEqual     // Not equal (!=)
	BinaryLess         // Less than (<)
	BinaryLessEqual    // Less than or equal (<=)
	BinaryGreater      // Greater than (>)
	BinaryGreaterEqual // Greater than or equal (>=)

	// Bitwise operations
	BinaryAnd         // Bitwise AND
	BinaryExclusiveOr // Bitwise XOR
	BinaryInclusiveOr // Bitwise OR

	// Logical operations
	BinaryLogicalAnd // Logical AND (&&)
	BinaryLogicalOr  // Logical OR (||)

	// Shift operations
	BinaryShiftLeft  // Left shift (<<)
	BinaryShiftRight // Right shift (>>) - arithmetic for signed, logical for unsigned
)

// IsComparison reports whether the operator yields booleans.
func (op BinaryOperator) IsComparison() bool {
	return op >= BinaryEqual && op <= BinaryGreaterEqual
}

// IsBitwise reports whether the operator is only defined on integers.
func (op BinaryOperator) IsBitwise() bool {
	switch op {
	case BinaryAnd, BinaryExclusiveOr, BinaryInclusiveOr, BinaryShiftLeft, BinaryShiftRight:
		return true
	}
	return false
}

// IsLogical reports whether the operator is only defined on booleans.
func (op BinaryOperator) IsLogical() bool {
	return op == BinaryLogicalAnd || op == BinaryLogicalOr
}

// Symbol returns the C-family spelling of the operator.
func (op BinaryOperator) Symbol() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySubtract:
		return "-"
	case BinaryMultiply:
		return "*"
	case BinaryDivide:
		return "/"
	case BinaryModulo:
		return "%"
	case BinaryEqual:
		return "=="
	case BinaryNotEqual:
		return "!="
	case BinaryLess:
		return "<"
	case BinaryLessEqual:
		return "<="
	case BinaryGreater:
		return ">"
	case BinaryGreaterEqual:
		return ">="
	case BinaryAnd:
		return "&"
	case BinaryExclusiveOr:
		return "^"
	case BinaryInclusiveOr:
		return "|"
	case BinaryLogicalAnd:
		return "&&"
	case BinaryLogicalOr:
		return "||"
	case BinaryShiftLeft:
		return "<<"
	case BinaryShiftRight:
		return ">>"
	default:
		return "?"
	}
}

// Symbol returns the C-family spelling of the operator.
func (op UnaryOperator) Symbol() string {
	switch op {
	case UnaryNegate:
		return "-"
	case UnaryLogicalNot:
		return "!"
	case UnaryBitwiseNot:
		return "~"
	default:
		return "?"
	}
}
