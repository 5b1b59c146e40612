// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "fmt"

// IntrinsicKind classifies what a host member means in a kernel body.
type IntrinsicKind uint8

const (
	// IntrinsicCompose builds a vector or matrix from scalars and smaller
	// vectors (constructors).
	IntrinsicCompose IntrinsicKind = iota

	// IntrinsicSplat broadcasts a scalar to every component.
	IntrinsicSplat

	// IntrinsicAccessIndex reads or writes one component with a constant
	// index (vector fields X..W, matrix cells M11..M44).
	IntrinsicAccessIndex

	// IntrinsicSwizzle reads a swizzle pattern.
	IntrinsicSwizzle

	// IntrinsicStoreSwizzle writes through a distinct swizzle pattern.
	IntrinsicStoreSwizzle

	// IntrinsicAccess reads a component or matrix row with a dynamic index.
	IntrinsicAccess

	// IntrinsicStoreAccess writes a component or matrix row with a dynamic
	// index.
	IntrinsicStoreAccess

	// IntrinsicCellSwizzle reads matrix cells selected by Cell arguments.
	IntrinsicCellSwizzle

	// IntrinsicStoreCellSwizzle writes matrix cells selected by Cell
	// arguments. The cells must be pairwise distinct.
	IntrinsicStoreCellSwizzle

	// IntrinsicUnary applies a unary operator.
	IntrinsicUnary

	// IntrinsicBinary applies a componentwise binary operator.
	IntrinsicBinary

	// IntrinsicAs is a numeric conversion between kinds of the same shape.
	IntrinsicAs

	// IntrinsicBitcast reinterprets the bytes of a value as a host-native
	// type of identical layout. It never recomputes values.
	IntrinsicBitcast

	// IntrinsicMultiply is the shape-checked vector/matrix product.
	IntrinsicMultiply
)

// String returns the kind name.
func (k IntrinsicKind) String() string {
	switch k {
	case IntrinsicCompose:
		return "Compose"
	case IntrinsicSplat:
		return "Splat"
	case IntrinsicAccessIndex:
		return "AccessIndex"
	case IntrinsicSwizzle:
		return "Swizzle"
	case IntrinsicStoreSwizzle:
		return "StoreSwizzle"
	case IntrinsicAccess:
		return "Access"
	case IntrinsicStoreAccess:
		return "StoreAccess"
	case IntrinsicCellSwizzle:
		return "CellSwizzle"
	case IntrinsicStoreCellSwizzle:
		return "StoreCellSwizzle"
	case IntrinsicUnary:
		return "Unary"
	case IntrinsicBinary:
		return "Binary"
	case IntrinsicAs:
		return "As"
	case IntrinsicBitcast:
		return "Bitcast"
	case IntrinsicMultiply:
		return "Multiply"
	default:
		return fmt.Sprintf("IntrinsicKind(%d)", uint8(k))
	}
}

// Intrinsic describes one member of a host value type (or one package
// level constructor) in shading-language terms.
type Intrinsic struct {
	// Owner is the host type the member belongs to. For constructors it is
	// the constructed type.
	Owner Type

	// Member is the Go method, field or function name.
	Member string

	// Function is set for package-level functions (constructors and
	// conversions from host-native types) rather than methods or fields.
	Function bool

	// Kind classifies the member.
	Kind IntrinsicKind

	// Unary and Binary hold the operator for IntrinsicUnary and
	// IntrinsicBinary members.
	Unary  UnaryOperator
	Binary BinaryOperator

	// Pattern is the component selection for swizzles and field accesses.
	// Color is set when the member uses the rgba alphabet.
	Pattern []SwizzleComponent
	Color   bool

	// Row and Column locate a matrix cell (1-based) for IntrinsicAccessIndex
	// members of matrices.
	Row, Column uint8

	// Reversed marks a binary member whose receiver is the right operand
	// (scalar × vector written as v.ScalarMul(s)).
	Reversed bool

	// Args lists the operand types after the receiver.
	Args []TypeInner

	// Result is the member's value type. Nil for stores.
	Result TypeInner

	// Host is the host-native Go type name for IntrinsicBitcast members,
	// such as "f32.Vec4" or "[4]float32".
	Host string

	// KernelOnly marks members that are only meaningful inside a
	// translated kernel body. Executing them on the host panics.
	KernelOnly bool
}

// String formats the intrinsic as Owner.Member.
func (in Intrinsic) String() string {
	return in.Owner.Name + "." + in.Member
}
