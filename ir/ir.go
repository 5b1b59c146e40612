// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "fmt"

// Type is a named type of the model.
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner represents the inner type kind.
type TypeInner interface {
	typeInner()
}

// TypeHandle references a type registered in a TypeRegistry.
type TypeHandle uint32

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// String returns the kind name.
func (k ScalarKind) String() string {
	switch k {
	case ScalarSint:
		return "sint"
	case ScalarUint:
		return "uint"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	default:
		return fmt.Sprintf("ScalarKind(%d)", uint8(k))
	}
}

// The five scalar types of the model. Bool occupies 4 bytes, as it does in
// HLSL buffers.
var (
	Float  = ScalarType{Kind: ScalarFloat, Width: 4}
	Double = ScalarType{Kind: ScalarFloat, Width: 8}
	Int    = ScalarType{Kind: ScalarSint, Width: 4}
	Uint   = ScalarType{Kind: ScalarUint, Width: 4}
	Bool   = ScalarType{Kind: ScalarBool, Width: 4}
)

// Scalars lists the scalar types in declaration order.
func Scalars() []ScalarType {
	return []ScalarType{Float, Double, Int, Uint, Bool}
}

// Rank returns the promotion rank of the scalar type.
// Bool ranks lowest, signed and unsigned integers share a rank, and wider
// floats rank above narrower ones.
func (s ScalarType) Rank() int {
	switch s.Kind {
	case ScalarBool:
		return 0
	case ScalarSint, ScalarUint:
		return 1
	case ScalarFloat:
		if s.Width >= 8 {
			return 3
		}
		return 2
	default:
		return -1
	}
}

// IsNumeric reports whether arithmetic is defined on the scalar type.
func (s ScalarType) IsNumeric() bool {
	return s.Kind != ScalarBool
}

// IsInteger reports whether the scalar type is a signed or unsigned integer.
func (s ScalarType) IsInteger() bool {
	return s.Kind == ScalarSint || s.Kind == ScalarUint
}

// String returns the HLSL spelling of the scalar type.
func (s ScalarType) String() string {
	switch s.Kind {
	case ScalarFloat:
		if s.Width == 8 {
			return "double"
		}
		return "float"
	case ScalarSint:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarBool:
		return "bool"
	default:
		return s.Kind.String()
	}
}

// VectorType represents vector types.
type VectorType struct {
	Size   VectorSize
	Scalar ScalarType
}

func (VectorType) typeInner() {}

// String returns the HLSL spelling of the vector type.
func (v VectorType) String() string {
	return fmt.Sprintf("%s%d", v.Scalar, v.Size)
}

// VectorSize represents vector sizes.
type VectorSize uint8

const (
	Vec1 VectorSize = 1 // only valid as a matrix dimension
	Vec2 VectorSize = 2
	Vec3 VectorSize = 3
	Vec4 VectorSize = 4
)

// MatrixType represents matrix types.
// Rows row vectors of Columns components each, stored row-major.
type MatrixType struct {
	Rows    VectorSize
	Columns VectorSize
	Scalar  ScalarType
}

func (MatrixType) typeInner() {}

// String returns the HLSL spelling of the matrix type.
func (m MatrixType) String() string {
	return fmt.Sprintf("%s%dx%d", m.Scalar, m.Rows, m.Columns)
}

// RowType returns the type of a single row: a vector of Columns
// components, or the scalar itself for single-column matrices.
func (m MatrixType) RowType() TypeInner {
	return VectorOrScalar(m.Columns, m.Scalar)
}

// VectorOrScalar returns the vector type of the given size, collapsing
// size 1 to the scalar type.
func VectorOrScalar(size VectorSize, scalar ScalarType) TypeInner {
	if size == Vec1 {
		return scalar
	}
	return VectorType{Size: size, Scalar: scalar}
}

// ScalarOf returns the scalar type underlying t.
func ScalarOf(t TypeInner) (ScalarType, bool) {
	switch inner := t.(type) {
	case ScalarType:
		return inner, true
	case VectorType:
		return inner.Scalar, true
	case MatrixType:
		return inner.Scalar, true
	default:
		return ScalarType{}, false
	}
}

// WithScalar returns t with its scalar type replaced, keeping the shape.
func WithScalar(t TypeInner, scalar ScalarType) TypeInner {
	switch inner := t.(type) {
	case ScalarType:
		return scalar
	case VectorType:
		inner.Scalar = scalar
		return inner
	case MatrixType:
		inner.Scalar = scalar
		return inner
	default:
		return t
	}
}

// Components returns the number of scalar components in t.
func Components(t TypeInner) int {
	switch inner := t.(type) {
	case ScalarType:
		return 1
	case VectorType:
		return int(inner.Size)
	case MatrixType:
		return int(inner.Rows) * int(inner.Columns)
	default:
		return 0
	}
}

// SameShape reports whether a and b have the same shape, ignoring the
// scalar kind.
func SameShape(a, b TypeInner) bool {
	switch x := a.(type) {
	case ScalarType:
		_, ok := b.(ScalarType)
		return ok
	case VectorType:
		y, ok := b.(VectorType)
		return ok && x.Size == y.Size
	case MatrixType:
		y, ok := b.(MatrixType)
		return ok && x.Rows == y.Rows && x.Columns == y.Columns
	default:
		return false
	}
}

// TypeString formats any type inner in HLSL spelling.
func TypeString(t TypeInner) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}
