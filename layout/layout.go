// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/shadermath/ir"
)

// Rule selects a set of buffer layout rules.
type Rule uint8

const (
	// Packed is the host layout: no padding, alignment equal to the
	// component width. It matches unsafe.Sizeof of the Go types and HLSL
	// structured buffers.
	Packed Rule = iota

	// Storage is the std430 layout of storage buffers.
	Storage

	// Uniform is the std140 layout of uniform buffers: matrix columns and
	// structs additionally align to 16 bytes.
	Uniform
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case Packed:
		return "packed"
	case Storage:
		return "std430"
	case Uniform:
		return "std140"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// TypeLayout describes the memory layout of a type.
type TypeLayout struct {
	// Size is the size in bytes, including internal padding.
	Size int

	// Align is the required alignment in bytes.
	Align int

	// Stride is the distance between matrix columns (rows on the host) in
	// bytes, or zero for scalars and vectors.
	Stride int
}

// uniformAlign is the std140 minimum alignment of matrix columns and
// structs.
const uniformAlign = 16

// Of returns the layout of t under rule.
func Of(t ir.TypeInner, rule Rule) (TypeLayout, error) {
	if err := ir.ValidateType(t); err != nil {
		return TypeLayout{}, &Error{Rule: rule, Type: t, Message: err.Error()}
	}
	scalar, _ := ir.ScalarOf(t)
	width := int(scalar.Width)

	if rule == Packed {
		l := TypeLayout{Size: ir.Components(t) * width, Align: width}
		if m, ok := t.(ir.MatrixType); ok {
			l.Stride = int(m.Columns) * width
		}
		return l, nil
	}
	if rule != Storage && rule != Uniform {
		return TypeLayout{}, &Error{Rule: rule, Type: t, Message: "unknown rule"}
	}

	if scalar.Kind == ir.ScalarBool {
		return TypeLayout{}, &Error{Rule: rule, Type: t, Message: "bool is not host-shareable"}
	}

	switch inner := t.(type) {
	case ir.ScalarType:
		return TypeLayout{Size: width, Align: width}, nil
	case ir.VectorType:
		return vectorLayout(int(inner.Size), width), nil
	case ir.MatrixType:
		if inner.Rows < ir.Vec2 || inner.Columns < ir.Vec2 {
			return TypeLayout{}, &Error{Rule: rule, Type: t, Message: "matrices need two rows and two columns"}
		}
		column := vectorLayout(int(inner.Columns), width)
		stride := roundUp(column.Size, column.Align)
		align := column.Align
		if rule == Uniform {
			stride = roundUp(stride, uniformAlign)
			align = max(align, uniformAlign)
		}
		return TypeLayout{Size: int(inner.Rows) * stride, Align: align, Stride: stride}, nil
	default:
		return TypeLayout{}, &Error{Rule: rule, Type: t, Message: fmt.Sprintf("unsupported type %T", t)}
	}
}

// vectorLayout computes the layout of an n-component vector. Vectors of
// three components align like vectors of four.
func vectorLayout(n, width int) TypeLayout {
	align := width * 4
	if n == 2 {
		align = width * 2
	}
	return TypeLayout{Size: n * width, Align: align}
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
