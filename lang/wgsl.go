// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"fmt"

	"github.com/gogpu/shadermath/ir"
)

// wgslDialect spells types with template parameters. WGSL has no
// swizzle assignment, no matrix negation or division, and matrices only
// of f32 with at least two columns and rows.
type wgslDialect struct{}

func (wgslDialect) scalarName(s ir.ScalarType) string {
	switch s.Kind {
	case ir.ScalarBool:
		return "bool"
	case ir.ScalarSint:
		return "i32"
	case ir.ScalarUint:
		return "u32"
	default:
		if s.Width == 8 {
			return "f64"
		}
		return "f32"
	}
}

func (d wgslDialect) typeName(t ir.TypeInner) (string, error) {
	switch inner := t.(type) {
	case ir.ScalarType:
		return d.scalarName(inner), nil
	case ir.VectorType:
		return fmt.Sprintf("vec%d<%s>", inner.Size, d.scalarName(inner.Scalar)), nil
	case ir.MatrixType:
		if inner.Scalar != ir.Float {
			return "", newError(WGSL, ErrUnsupportedType, "%s: matrices must be f32", inner)
		}
		if inner.Rows < ir.Vec2 || inner.Columns < ir.Vec2 {
			return "", newError(WGSL, ErrUnsupportedType, "%s: matrices need two rows and two columns", inner)
		}
		return fmt.Sprintf("mat%dx%d<f32>", inner.Rows, inner.Columns), nil
	default:
		return "", newError(WGSL, ErrUnsupportedType, "unsupported type %T", t)
	}
}

func (d wgslDialect) name(t ir.TypeInner) string {
	s, _ := d.typeName(t)
	return s
}

func (d wgslDialect) splat(t ir.TypeInner, value string) string {
	if m, ok := t.(ir.MatrixType); ok {
		return columnSplat(d.name(m), d.name(m.RowType()), m, value)
	}
	return call(d.name(t), value)
}

func (wgslDialect) cell(base string, c cell) string {
	return columnCell(base, c)
}

// storeSwizzle rebuilds the whole vector, keeping unselected components.
func (d wgslDialect) storeSwizzle(in *ir.Intrinsic, base, value string) string {
	target := group(base) + "." + ir.SwizzleString(in.Pattern, in.Color)
	if len(in.Pattern) == 1 {
		return target + " = " + value
	}
	v := in.Owner.Inner.(ir.VectorType)
	components := make([]string, v.Size)
	for i := range components {
		components[i] = group(base) + "." + string(ir.SwizzleComponent(i).Letter(false))
	}
	for j, c := range in.Pattern {
		components[c] = group(value) + "." + string(ir.SwizzleComponent(j).Letter(false))
	}
	return base + " = " + call(d.name(v), components...)
}

func (d wgslDialect) cellSwizzle(t ir.TypeInner, base string, cells []cell) string {
	return columnCellSwizzle(d.name(t), base, cells)
}

func (wgslDialect) storeCells(base string, cells []cell, value string) string {
	return columnStoreCells(base, cells, value)
}

func (wgslDialect) unary(in *ir.Intrinsic, operand string) string {
	if _, ok := in.Owner.Inner.(ir.MatrixType); ok && in.Unary == ir.UnaryNegate {
		return "(" + group(operand) + " * -1.0)"
	}
	return in.Unary.Symbol() + group(operand)
}

// binary spells componentwise operators. Logical operators on bool
// vectors use the non-short-circuit forms, and shift amounts must be
// unsigned.
func (d wgslDialect) binary(in *ir.Intrinsic, left, right string) string {
	if isComponentwiseProduct(in) {
		m := in.Owner.Inner.(ir.MatrixType)
		op := in.Binary.Symbol()
		return columnwise(d.name(m), m, left, right, func(l, r string) string { return infix(l, op, r) })
	}
	switch in.Binary {
	case ir.BinaryLogicalAnd:
		return infix(left, "&", right)
	case ir.BinaryLogicalOr:
		return infix(left, "|", right)
	case ir.BinaryShiftLeft, ir.BinaryShiftRight:
		if v, ok := in.Args[0].(ir.VectorType); ok && v.Scalar == ir.Int {
			right = call(d.name(ir.WithScalar(v, ir.Uint)), right)
		}
	}
	return infix(left, in.Binary.Symbol(), right)
}

func (d wgslDialect) cast(t ir.TypeInner, operand string) string {
	return call(d.name(t), operand)
}

func (wgslDialect) multiply(left, right string) string {
	return infix(right, "*", left)
}
