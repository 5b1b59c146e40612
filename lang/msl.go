// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"fmt"

	"github.com/gogpu/shadermath/ir"
)

// Namespace is the prefix of Metal standard library names.
const Namespace = "metal::"

// mslDialect spells vector and matrix types from the metal namespace.
// Metal has no double type and only float matrices.
type mslDialect struct{}

func (mslDialect) scalarName(s ir.ScalarType) (string, error) {
	switch s.Kind {
	case ir.ScalarBool:
		return "bool", nil
	case ir.ScalarSint:
		return "int", nil
	case ir.ScalarUint:
		return "uint", nil
	default:
		if s.Width == 8 {
			return "", newError(MSL, ErrUnsupportedType, "%s: Metal has no double precision", s)
		}
		return "float", nil
	}
}

func (d mslDialect) typeName(t ir.TypeInner) (string, error) {
	switch inner := t.(type) {
	case ir.ScalarType:
		return d.scalarName(inner)
	case ir.VectorType:
		scalar, err := d.scalarName(inner.Scalar)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%s%d", Namespace, scalar, inner.Size), nil
	case ir.MatrixType:
		if inner.Scalar != ir.Float {
			return "", newError(MSL, ErrUnsupportedType, "%s: matrices must be float", inner)
		}
		if inner.Rows < ir.Vec2 || inner.Columns < ir.Vec2 {
			return "", newError(MSL, ErrUnsupportedType, "%s: matrices need two rows and two columns", inner)
		}
		return fmt.Sprintf("%sfloat%dx%d", Namespace, inner.Rows, inner.Columns), nil
	default:
		return "", newError(MSL, ErrUnsupportedType, "unsupported type %T", t)
	}
}

func (d mslDialect) name(t ir.TypeInner) string {
	s, _ := d.typeName(t)
	return s
}

func (d mslDialect) splat(t ir.TypeInner, value string) string {
	if m, ok := t.(ir.MatrixType); ok {
		return columnSplat(d.name(m), d.name(m.RowType()), m, value)
	}
	return call(d.name(t), value)
}

func (mslDialect) cell(base string, c cell) string {
	return columnCell(base, c)
}

func (mslDialect) storeSwizzle(in *ir.Intrinsic, base, value string) string {
	return group(base) + "." + ir.SwizzleString(in.Pattern, in.Color) + " = " + value
}

func (d mslDialect) cellSwizzle(t ir.TypeInner, base string, cells []cell) string {
	return columnCellSwizzle(d.name(t), base, cells)
}

func (mslDialect) storeCells(base string, cells []cell, value string) string {
	return columnStoreCells(base, cells, value)
}

func (mslDialect) unary(in *ir.Intrinsic, operand string) string {
	return in.Unary.Symbol() + group(operand)
}

func (d mslDialect) binary(in *ir.Intrinsic, left, right string) string {
	scalar, _ := ir.ScalarOf(in.Owner.Inner)
	floatMod := in.Binary == ir.BinaryModulo && scalar.Kind == ir.ScalarFloat
	spell := func(l, r string) string {
		if floatMod {
			return call(Namespace+"fmod", l, r)
		}
		return infix(l, in.Binary.Symbol(), r)
	}
	if isComponentwiseProduct(in) {
		m := in.Owner.Inner.(ir.MatrixType)
		return columnwise(d.name(m), m, left, right, spell)
	}
	return spell(left, right)
}

func (d mslDialect) cast(t ir.TypeInner, operand string) string {
	if s, ok := t.(ir.ScalarType); ok {
		return "static_cast<" + d.name(s) + ">(" + operand + ")"
	}
	return call(d.name(t), operand)
}

func (mslDialect) multiply(left, right string) string {
	return infix(right, "*", left)
}
