// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadermath/ir"
)

// hlslDialect spells the model natively: every type of the model has an
// HLSL name and matrices are declared row_major.
type hlslDialect struct{}

func (hlslDialect) typeName(t ir.TypeInner) (string, error) {
	return ir.TypeString(t), nil
}

func (d hlslDialect) splat(t ir.TypeInner, value string) string {
	return d.cast(t, value)
}

// cell uses the zero-based _mRC notation, which names row R and column C
// regardless of the matrix packing.
func (hlslDialect) cell(base string, c cell) string {
	return fmt.Sprintf("%s._m%d%d", group(base), c.row-1, c.col-1)
}

func (hlslDialect) storeSwizzle(in *ir.Intrinsic, base, value string) string {
	return group(base) + "." + ir.SwizzleString(in.Pattern, in.Color) + " = " + value
}

func (hlslDialect) cellSwizzle(_ ir.TypeInner, base string, cells []cell) string {
	return group(base) + "." + cellPattern(cells)
}

func (hlslDialect) storeCells(base string, cells []cell, value string) string {
	return group(base) + "." + cellPattern(cells) + " = " + value
}

func cellPattern(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&b, "_m%d%d", c.row-1, c.col-1)
	}
	return b.String()
}

func (hlslDialect) unary(in *ir.Intrinsic, operand string) string {
	return in.Unary.Symbol() + group(operand)
}

// binary spells componentwise operators. HLSL 2021 no longer applies &&
// and || to vectors; the and() and or() intrinsics replace them.
func (hlslDialect) binary(in *ir.Intrinsic, left, right string) string {
	switch in.Binary {
	case ir.BinaryLogicalAnd:
		return call("and", left, right)
	case ir.BinaryLogicalOr:
		return call("or", left, right)
	default:
		return infix(left, in.Binary.Symbol(), right)
	}
}

func (hlslDialect) cast(t ir.TypeInner, operand string) string {
	return "(" + ir.TypeString(t) + ")" + group(operand)
}

func (hlslDialect) multiply(left, right string) string {
	return call("mul", left, right)
}
