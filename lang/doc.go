// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package lang spells the host value types and their members in the
// shading languages a kernel translator targets.
//
// HLSL is the native model: row-major matrices, mul() products, cell
// names such as _m12 and C-style casts. WGSL, GLSL and MSL store
// matrices column-major, so a host Float2x3 (two rows of three) is
// declared as a matrix of two columns of three components, its rows
// become columns and every product is spelled with the operands swapped:
//
//	m.MulFloat3(v)    HLSL mul(m, v)    WGSL (v * m)
//
// Types the target cannot represent (integer and bool matrices outside
// HLSL, double in MSL, matrices with a single row or column) are reported
// as *Error values of kind ErrUnsupportedType.
//
// Example:
//
//	in, _ := hlsl.LookupIntrinsic("Float4", "ZW")
//	src, err := lang.Expression(lang.WGSL, in, "color")
//	// src == "color.zw"
package lang
