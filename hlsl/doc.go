// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl provides Go value types mirroring the HLSL vector and matrix
// model, for writing compute kernels in Go that are translated to shading
// language source.
//
// # Types
//
// Every scalar kind has vectors of 2 to 4 components and matrices of 1 to 4
// rows and columns:
//
//	Float2 .. Float4      Float1x1 .. Float4x4      float32
//	Double2 .. Double4    Double1x1 .. Double4x4    float64
//	Int2 .. Int4          Int1x1 .. Int4x4          int32
//	Uint2 .. Uint4        Uint1x1 .. Uint4x4        uint32
//	Bool2 .. Bool4        Bool1x1 .. Bool4x4        Bool
//
// Values are plain structs with no padding. Vectors expose fields X, Y, Z
// and W; matrices are row-major with fields M11 to M44 (row, column). The
// in-memory layout is identical to the HLSL packed layout, so a slice of
// Float4 can be copied byte for byte into a structured buffer.
//
// # Swizzles
//
// Every swizzle of 2 to 4 components is a method: v.ZW(), v.XXYY(). A
// swizzle without repeated components can also be assigned through with the
// matching setter, v.SetZW(NewFloat2(9, 10)). Repeated patterns have no
// setter, so assigning through them does not compile. Float and Double
// vectors of 3 and 4 components additionally accept the color alphabet:
// v.R(), v.BGR(), v.SetRGB(c).
//
// # Host and kernel members
//
// Construction, fields, swizzles, widening conversions, the double to float
// narrowing (rounded to nearest), reinterpretation to host-native types
// (arrays, golang.org/x/image/math/f32 and f64) and the Mul<Type> product
// family are computed on the host as well.
//
// Operators (Add, Less, MulScalar, ...), dynamic indexing, matrix rows,
// matrix cell swizzles and the other explicit conversions only have a
// meaning in a translated kernel. They carry a //hlsl:kernel directive, and
// calling one on the host always panics with a *KernelOnlyError. The
// kernelcheck analyzer reports such calls before they run.
//
// Bool is stored as 0 or 1. A Bool holding any other bit pattern (from
// Bool4FromArray, say) counts as true, and conversions to numeric types
// yield exactly 1 for it.
//
// # Intrinsics
//
// Intrinsics and LookupIntrinsic describe every member in shading-language
// terms for translators.
package hlsl

//go:generate go run ../cmd/hlslgen -output .
