// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ir describes the shading-language type model that the host value
// types in package hlsl mirror.
//
// The model is deliberately small:
//   - Scalars: float (4 or 8 bytes), int, uint and a 4-byte bool
//   - Vectors: 2, 3 or 4 components of one scalar kind
//   - Matrices: 1..4 rows by 1..4 columns, stored row-major
//
// On top of the types, the package defines the operations a kernel body can
// perform on them (swizzles, unary and binary operators, numeric casts,
// reinterpretation casts, matrix products) as Intrinsic descriptors. A
// translator walks a kernel body, looks every member it meets up in the
// intrinsic catalog exposed by package hlsl, and emits the equivalent
// shading-language construct.
//
// # Conversions
//
// Numeric conversions between kinds form a lattice: every ordered pair of
// scalar kinds is either an implicit edge (no precision or sign can be lost)
// or an explicit one. Conversion and ConversionBetween report the relation;
// shapes must match exactly for vectors and matrices.
//
// # Shapes
//
// ResolveBinary and ResolveMultiply compute the result type of an operator
// application and reject shape mismatches. Matrices are row-major:
//
//	Vector(k)   × Matrix(k,m) → Vector(m)
//	Matrix(R,C) × Vector(C)   → Vector(R)
//	Matrix(R,k) × Matrix(k,m) → Matrix(R,m)
package ir
