// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "reflect"

// allValues holds a zero value of every vector and matrix type.
var allValues = []any{
	Float2{}, Float3{}, Float4{},
	Double2{}, Double3{}, Double4{},
	Int2{}, Int3{}, Int4{},
	Uint2{}, Uint3{}, Uint4{},
	Bool2{}, Bool3{}, Bool4{},
	Float1x1{}, Float1x2{}, Float1x3{}, Float1x4{},
	Float2x1{}, Float2x2{}, Float2x3{}, Float2x4{},
	Float3x1{}, Float3x2{}, Float3x3{}, Float3x4{},
	Float4x1{}, Float4x2{}, Float4x3{}, Float4x4{},
	Double1x1{}, Double1x2{}, Double1x3{}, Double1x4{},
	Double2x1{}, Double2x2{}, Double2x3{}, Double2x4{},
	Double3x1{}, Double3x2{}, Double3x3{}, Double3x4{},
	Double4x1{}, Double4x2{}, Double4x3{}, Double4x4{},
	Int1x1{}, Int1x2{}, Int1x3{}, Int1x4{},
	Int2x1{}, Int2x2{}, Int2x3{}, Int2x4{},
	Int3x1{}, Int3x2{}, Int3x3{}, Int3x4{},
	Int4x1{}, Int4x2{}, Int4x3{}, Int4x4{},
	Uint1x1{}, Uint1x2{}, Uint1x3{}, Uint1x4{},
	Uint2x1{}, Uint2x2{}, Uint2x3{}, Uint2x4{},
	Uint3x1{}, Uint3x2{}, Uint3x3{}, Uint3x4{},
	Uint4x1{}, Uint4x2{}, Uint4x3{}, Uint4x4{},
	Bool1x1{}, Bool1x2{}, Bool1x3{}, Bool1x4{},
	Bool2x1{}, Bool2x2{}, Bool2x3{}, Bool2x4{},
	Bool3x1{}, Bool3x2{}, Bool3x3{}, Bool3x4{},
	Bool4x1{}, Bool4x2{}, Bool4x3{}, Bool4x4{},
}

func valueTypes() map[string]reflect.Type {
	types := make(map[string]reflect.Type, len(allValues))
	for _, v := range allValues {
		t := reflect.TypeOf(v)
		types[t.Name()] = t
	}
	return types
}
