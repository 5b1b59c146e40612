// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"testing"
)

func TestTypeRegistry_ScalarDeduplication(t *testing.T) {
	registry := NewTypeRegistry()

	f1 := registry.GetOrCreate("float32", Float)
	f2 := registry.GetOrCreate("float32", ScalarType{Kind: ScalarFloat, Width: 4})

	if f1 != f2 {
		t.Errorf("Expected same handle for identical scalar types, got %d and %d", f1, f2)
	}

	if registry.Count() != 1 {
		t.Errorf("Expected 1 type, got %d", registry.Count())
	}
}

func TestTypeRegistry_DifferentScalars(t *testing.T) {
	registry := NewTypeRegistry()

	handles := make([]TypeHandle, 0, 5)
	for _, s := range Scalars() {
		handles = append(handles, registry.GetOrCreate(s.String(), s))
	}

	for i := 0; i < len(handles); i++ {
		for j := i + 1; j < len(handles); j++ {
			if handles[i] == handles[j] {
				t.Errorf("Expected different handles for different types, got %d == %d", handles[i], handles[j])
			}
		}
	}

	if registry.Count() != 5 {
		t.Errorf("Expected 5 types, got %d", registry.Count())
	}
}

func TestTypeRegistry_VectorsAndMatrices(t *testing.T) {
	registry := NewTypeRegistry()

	v4 := registry.GetOrCreate("Float4", VectorType{Size: Vec4, Scalar: Float})
	v4again := registry.GetOrCreate("", VectorType{Size: Vec4, Scalar: Float})
	d4 := registry.GetOrCreate("Double4", VectorType{Size: Vec4, Scalar: Double})
	m23 := registry.GetOrCreate("Float2x3", MatrixType{Rows: Vec2, Columns: Vec3, Scalar: Float})
	m32 := registry.GetOrCreate("Float3x2", MatrixType{Rows: Vec3, Columns: Vec2, Scalar: Float})

	if v4 != v4again {
		t.Errorf("Expected same handle for identical vector types, got %d and %d", v4, v4again)
	}
	if v4 == d4 {
		t.Error("float4 and double4 share a handle")
	}
	if m23 == m32 {
		t.Error("float2x3 and float3x2 share a handle")
	}
	if registry.Count() != 4 {
		t.Errorf("Expected 4 types, got %d", registry.Count())
	}
}

func TestTypeRegistry_ByName(t *testing.T) {
	registry := NewTypeRegistry()

	h := registry.GetOrCreate("Float4", VectorType{Size: Vec4, Scalar: Float})
	alias := registry.GetOrCreate("float4", VectorType{Size: Vec4, Scalar: Float})
	if h != alias {
		t.Fatalf("alias got handle %d, want %d", alias, h)
	}

	for _, name := range []string{"Float4", "float4"} {
		typ, ok := registry.ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
			continue
		}
		if typ.Name != "Float4" {
			t.Errorf("ByName(%q).Name = %q, want first registered name", name, typ.Name)
		}
	}

	if _, ok := registry.ByName("Float5"); ok {
		t.Error("ByName(Float5) found")
	}

	if got, ok := registry.Handle(VectorType{Size: Vec4, Scalar: Float}); !ok || got != h {
		t.Errorf("Handle = %d, %v", got, ok)
	}
}

func TestTypeRegistry_Lookup(t *testing.T) {
	registry := NewTypeRegistry()

	handle := registry.GetOrCreate("Int3", VectorType{Size: Vec3, Scalar: Int})

	typ, ok := registry.Lookup(handle)
	if !ok {
		t.Fatal("Expected to find type")
	}
	if typ.Name != "Int3" {
		t.Errorf("Expected name 'Int3', got '%s'", typ.Name)
	}

	if _, ok := registry.Lookup(TypeHandle(99)); ok {
		t.Error("Expected invalid handle to fail lookup")
	}

	if len(registry.GetTypes()) != 1 {
		t.Errorf("GetTypes() = %d types, want 1", len(registry.GetTypes()))
	}
}
