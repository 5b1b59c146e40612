// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"fmt"
	"strconv"
)

// TypeRegistry deduplicates structurally identical types and keeps them in
// registration order. Translators use it to declare each type once.
type TypeRegistry struct {
	types   []Type
	typeMap map[string]TypeHandle
	names   map[string]TypeHandle
	keyBuf  []byte // reusable buffer for building type keys
}

// NewTypeRegistry creates a new type registry for deduplication.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make([]Type, 0, 16),
		typeMap: make(map[string]TypeHandle, 16),
		names:   make(map[string]TypeHandle, 16),
		keyBuf:  make([]byte, 0, 32),
	}
}

// GetOrCreate returns an existing handle for the type if it exists,
// or creates a new one if it's unique. The first name registered for a
// structure wins; later names become aliases resolvable by ByName.
func (r *TypeRegistry) GetOrCreate(name string, inner TypeInner) TypeHandle {
	key := r.normalizeType(inner)

	if handle, exists := r.typeMap[key]; exists {
		if name != "" {
			if _, named := r.names[name]; !named {
				r.names[name] = handle
			}
		}
		return handle
	}

	handle := TypeHandle(len(r.types))
	r.types = append(r.types, Type{
		Name:  name,
		Inner: inner,
	})
	r.typeMap[key] = handle
	if name != "" {
		r.names[name] = handle
	}

	return handle
}

// GetTypes returns all registered types.
func (r *TypeRegistry) GetTypes() []Type {
	return r.types
}

// Handle returns the handle of a structurally identical registered type.
func (r *TypeRegistry) Handle(inner TypeInner) (TypeHandle, bool) {
	handle, ok := r.typeMap[r.normalizeType(inner)]
	return handle, ok
}

// ByName returns the type registered under name.
func (r *TypeRegistry) ByName(name string) (Type, bool) {
	handle, ok := r.names[name]
	if !ok {
		return Type{}, false
	}
	return r.types[handle], true
}

// normalizeType creates a unique key for a type based on its structure.
// Two structurally identical types will produce the same key.
func (r *TypeRegistry) normalizeType(inner TypeInner) string {
	b := r.keyBuf[:0]

	switch t := inner.(type) {
	case ScalarType:
		b = append(b, "scalar:"...)
		b = strconv.AppendInt(b, int64(t.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Width), 10)
		r.keyBuf = b
		return string(b)

	case VectorType:
		// Recursive call clobbers keyBuf, so build with string concat.
		scalarKey := r.normalizeType(t.Scalar)
		return "vec:" + strconv.FormatUint(uint64(t.Size), 10) + ":" + scalarKey

	case MatrixType:
		scalarKey := r.normalizeType(t.Scalar)
		return "mat:" + strconv.FormatUint(uint64(t.Rows), 10) + "x" + strconv.FormatUint(uint64(t.Columns), 10) + ":" + scalarKey

	default:
		return fmt.Sprintf("unknown:%T", inner)
	}
}

// Lookup finds a type by its handle.
func (r *TypeRegistry) Lookup(handle TypeHandle) (Type, bool) {
	if int(handle) >= len(r.types) {
		return Type{}, false
	}
	return r.types[handle], true
}

// Count returns the number of unique types registered.
func (r *TypeRegistry) Count() int {
	return len(r.types)
}
