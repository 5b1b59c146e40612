// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"reflect"
	"slices"
	"sync"

	"github.com/gogpu/shadermath/internal/gen"
	"github.com/gogpu/shadermath/ir"
)

// The catalog is derived from the same model that generated this package.
var catalog struct {
	once    sync.Once
	all     []ir.Intrinsic
	members map[string]map[string]int
	types   *ir.TypeRegistry
}

func loadCatalog() {
	catalog.once.Do(func() {
		model := gen.NewModel()
		catalog.all = model.Intrinsics()
		catalog.members = make(map[string]map[string]int)
		catalog.types = ir.NewTypeRegistry()
		for _, k := range model.Kinds {
			catalog.types.GetOrCreate(k.GoType, k.Scalar)
		}
		for i, in := range catalog.all {
			byMember, ok := catalog.members[in.Owner.Name]
			if !ok {
				byMember = make(map[string]int)
				catalog.members[in.Owner.Name] = byMember
				catalog.types.GetOrCreate(in.Owner.Name, in.Owner.Inner)
			}
			byMember[in.Member] = i
		}
	})
}

// Intrinsics returns the descriptors of every member of every type in this
// package: fields, constructors, swizzles, operators, conversions and
// products.
func Intrinsics() []ir.Intrinsic {
	loadCatalog()
	return slices.Clone(catalog.all)
}

// LookupIntrinsic returns the descriptor of a member, e.g. ("Float4",
// "ZW") or ("Float4", "NewFloat4") for a constructor.
func LookupIntrinsic(typeName, member string) (ir.Intrinsic, bool) {
	loadCatalog()
	i, ok := catalog.members[typeName][member]
	if !ok {
		return ir.Intrinsic{}, false
	}
	return catalog.all[i], true
}

// LookupType returns the model type of a type in this package by its Go
// name, or of a component type (float32, Bool, ...).
func LookupType(name string) (ir.Type, bool) {
	loadCatalog()
	return catalog.types.ByName(name)
}

// TypeOf returns the model type of a value of this package.
func TypeOf(v any) (ir.Type, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return ir.Type{}, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != reflect.TypeOf(Bool(0)).PkgPath() && t.PkgPath() != "" {
		return ir.Type{}, false
	}
	return LookupType(t.Name())
}
