// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"reflect"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/ir"
)

// Field is a named struct member.
type Field struct {
	Name string
	Type ir.TypeInner
}

// Member is the placed form of a Field.
type Member struct {
	Name   string
	Type   ir.TypeInner
	Offset int
	TypeLayout
}

// StructLayout describes the memory layout of a struct.
type StructLayout struct {
	Members []Member
	Size    int
	Align   int
}

// Struct places fields in declaration order under rule. Each member starts
// at the next offset aligned to its type; the struct size rounds up to the
// largest member alignment.
func Struct(rule Rule, fields ...Field) (StructLayout, error) {
	s := StructLayout{
		Members: make([]Member, 0, len(fields)),
		Align:   1,
	}
	if rule == Uniform {
		s.Align = uniformAlign
	}

	offset := 0
	for _, f := range fields {
		l, err := Of(f.Type, rule)
		if err != nil {
			return StructLayout{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
		offset = roundUp(offset, l.Align)
		s.Members = append(s.Members, Member{
			Name:       f.Name,
			Type:       f.Type,
			Offset:     offset,
			TypeLayout: l,
		})
		offset += l.Size
		s.Align = max(s.Align, l.Align)
	}
	s.Size = roundUp(offset, s.Align)
	return s, nil
}

// Fields returns the fields of a Go struct value whose exported fields
// are value types of package hlsl or their component types.
func Fields(v any) ([]Field, error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("layout: %T is not a struct", v)
	}
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		typ, ok := hlsl.TypeOf(reflect.Zero(f.Type).Interface())
		if !ok {
			return nil, fmt.Errorf("layout: field %s.%s has non-shader type %s", t.Name(), f.Name, f.Type)
		}
		fields = append(fields, Field{Name: f.Name, Type: typ.Inner})
	}
	return fields, nil
}

// StructOf is Struct applied to the fields of a Go struct value.
func StructOf(v any, rule Rule) (StructLayout, error) {
	fields, err := Fields(v)
	if err != nil {
		return StructLayout{}, err
	}
	return Struct(rule, fields...)
}
