// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadermath

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/ir"
	"github.com/gogpu/shadermath/lang"
	"github.com/gogpu/shadermath/layout"
)

// Version is the module version.
const Version = "0.1.0"

var (
	// ErrUnknownType reports a value or name that is not an hlsl type or
	// one of its component types.
	ErrUnknownType = errors.New("unknown hlsl type")

	// ErrUnknownMember reports a member missing from the intrinsic catalog.
	ErrUnknownMember = errors.New("unknown member")
)

// Options configures Describe and Spell.
type Options struct {
	// Language selects the target spelling (default: HLSL).
	Language lang.Language

	// Rule selects the buffer layout rule (default: Packed).
	Rule layout.Rule

	// Validate checks the whole intrinsic catalog first.
	Validate bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Language: lang.HLSL,
		Rule:     layout.Packed,
		Validate: false,
	}
}

// Description answers the common questions about one host type.
type Description struct {
	// Type is the model type with its Go name.
	Type ir.Type

	// Spelling is the type's name in the target language.
	Spelling string

	// Layout is the type's layout under the selected rule.
	Layout layout.TypeLayout

	// Members lists the catalog entries owned by the type. Component
	// types (float32, Bool, ...) own none.
	Members []ir.Intrinsic
}

// KernelOnly returns the members that panic when executed on the host.
func (d Description) KernelOnly() []ir.Intrinsic {
	return lo.Filter(d.Members, func(in ir.Intrinsic, _ int) bool { return in.KernelOnly })
}

// Describe describes the type of value, which must be an hlsl value (or a
// pointer to one) or one of its component types.
func Describe(value any, opts Options) (Description, error) {
	typ, ok := hlsl.TypeOf(value)
	if !ok {
		return Description{}, fmt.Errorf("describe %T: %w", value, ErrUnknownType)
	}
	return describe(typ, opts)
}

// DescribeType describes the hlsl type named name, e.g. "Float3x4".
func DescribeType(name string, opts Options) (Description, error) {
	typ, ok := hlsl.LookupType(name)
	if !ok {
		return Description{}, fmt.Errorf("describe %q: %w", name, ErrUnknownType)
	}
	return describe(typ, opts)
}

func describe(typ ir.Type, opts Options) (Description, error) {
	if opts.Validate {
		if _, err := Validate(); err != nil {
			return Description{}, err
		}
	}

	spelling, err := lang.TypeName(opts.Language, typ.Inner)
	if err != nil {
		return Description{}, fmt.Errorf("describe %s: %w", typ.Name, err)
	}
	l, err := layout.Of(typ.Inner, opts.Rule)
	if err != nil {
		return Description{}, fmt.Errorf("describe %s: %w", typ.Name, err)
	}
	members := lo.Filter(hlsl.Intrinsics(), func(in ir.Intrinsic, _ int) bool {
		return in.Owner.Name == typ.Name
	})

	Logger().Debug("shadermath: described type",
		"type", typ.Name, "language", opts.Language, "rule", opts.Rule,
		"size", l.Size, "members", len(members))

	return Description{
		Type:     typ,
		Spelling: spelling,
		Layout:   l,
		Members:  members,
	}, nil
}

// Spell spells member of value's type applied to operands in the target
// language. The receiver, if any, is operands[0]:
//
//	Spell(hlsl.Float4{}, "ZW", opts, "v") // "v.zw"
func Spell(value any, member string, opts Options, operands ...string) (string, error) {
	typ, ok := hlsl.TypeOf(value)
	if !ok {
		return "", fmt.Errorf("spell %T.%s: %w", value, member, ErrUnknownType)
	}
	in, ok := hlsl.LookupIntrinsic(typ.Name, member)
	if !ok {
		return "", fmt.Errorf("spell %s.%s: %w", typ.Name, member, ErrUnknownMember)
	}
	expr, err := lang.Expression(opts.Language, in, operands...)
	if err != nil {
		return "", fmt.Errorf("spell %s: %w", in, err)
	}
	Logger().Debug("shadermath: spelled member", "member", in.String(), "language", opts.Language, "expr", expr)
	return expr, nil
}

// Validate checks every catalog intrinsic against the type model.
//
// Returns the validation errors and a summary error when any were found.
func Validate() ([]ir.ValidationError, error) {
	errs := ir.Validate(hlsl.Intrinsics())
	if len(errs) == 0 {
		return nil, nil
	}
	Logger().Warn("shadermath: invalid intrinsics", "count", len(errs), "first", errs[0].Error())
	return errs, fmt.Errorf("catalog validation: %d errors, first: %w", len(errs), errs[0])
}
