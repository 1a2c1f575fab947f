// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/Ctl-F/Tau/internal/types"

// PathSpecBit is one segment of a declaration-site name (a module
// declaration's own dotted name, or a struct's declared name).
type PathSpecBit struct {
	Name     string
	Template *TemplateParams
}

// PathSpec is a declaration-site dotted name: "mod a.b.c;".
type PathSpec struct {
	Bits []PathSpecBit
}

func (*PathSpec) astNode() {}

// FullName joins every segment with "_", the module-boundary-crossing rule
// for C identifiers. Template parameters are not part of a module's own
// dotted name, so they're ignored here.
func (p *PathSpec) FullName() string {
	out := ""
	for i, b := range p.Bits {
		if i > 0 {
			out += "_"
		}
		out += b.Name
	}
	return out
}

// PathBit is one segment of a use-site name ("a.b.c" referring to a
// variable, function, or struct field chain).
type PathBit struct {
	Name     string
	Template *TemplateArgs
}

// Path is a use-site dotted name: a variable reference, function-call
// target, or struct field-access chain.
type Path struct {
	Bits []PathBit
}

func (*Path) astNode() {}

// LocalName returns the last segment, e.g. the field name in "a.b.c".
func (p *Path) LocalName() string {
	if len(p.Bits) == 0 {
		return ""
	}
	return p.Bits[len(p.Bits)-1].Name
}

// Type implements Typed by resolving the first segment in scope, then for
// every subsequent segment chasing into the struct field it names. A segment
// that follows a non-struct type, or names no field, makes the result
// Unknown.
func (p *Path) Type(ctx TypeContext) types.ID {
	if len(p.Bits) == 0 {
		return types.Unknown
	}
	t, ok := ctx.LookupVariable(p.Bits[0].Name)
	if !ok {
		return types.Unknown
	}
	for _, bit := range p.Bits[1:] {
		if !ctx.Types().IsStruct(t) {
			return types.Unknown
		}
		t = ctx.Types().StructFieldType(t, bit.Name)
	}
	return t
}

var _ Typed = (*Path)(nil)

// TemplateParams is the declaration-site template parameter list. Template
// instantiation is not implemented; this node only records that parameters
// were written, so the emitter can recognize and skip a templated
// declaration.
type TemplateParams struct {
	Names []string
}

func (*TemplateParams) astNode() {}

// TemplateArgs is the use-site template argument list, structurally mirrored
// for the same reason as TemplateParams.
type TemplateArgs struct {
	Args []*Path
}

func (*TemplateArgs) astNode() {}
