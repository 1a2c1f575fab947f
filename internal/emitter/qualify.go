// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package emitter

import (
	"strings"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/scope"
)

// qualifyPath turns a dotted source path into a legal C identifier or field
// access chain. Segments resolve left to right against the symbol scope:
// module/struct segments join with underscores, a function segment is
// terminal, and once a segment resolves to a variable of struct type every
// following segment is a dotted C member access, chased through the
// registry until a non-struct field type.
// An unresolved leading segment that is not the current module's own first
// name component re-resolves with the enclosing namescope prepended; a
// segment that stays unresolved reports a warning and emission continues
// with the underscore-joined spelling.
func qualifyPath(ctx *compilectx.Context, p *ast.Path, warn func(string)) string {
	if len(p.Bits) == 0 {
		return ""
	}

	if _, ok := ctx.Scope.Get(p.Bits[0].Name); !ok {
		if ns := ctx.Namescope; len(ns) > 0 && p.Bits[0].Name != ns[0] {
			full := &ast.Path{Bits: make([]ast.PathBit, 0, len(ns)+len(p.Bits))}
			for _, name := range ns {
				full.Bits = append(full.Bits, ast.PathBit{Name: name})
			}
			full.Bits = append(full.Bits, p.Bits...)
			return qualifyPath(ctx, full, warn)
		}
	}

	var out strings.Builder
	i := 0
	for i < len(p.Bits) {
		name := p.Bits[i].Name
		info, ok := ctx.Scope.Get(name)
		if !ok {
			warn("unknown symbol: " + name)
			out.WriteString(strings.Join(namesOf(p)[i:], "_"))
			return out.String()
		}
		switch info.Kind {
		case scope.KindModule, scope.KindStruct, scope.KindEnum:
			out.WriteString(name)
			i++
			if i < len(p.Bits) {
				out.WriteString("_")
			}
		case scope.KindFunction:
			out.WriteString(name)
			if i+1 < len(p.Bits) {
				warn("functions may not contain subtypes: " + name)
			}
			return out.String()
		default:
			out.WriteString(name)
			t := info.Type
			i++
			for i < len(p.Bits) {
				if !ctx.Registry.IsStruct(t) {
					warn(p.Bits[i-1].Name + " is not a struct type for member access")
					return out.String()
				}
				out.WriteString(".")
				out.WriteString(p.Bits[i].Name)
				t = ctx.Registry.StructFieldType(t, p.Bits[i].Name)
				i++
			}
			return out.String()
		}
	}
	return out.String()
}

func namesOf(p *ast.Path) []string {
	names := make([]string, len(p.Bits))
	for i, b := range p.Bits {
		names[i] = b.Name
	}
	return names
}
