// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package emitter runs two passes over a parsed Module — a header pass and
// a body pass — each producing one C text artifact.
//
// Emission is a set of free functions over the shared compilectx.Context
// rather than methods on the AST nodes, so the AST stays a plain data model
// and this package is the visitor over it.
package emitter

import (
	"fmt"
	"io"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/scope"
	"github.com/Ctl-F/Tau/reporter"
)

// EmitHeader writes mod's public C surface: include guard, pass-through C
// includes, every struct's forward declaration, every public struct's full
// body, and every non-templated public function's prototype.
func EmitHeader(w io.Writer, mod *ast.Module, ctx *compilectx.Context, sourceName string, h *reporter.Handler) {
	guard := "__" + mod.Name.FullName() + "_H__"
	fmt.Fprintf(w, "#ifndef %s\n#define %s\n\n", guard, guard)

	for _, inc := range mod.Body.Includes {
		if inc.IsCInclude {
			fmt.Fprintf(w, "#include \"%s\"\n", inc.Raw)
		}
	}
	if len(mod.Body.Includes) > 0 {
		fmt.Fprint(w, "\n")
	}

	for _, s := range mod.Body.Structs {
		emitStructForward(w, s)
	}
	for _, s := range mod.Body.Structs {
		if s.Visibility == ast.Public {
			emitStructFull(w, s, ctx)
		}
	}

	for _, f := range mod.Body.Functions {
		if f.Visibility == ast.Public {
			emitFunctionProto(w, f, ctx)
		}
	}

	fmt.Fprintf(w, "\n#endif\n")
}

// EmitBody writes mod's translation unit: the fixed preamble, includes,
// private struct bodies, every function's prototype, then every function's
// definition.
func EmitBody(w io.Writer, mod *ast.Module, ctx *compilectx.Context, sourceName string, h *reporter.Handler) {
	fmt.Fprintf(w, "#include <stdbool.h>\n#include <stdlib.h>\n\n#include \"tautypes.h\"\n#include \"%s.h\"\n\n",
		mod.Name.FullName())

	pos := reporter.Pos{Filename: sourceName, Line: 1, Col: 1}

	ctx.Scope.Begin()
	defer ctx.Scope.End()
	ctx.Scope.Add(mod.Name.FullName(), scope.ItemInfo{Kind: scope.KindModule})
	for _, bit := range mod.Name.Bits {
		ctx.BeginNamescope(bit.Name)
	}
	defer func() {
		for range mod.Name.Bits {
			ctx.EndNamescope()
		}
	}()
	for _, s := range mod.Body.Structs {
		if s.Template == nil {
			ctx.Scope.Add(s.Name, scope.ItemInfo{Kind: scope.KindStruct, Type: s.TypeID})
		}
	}
	for _, f := range mod.Body.Functions {
		if f.Template == nil {
			ctx.Scope.Add(f.Name, scope.ItemInfo{Kind: scope.KindFunction, Type: f.ReturnType})
		}
	}

	for _, inc := range mod.Body.Includes {
		if inc.IsCInclude {
			fmt.Fprintf(w, "#include \"%s\"\n", inc.Raw)
		}
	}
	if len(mod.Body.Includes) > 0 {
		fmt.Fprint(w, "\n")
	}

	for _, s := range mod.Body.Structs {
		emitStructForward(w, s)
	}
	for _, s := range mod.Body.Structs {
		if s.Visibility == ast.Private {
			emitStructFull(w, s, ctx)
		}
	}

	for _, f := range mod.Body.Functions {
		emitFunctionProto(w, f, ctx)
	}
	fmt.Fprint(w, "\n")

	for _, f := range mod.Body.Functions {
		emitFunctionDef(w, f, ctx, h, pos)
		fmt.Fprint(w, "\n")
	}
}
