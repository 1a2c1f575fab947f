// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package emitter

import (
	"fmt"
	"io"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/reporter"
)

// emitStructForward writes a struct's forward declaration. Templated
// structs are skipped entirely: template expansion is not implemented, so a
// templated declaration silently produces no C.
func emitStructForward(w io.Writer, s *ast.StructDef) {
	if s.Template != nil {
		return
	}
	fmt.Fprintf(w, "struct %s;\n", s.Name)
}

func emitStructFull(w io.Writer, s *ast.StructDef, ctx *compilectx.Context) {
	if s.Template != nil {
		return
	}
	fmt.Fprintf(w, "struct %s {\n", s.Name)
	for _, m := range s.Members {
		fmt.Fprintf(w, "\t%s %s;\n", ctx.Registry.NameOf(m.Type), m.Name)
	}
	fmt.Fprint(w, "};\n")
}

func functionSignature(f *ast.FunctionDef, ctx *compilectx.Context) string {
	params := ""
	for i, p := range f.Params.Params {
		if i > 0 {
			params += ", "
		}
		params += ctx.Registry.NameOf(p.Type) + " " + p.Name
	}
	return fmt.Sprintf("%s %s(%s)", ctx.Registry.NameOf(f.ReturnType), f.Name, params)
}

// emitFunctionProto writes a function's C prototype, prefixed "static " if
// private.
func emitFunctionProto(w io.Writer, f *ast.FunctionDef, ctx *compilectx.Context) {
	if f.Template != nil {
		return
	}
	if f.Visibility == ast.Private {
		fmt.Fprint(w, "static ")
	}
	fmt.Fprintf(w, "%s;\n", functionSignature(f, ctx))
}

// emitFunctionDef writes a function's full definition. A new frame is
// pushed with each parameter bound before the body emits; the frame is
// always popped afterward, even if a statement failed to emit.
func emitFunctionDef(w io.Writer, f *ast.FunctionDef, ctx *compilectx.Context, h *reporter.Handler, pos reporter.Pos) {
	if f.Template != nil {
		return
	}
	if f.Visibility == ast.Private {
		fmt.Fprint(w, "static ")
	}
	fmt.Fprintf(w, "%s\n{\n", functionSignature(f, ctx))

	ctx.Scope.Begin()
	defer ctx.Scope.End()
	for _, p := range f.Params.Params {
		ctx.Scope.AddVariable(p.Name, p.Type, false, false)
	}
	emitStatements(w, f.Body, ctx, h, pos)

	fmt.Fprint(w, "}\n")
}
