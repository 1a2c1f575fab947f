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

// emitStatements walks a statement block in order. A statement whose
// expression fails to resolve (an operator-table miss) is reported and
// skipped; the enclosing function still gets the rest of its body emitted.
func emitStatements(w io.Writer, block *ast.StatementBlock, ctx *compilectx.Context, h *reporter.Handler, pos reporter.Pos) {
	if block == nil {
		return
	}
	for _, s := range block.Statements {
		emitStatement(w, s, ctx, h, pos)
	}
}

func emitStatement(w io.Writer, n ast.Node, ctx *compilectx.Context, h *reporter.Handler, pos reporter.Pos) {
	warn := func(msg string) { h.HandleWarningf(pos, "%s", msg) }

	switch s := n.(type) {
	case *ast.VariableDecl:
		ctx.Scope.AddVariable(s.Name, s.Type, false, false)
		if s.Default != nil {
			val, err := exprString(ctx, s.Default, warn)
			if err != nil {
				h.HandleErrorf(pos, "%s", err)
				return
			}
			fmt.Fprintf(w, "%s %s = %s;\n", ctx.Registry.NameOf(s.Type), s.Name, val)
			return
		}
		fmt.Fprintf(w, "%s %s;\n", ctx.Registry.NameOf(s.Type), s.Name)

	case *ast.Return:
		if s.Value == nil {
			fmt.Fprint(w, "return ;\n")
			return
		}
		val, err := exprString(ctx, s.Value, warn)
		if err != nil {
			h.HandleErrorf(pos, "%s", err)
			return
		}
		fmt.Fprintf(w, "return %s;\n", val)

	case *ast.If:
		cond, err := exprString(ctx, s.Condition, warn)
		if err != nil {
			h.HandleErrorf(pos, "%s", err)
			return
		}
		fmt.Fprintf(w, "if (%s)\n{\n", cond)
		emitStatements(w, s.Body, ctx, h, pos)
		fmt.Fprint(w, "}\n")
		emitElse(w, s.Else, ctx, h, pos)

	case *ast.InlineCBlock:
		emitInlineC(w, s.Tokens)

	default:
		// Any other node in statement position is an expression used as a
		// statement (assignment, function call, inc/dec).
		val, err := exprString(ctx, n, warn)
		if err != nil {
			h.HandleErrorf(pos, "%s", err)
			return
		}
		fmt.Fprintf(w, "%s;\n", val)
	}
}

func emitElse(w io.Writer, e *ast.Else, ctx *compilectx.Context, h *reporter.Handler, pos reporter.Pos) {
	if e == nil {
		return
	}
	if e.If != nil {
		cond, err := exprString(ctx, e.If.Condition, func(msg string) { h.HandleWarningf(pos, "%s", msg) })
		if err != nil {
			h.HandleErrorf(pos, "%s", err)
			return
		}
		fmt.Fprintf(w, "else if (%s)\n{\n", cond)
		emitStatements(w, e.If.Body, ctx, h, pos)
		fmt.Fprint(w, "}\n")
		emitElse(w, e.If.Else, ctx, h, pos)
		return
	}
	fmt.Fprint(w, "else\n{\n")
	emitStatements(w, e.Body, ctx, h, pos)
	fmt.Fprint(w, "}\n")
}

// emitInlineC passes a raw token run through: tokens are joined by a
// single space, with a newline inserted after every token whose literal is
// ";".
func emitInlineC(w io.Writer, tokens []string) {
	for i, t := range tokens {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, t)
		if t == ";" {
			fmt.Fprint(w, "\n")
		}
	}
	if len(tokens) == 0 || tokens[len(tokens)-1] != ";" {
		fmt.Fprint(w, "\n")
	}
}
