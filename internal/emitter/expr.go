// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package emitter

import (
	"fmt"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/types"
)

// exprString renders one expression node to C text. It returns an error the
// moment an operator fails to resolve against the operator tables; the
// caller (a statement emitter) is responsible for aborting the declaration
// that contains it.
func exprString(ctx *compilectx.Context, n ast.Node, warn func(string)) (string, error) {
	switch e := n.(type) {
	case *ast.IntegerLiteral:
		// Round trips verbatim: the exact decimal text the lexer produced,
		// not a re-rendering of e.Value.
		return e.Text, nil
	case *ast.FloatLiteral:
		return e.Text, nil
	case *ast.BoolLiteral:
		if e.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.CharLiteral:
		return charLiteralC(e.Value), nil
	case *ast.StringLiteral:
		// The node stores the unquoted content; emit re-quoted.
		return "\"" + e.Value + "\"", nil
	case *ast.Variable:
		return qualifyPath(ctx, e.Name, warn), nil
	case *ast.FunctionCall:
		name := qualifyPath(ctx, e.Name, warn)
		args := ""
		if e.Arguments != nil {
			for i, a := range e.Arguments.Exprs {
				if i > 0 {
					args += ", "
				}
				s, err := exprString(ctx, a, warn)
				if err != nil {
					return "", err
				}
				args += s
			}
		}
		return name + "(" + args + ")", nil
	case *ast.BinaryOperator:
		return binaryExprString(ctx, e, warn)
	case *ast.UnaryOperator:
		return unaryExprString(ctx, e, warn)
	default:
		return "", fmt.Errorf("emitter: unsupported expression node %T", n)
	}
}

func binaryExprString(ctx *compilectx.Context, e *ast.BinaryOperator, warn func(string)) (string, error) {
	resultType := e.Type(ctx)
	if resultType == types.Unknown {
		lhsT := typeOfOrUnknown(ctx, e.Lhs)
		rhsT := typeOfOrUnknown(ctx, e.Rhs)
		return "", fmt.Errorf("no operator %q for operand types %s, %s",
			types.OpString(e.Op), ctx.Registry.NameOf(lhsT), ctx.Registry.NameOf(rhsT))
	}
	lhs, err := exprString(ctx, e.Lhs, warn)
	if err != nil {
		return "", err
	}
	rhs, err := exprString(ctx, e.Rhs, warn)
	if err != nil {
		return "", err
	}
	return lhs + " " + types.OpString(e.Op) + " " + rhs, nil
}

func unaryExprString(ctx *compilectx.Context, e *ast.UnaryOperator, warn func(string)) (string, error) {
	resultType := e.Type(ctx)
	if resultType == types.Unknown {
		operandT := typeOfOrUnknown(ctx, e.Child)
		return "", fmt.Errorf("no operator %q for operand type %s",
			types.OpString(e.Op), ctx.Registry.NameOf(operandT))
	}
	child, err := exprString(ctx, e.Child, warn)
	if err != nil {
		return "", err
	}
	if e.Prefix {
		return types.OpString(e.Op) + child, nil
	}
	return child + types.OpString(e.Op), nil
}

func typeOfOrUnknown(ctx *compilectx.Context, n ast.Node) types.ID {
	t, ok := n.(ast.Typed)
	if !ok {
		return types.Unknown
	}
	return t.Type(ctx)
}

// charLiteralC renders a decoded char value back as a C character literal,
// hex-escaping anything outside printable ASCII or the two characters that
// would otherwise break out of the quotes.
func charLiteralC(v byte) string {
	if v >= 32 && v <= 126 && v != '\'' && v != '\\' {
		return "'" + string(rune(v)) + "'"
	}
	return fmt.Sprintf("'\\x%02x'", v)
}
