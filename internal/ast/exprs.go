// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/Ctl-F/Tau/internal/types"

// BinaryOperator is a typed binary expression, e.g. `a + b`.
type BinaryOperator struct {
	Op  types.Op
	Lhs Node
	Rhs Node
}

func (*BinaryOperator) astNode() {}

// Type resolves the operator against the binary table using both child
// types.
func (b *BinaryOperator) Type(ctx TypeContext) types.ID {
	lhs, lok := b.Lhs.(Typed)
	rhs, rok := b.Rhs.(Typed)
	if !lok || !rok {
		return types.Unknown
	}
	return types.ResolveBinary(ctx.Types(), ctx.BinaryOperators(), b.Op, lhs.Type(ctx), rhs.Type(ctx))
}

var _ Typed = (*BinaryOperator)(nil)

// UnaryOperator is a typed unary expression. Prefix distinguishes `++x` from
// `x++` for operators that exist in both forms.
type UnaryOperator struct {
	Op     types.Op
	Prefix bool
	Child  Node
}

func (*UnaryOperator) astNode() {}

func (u *UnaryOperator) Type(ctx TypeContext) types.ID {
	child, ok := u.Child.(Typed)
	if !ok {
		return types.Unknown
	}
	return types.ResolveUnary(ctx.Types(), ctx.UnaryOperators(), u.Op, child.Type(ctx))
}

var _ Typed = (*UnaryOperator)(nil)

// Arguments is an ordered call-argument list.
type Arguments struct {
	Exprs []Node
}

func (*Arguments) astNode() {}

// FunctionCall is a call expression; Name is the (possibly qualified)
// function path and Arguments may be nil for a zero-argument call.
type FunctionCall struct {
	Name      *Path
	Arguments *Arguments
}

func (*FunctionCall) astNode() {}

func (f *FunctionCall) Type(ctx TypeContext) types.ID {
	t, ok := ctx.LookupVariable(f.Name.LocalName())
	if !ok {
		return types.Unknown
	}
	return t
}

var _ Typed = (*FunctionCall)(nil)

// Variable is a value-position reference to a name path.
type Variable struct {
	Name *Path
}

func (*Variable) astNode() {}

func (v *Variable) Type(ctx TypeContext) types.ID {
	return v.Name.Type(ctx)
}

var _ Typed = (*Variable)(nil)

// IntegerLiteral is an integer literal, typed as the untyped-integer
// placeholder until promoted by operator resolution.
type IntegerLiteral struct {
	Value int64
	// Text preserves the exact decimal text originally lexed, so emission
	// can round-trip it verbatim.
	Text string
}

func (*IntegerLiteral) astNode() {}

func (n *IntegerLiteral) Type(ctx TypeContext) types.ID {
	return ctx.Types().IntLiteralType()
}

var _ Typed = (*IntegerLiteral)(nil)

// FloatLiteral is a floating-point literal, typed as the untyped-float
// placeholder until promoted.
type FloatLiteral struct {
	Value float64
	Text  string
}

func (*FloatLiteral) astNode() {}

func (n *FloatLiteral) Type(ctx TypeContext) types.ID {
	return ctx.Types().FloatLiteralType()
}

var _ Typed = (*FloatLiteral)(nil)

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) astNode() {}

func (n *BoolLiteral) Type(ctx TypeContext) types.ID {
	return ctx.Types().IDFromName("bool")
}

var _ Typed = (*BoolLiteral)(nil)

// CharLiteral is a decoded character literal: 'a' -> 97, '\ff' -> 255.
type CharLiteral struct {
	Value byte
}

func (*CharLiteral) astNode() {}

func (n *CharLiteral) Type(ctx TypeContext) types.ID {
	return ctx.Types().IDFromName("char")
}

var _ Typed = (*CharLiteral)(nil)

// StringLiteral holds the string content verbatim with both quotes already
// removed.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) astNode() {}

func (n *StringLiteral) Type(ctx TypeContext) types.ID {
	// Strings have no dedicated primitive type in the pre-seeded set, so a
	// string literal reports Unknown; the emitter writes it re-quoted without
	// consulting the operator tables.
	return types.Unknown
}

var _ Typed = (*StringLiteral)(nil)
