// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ast defines Tau's closed set of AST node variants.
//
// A tagged-interface-plus-marker-method pattern stands in for what would be
// an enum + struct in other languages; it keeps the variant set closed to
// this package while every node stays a plain data struct.
package ast

import "github.com/Ctl-F/Tau/internal/types"

// Node is implemented by every AST variant. The unexported marker method
// keeps the set closed to this package; grammar actions build finished AST
// nodes directly, with no intermediate CST layer.
type Node interface {
	astNode()
}

// TypeContext is the minimal view into shared compiler state a Typed node
// needs to resolve its own type. Concrete implementations live outside this
// package (see internal/compilectx) so ast never depends on scope or
// compilectx — Node accepts the interface, it doesn't own an implementation.
type TypeContext interface {
	Types() *types.Registry
	BinaryOperators() []types.AllowedBinaryOperator
	UnaryOperators() []types.AllowedUnaryOperator
	// LookupVariable returns the type recorded for a name visible in the
	// current scope: a variable's declared type, or a function's return type.
	LookupVariable(name string) (types.ID, bool)
}

// Typed is implemented by every node that can appear in an expression
// position.
type Typed interface {
	Node
	Type(ctx TypeContext) types.ID
}

// Visibility is a struct or function's public/private declaration.
type Visibility int

const (
	Private Visibility = iota
	Public
)
