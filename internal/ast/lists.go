// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/Ctl-F/Tau/internal/types"

// MemberList is a transient accumulator used while parsing a struct body:
// grammar actions fold one member at a time onto the tail already parsed.
// It never survives into a finished StructDef (see decls.go); it exists
// only so the recursive member-list rule has something to bind under its
// action's view, the same role ast.Body plays for top-level declarations.
type MemberList struct {
	Members []*VariableDecl
}

func (*MemberList) astNode() {}

// OpChainEntry is one (operator, right operand) pair collected by a
// binary-expression tail rule before the owning precedence tier folds the
// chain into left-associative BinaryOperator nodes.
type OpChainEntry struct {
	Op  types.Op
	Rhs Node
}

// OpChain accumulates the trailing "op operand" pairs of one precedence
// tier of a left-associative binary expression (e.g. every "+ term" /
// "- term" following an AddExpr's first MulExpr). The owning tier's action
// folds Entries onto its left-hand side in order, producing a
// left-leaning BinaryOperator tree.
type OpChain struct {
	Entries []OpChainEntry
}

func (*OpChain) astNode() {}
