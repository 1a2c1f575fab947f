// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/grammar"
	"github.com/Ctl-F/Tau/internal/lexer"
	"github.com/Ctl-F/Tau/internal/types"
	"github.com/Ctl-F/Tau/reporter"
)

// collectingReporter never aborts, so a test can inspect every diagnostic a
// parse produced instead of stopping at the first one.
type collectingReporter struct {
	errors   []reporter.ErrorWithPos
	warnings []reporter.ErrorWithPos
}

func (c *collectingReporter) HandleError(err reporter.ErrorWithPos) error {
	c.errors = append(c.errors, err)
	return nil
}

func (c *collectingReporter) HandleWarning(err reporter.ErrorWithPos) {
	c.warnings = append(c.warnings, err)
}

func parseRule(t *testing.T, source, rule string) (ast.Node, *compilectx.Context, *collectingReporter, error) {
	t.Helper()
	stream, err := lexer.Tokenize(source, "t.tau")
	require.NoError(t, err)

	ctx := compilectx.New()
	cr := &collectingReporter{}
	h := reporter.NewHandler(cr)
	engine := grammar.NewEngine(grammar.BuildRules())
	node, perr := engine.Parse(stream, rule, ctx, h)
	return node, ctx, cr, perr
}

func mustParseModule(t *testing.T, source string) (*ast.Module, *compilectx.Context, *collectingReporter) {
	t.Helper()
	node, ctx, cr, err := parseRule(t, source, "Module")
	require.NoError(t, err)
	require.Empty(t, cr.errors)
	mod, ok := node.(*ast.Module)
	require.True(t, ok, "expected *ast.Module, got %T", node)
	return mod, ctx, cr
}

func TestParseEmptyModuleIsRejected(t *testing.T) {
	_, _, cr, err := parseRule(t, "mod empty;", "Module")
	// The grammar's own action reports "A module cannot be empty" as an
	// action error; the engine forwards it to the Handler and fails the
	// Module rule, so the whole parse fails.
	require.Error(t, err)
	require.Len(t, cr.errors, 1)
	assert.Contains(t, cr.errors[0].Error(), "cannot be empty")
}

func TestParseMinimalModuleWithOneFunction(t *testing.T) {
	mod, _, _ := mustParseModule(t, `
		mod sample;
		fn main ( ) i32 {
			return 0;
		}
	`)
	assert.Equal(t, "sample", mod.Name.FullName())
	require.Len(t, mod.Body.Functions, 1)
	fn := mod.Body.Functions[0]
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, ast.Private, fn.Visibility)
	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	lit, ok := ret.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Text)
}

func TestParsePublicStructWithMembers(t *testing.T) {
	mod, ctx, _ := mustParseModule(t, `
		mod geometry;
		pub struct Point {
			pub i32 x;
			pub i32 y;
		}
	`)
	require.Len(t, mod.Body.Structs, 1)
	s := mod.Body.Structs[0]
	assert.Equal(t, "Point", s.Name)
	assert.Equal(t, ast.Public, s.Visibility)
	require.Len(t, s.Members, 2)
	assert.Equal(t, "x", s.Members[0].Name)
	assert.Equal(t, "y", s.Members[1].Name)
	assert.True(t, ctx.Registry.IsStruct(s.TypeID))
}

// TestParseDuplicateStructNameFails: the second "struct A" fails its
// DefineStruct action, which backtracks BodyItems to its empty fallback
// rather than aborting the whole module — so the module still parses with
// only the first struct, and the duplicate is caught by the leftover-tokens
// check instead (Engine.Parse's CategoryExtraTokens path).
func TestParseDuplicateStructNameFails(t *testing.T) {
	_, _, cr, err := parseRule(t, `
		mod dup;
		struct A { i32 x; }
		struct A { i32 y; }
	`, "Module")
	require.Error(t, err)
	require.Len(t, cr.errors, 1)
	assert.Contains(t, cr.errors[0].Error(), "already defined")
}

// TestParseBinaryPrecedenceShapeMatchesAdditionOfProduct: "1 + 2 * 3" must
// parse with Add at the root and Mul as its right child, never the
// reverse.
func TestParseBinaryPrecedenceShapeMatchesAdditionOfProduct(t *testing.T) {
	node, _, cr, err := parseRule(t, "1 + 2 * 3", "Expr")
	require.NoError(t, err)
	require.Empty(t, cr.errors)

	add, ok := node.(*ast.BinaryOperator)
	require.True(t, ok, "root should be a BinaryOperator, got %T", node)
	assert.Equal(t, types.OpAdd, add.Op)

	lhs, ok := add.Lhs.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "1", lhs.Text)

	mul, ok := add.Rhs.(*ast.BinaryOperator)
	require.True(t, ok, "right child should be the Mul, got %T", add.Rhs)
	assert.Equal(t, types.OpMul, mul.Op)
}

// TestParseLeftAssociativeChainWithinOneTier covers "1 - 2 - 3" folding
// left-associatively: (1 - 2) - 3, not 1 - (2 - 3).
func TestParseLeftAssociativeChainWithinOneTier(t *testing.T) {
	node, _, _, err := parseRule(t, "1 - 2 - 3", "Expr")
	require.NoError(t, err)

	outer, ok := node.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, types.OpSub, outer.Op)

	inner, ok := outer.Lhs.(*ast.BinaryOperator)
	require.True(t, ok, "left-associative fold should nest on the left, got lhs=%T rhs=%T", outer.Lhs, outer.Rhs)
	assert.Equal(t, types.OpSub, inner.Op)

	rhsLit, ok := outer.Rhs.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "3", rhsLit.Text)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	node, _, _, err := parseRule(t, "a = b = c", "Expr")
	require.NoError(t, err)

	outer, ok := node.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, types.OpAssign, outer.Op)

	_, lhsIsVar := outer.Lhs.(*ast.Variable)
	assert.True(t, lhsIsVar)

	inner, ok := outer.Rhs.(*ast.BinaryOperator)
	require.True(t, ok, "assignment should nest on the right, got rhs=%T", outer.Rhs)
	assert.Equal(t, types.OpAssign, inner.Op)
}

// TestParseCastExpression: a cast parses successfully and the target type
// is validated, but the node carries no rewrite hint and always emits via
// generic unary rendering.
func TestParseCastExpression(t *testing.T) {
	node, ctx, cr, err := parseRule(t, "x as i32", "Expr")
	require.NoError(t, err)
	require.Empty(t, cr.errors)

	u, ok := node.(*ast.UnaryOperator)
	require.True(t, ok)
	assert.Equal(t, types.OpCast, u.Op)
	_, isVar := u.Child.(*ast.Variable)
	assert.True(t, isVar)
	_ = ctx
}

func TestParseCastUnknownTypeIsActionError(t *testing.T) {
	_, _, _, err := parseRule(t, "x as bogus_type", "Expr")
	require.Error(t, err)
}

func TestParseIfElseIfElseChain(t *testing.T) {
	node, _, cr, err := parseRule(t, `
		if (a) { return 1; } else if (b) { return 2; } else { return 3; }
	`, "Statement")
	require.NoError(t, err)
	require.Empty(t, cr.errors)

	ifStmt, ok := node.(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
	require.NotNil(t, ifStmt.Else.If)
	assert.Nil(t, ifStmt.Else.Body)
	require.NotNil(t, ifStmt.Else.If.Else)
	assert.NotNil(t, ifStmt.Else.If.Else.Body)
}

// TestParseInlineCBlockCollectsRawTokens: an inline _C block's tokens are
// captured verbatim for passthrough emission.
func TestParseInlineCBlockCollectsRawTokens(t *testing.T) {
	mod, _, _ := mustParseModule(t, `
		mod raw;
		fn touch ( ) void {
			inline _C { int x = 1 ; x = x + 1 ; }
		}
	`)
	fn := mod.Body.Functions[0]
	require.Len(t, fn.Body.Statements, 1)
	block, ok := fn.Body.Statements[0].(*ast.InlineCBlock)
	require.True(t, ok)
	assert.Contains(t, block.Tokens, ";")
	assert.Contains(t, block.Tokens, "int")
}

func TestParseFunctionCallWithArguments(t *testing.T) {
	node, _, cr, err := parseRule(t, "add(1, 2, x)", "Expr")
	require.NoError(t, err)
	require.Empty(t, cr.errors)

	call, ok := node.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name.LocalName())
	require.Len(t, call.Arguments.Exprs, 3)
}

func TestParseCStyleIncludeUnquotesPath(t *testing.T) {
	mod, _, _ := mustParseModule(t, `
		mod withinclude;
		include _C "stdio.h";
		fn main ( ) i32 { return 0; }
	`)
	require.Len(t, mod.Body.Includes, 1)
	inc := mod.Body.Includes[0]
	assert.True(t, inc.IsCInclude)
	assert.Equal(t, "stdio.h", inc.Raw)
}

func TestParseNestedBalancedGenericsGrabbed(t *testing.T) {
	node, _, cr, err := parseRule(t, "a<b, c>", "Path")
	require.NoError(t, err)
	require.Empty(t, cr.errors)
	path, ok := node.(*ast.Path)
	require.True(t, ok)
	assert.Equal(t, "a", path.LocalName())
}

// TestParseCharLiteralsDecode covers the two accepted char shapes: a plain
// visible character and a backslash-plus-two-hex-digits escape.
func TestParseCharLiteralsDecode(t *testing.T) {
	node, _, _, err := parseRule(t, "'a'", "Expr")
	require.NoError(t, err)
	lit, ok := node.(*ast.CharLiteral)
	require.True(t, ok)
	assert.Equal(t, byte(97), lit.Value)

	node, _, _, err = parseRule(t, `'\ff'`, "Expr")
	require.NoError(t, err)
	lit, ok = node.(*ast.CharLiteral)
	require.True(t, ok)
	assert.Equal(t, byte(255), lit.Value)
}
