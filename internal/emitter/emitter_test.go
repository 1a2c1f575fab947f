// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package emitter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/emitter"
	"github.com/Ctl-F/Tau/internal/grammar"
	"github.com/Ctl-F/Tau/internal/lexer"
	"github.com/Ctl-F/Tau/reporter"
)

// parseModule is the same fixture-building helper the grammar package's own
// tests use, duplicated here (rather than imported) since grammar_test is an
// external test package and emitter needs a *compilectx.Context populated by
// an actual parse, not a hand-built one.
func parseModule(t *testing.T, source string) (*ast.Module, *compilectx.Context, *reporter.Handler) {
	t.Helper()
	stream, err := lexer.Tokenize(source, "t.tau")
	require.NoError(t, err)

	ctx := compilectx.New()
	h := reporter.NewHandler(reporter.NewReporter(
		func(e reporter.ErrorWithPos) error { return nil },
		func(e reporter.ErrorWithPos) {},
	))
	engine := grammar.NewEngine(grammar.BuildRules())
	node, err := engine.Parse(stream, "Module", ctx, h)
	require.NoError(t, err)
	mod, ok := node.(*ast.Module)
	require.True(t, ok)
	return mod, ctx, h
}

func TestEmitHeaderIncludeGuardAndPublicStruct(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod geometry;
		pub struct Point {
			pub i32 x;
			pub i32 y;
		}
		fn unused ( ) void { return; }
	`)
	var header bytes.Buffer
	emitter.EmitHeader(&header, mod, ctx, "t.tau", h)
	out := header.String()

	assert.Contains(t, out, "#ifndef __geometry_H__")
	assert.Contains(t, out, "#define __geometry_H__")
	assert.Contains(t, out, "struct Point;")
	assert.Contains(t, out, "struct Point {")
	assert.Contains(t, out, "i32 x;")
	assert.Contains(t, out, "i32 y;")
	assert.Contains(t, out, "#endif")
}

func TestEmitHeaderOmitsPrivateStructBody(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod priv;
		struct Hidden {
			i32 x;
		}
	`)
	var header bytes.Buffer
	emitter.EmitHeader(&header, mod, ctx, "t.tau", h)
	out := header.String()

	assert.Contains(t, out, "struct Hidden;")
	assert.NotContains(t, out, "struct Hidden {")
}

func TestEmitBodyIncludesPreambleAndFunctionDefinition(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod sample;
		fn add ( i32 a , i32 b ) i32 {
			return a + b;
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "sample.tau", h)
	out := body.String()

	assert.Contains(t, out, `#include "tautypes.h"`)
	assert.Contains(t, out, `#include "sample.h"`)
	assert.Contains(t, out, "i32 add(i32 a, i32 b)")
	assert.Contains(t, out, "return a + b;")
}

func TestEmitBodyPrivateFunctionIsStatic(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod sample;
		fn helper ( ) void { return; }
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "sample.tau", h)
	assert.Contains(t, body.String(), "static void helper()")
}

func TestEmitBodyStructFieldAccessQualification(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod withstruct;
		struct Vec2 {
			i32 x;
			i32 y;
		}
		fn sum ( Vec2 v ) i32 {
			return v.x + v.y;
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	out := body.String()
	assert.Contains(t, out, "return v.x + v.y;")
}

func TestEmitBodyUnresolvedOperatorReportsErrorAndSkipsStatement(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod badop;
		fn f ( ) void {
			i32 x = 1;
			x = x & 2.5;
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	out := body.String()

	// The first (valid) statement still emits; the malformed one doesn't,
	// and the overall Error() reflects at least one reported problem.
	assert.Contains(t, out, "i32 x = 1;")
	assert.NotContains(t, out, "x & 2.5")
	assert.Error(t, h.Error())
}

func TestEmitInlineCBlockNewlinesAfterSemicolons(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod rawc;
		fn f ( ) void {
			inline _C { int a = 1 ; int b = 2 ; }
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	out := body.String()
	// Tokens are joined by a single space, with a newline after every ";"
	// token; the next line's leading token still gets its own "space
	// before token" separator, hence the leading space on the second line.
	assert.Contains(t, out, "int a = 1 ;\n int b = 2 ;\n")
}

// TestEmitBodyModulePrefixedCallJoinsWithUnderscore exercises the
// qualification walk's module branch: a call spelled with the module's own
// name resolves segment by segment (module, then function) and joins with
// an underscore at the module crossing.
func TestEmitBodyModulePrefixedCallJoinsWithUnderscore(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod app;
		fn helper ( ) void { return; }
		fn main ( ) void {
			app.helper();
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	assert.Contains(t, body.String(), "app_helper();")
}

// TestEmitBodyForeignFirstSegmentIsReresolvedWithModulePrefix covers
// qualification rule 2: a dotted reference whose first segment is neither in
// scope nor the module's own first name component is re-resolved with the
// enclosing module path prepended; the still-unknown tail warns and emits
// underscore-joined.
func TestEmitBodyForeignFirstSegmentIsReresolvedWithModulePrefix(t *testing.T) {
	source := `
		mod app;
		fn main ( ) void {
			other.run();
		}
	`
	stream, err := lexer.Tokenize(source, "t.tau")
	require.NoError(t, err)

	ctx := compilectx.New()
	var warnings []string
	h := reporter.NewHandler(reporter.NewReporter(
		func(e reporter.ErrorWithPos) error { return nil },
		func(e reporter.ErrorWithPos) { warnings = append(warnings, e.Error()) },
	))
	engine := grammar.NewEngine(grammar.BuildRules())
	node, err := engine.Parse(stream, "Module", ctx, h)
	require.NoError(t, err)
	mod := node.(*ast.Module)

	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)

	assert.Contains(t, body.String(), "app_other_run();")
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[len(warnings)-1], "unknown symbol: other")
}

// TestEmitHeaderAndBodySplitStructDefinitions is the public/private struct
// split: the header carries the public struct's full body only, the body
// carries the private struct's full body only, and both files carry both
// forward declarations.
func TestEmitHeaderAndBodySplitStructDefinitions(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod split;
		pub struct P {
			pub i32 x;
		}
		struct Q {
			i32 y;
		}
	`)
	var header, body bytes.Buffer
	emitter.EmitHeader(&header, mod, ctx, "t.tau", h)
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	hout, bout := header.String(), body.String()

	assert.Contains(t, hout, "struct P;")
	assert.Contains(t, hout, "struct Q;")
	assert.Contains(t, hout, "struct P {")
	assert.NotContains(t, hout, "struct Q {")

	assert.Contains(t, bout, "struct P;")
	assert.Contains(t, bout, "struct Q;")
	assert.Contains(t, bout, "struct Q {")
	assert.NotContains(t, bout, "struct P {")
}

// TestEmitBodyCastFallsThroughToGenericUnary pins the documented cast
// behavior: no "(T)x" rewrite exists, so a cast renders through the generic
// prefix-unary path as "as x".
func TestEmitBodyCastFallsThroughToGenericUnary(t *testing.T) {
	mod, ctx, h := parseModule(t, `
		mod casting;
		fn f ( i32 x ) i32 {
			return x as i8;
		}
	`)
	var body bytes.Buffer
	emitter.EmitBody(&body, mod, ctx, "t.tau", h)
	assert.Contains(t, body.String(), "return as x;")
}
