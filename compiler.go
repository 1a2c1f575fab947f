// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tau is the compiler core's external interface: tokenize a source
// file, parse it into a Module, and emit its header and body C artifacts.
// Everything else (the CLI, file I/O, invoking the external C compiler)
// lives outside this module and calls through this package.
package tau

import (
	"bytes"
	"fmt"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/emitter"
	"github.com/Ctl-F/Tau/internal/grammar"
	"github.com/Ctl-F/Tau/internal/lexer"
	"github.com/Ctl-F/Tau/internal/token"
	"github.com/Ctl-F/Tau/reporter"
)

// Parser wraps a compiled grammar.Engine plus the shared compilation
// context threaded through every rule action and both emitter passes.
type Parser struct {
	engine *grammar.Engine
	ctx    *compilectx.Context
}

// NewParser builds a Parser over Tau's rule set with a freshly seeded type
// registry, derived operator tables, and an empty scope.
func NewParser() *Parser {
	return &Parser{engine: grammar.NewEngine(grammar.BuildRules()), ctx: compilectx.New()}
}

// Context returns the parser's shared compilation state. A caller driving
// emission after Parse needs this same context, since the type registry
// populated while parsing is what the emitter resolves types against.
func (p *Parser) Context() *compilectx.Context { return p.ctx }

// Parse evaluates rule (defaulting to "Module") against an already-lexed
// stream. h receives the action errors reported while parsing (an unknown
// type, an empty module); a rule that fails to match or leaves tokens
// unconsumed is reported through the returned error.
func (p *Parser) Parse(stream *token.Stream, rule string, h *reporter.Handler) (ast.Node, error) {
	if rule == "" {
		rule = "Module"
	}
	return p.engine.Parse(stream, rule, p.ctx, h)
}

// CompileResult holds the two C text artifacts a compilation produces.
type CompileResult struct {
	Header string
	Body   string
}

// Compile runs the full pipeline for one source file: tokenize, parse a
// Module, then emit its header and body. sourceName identifies the file in
// diagnostics.
func Compile(source, sourceName string, h *reporter.Handler) (*CompileResult, error) {
	stream, err := lexer.Tokenize(source, sourceName)
	if err != nil {
		return nil, err
	}

	p := NewParser()
	node, err := p.Parse(stream, "Module", h)
	if err != nil {
		return nil, err
	}
	mod, ok := node.(*ast.Module)
	if !ok {
		return nil, fmt.Errorf("tau: Module rule produced %T, not *ast.Module", node)
	}

	var header, body bytes.Buffer
	emitter.EmitHeader(&header, mod, p.Context(), sourceName, h)
	emitter.EmitBody(&body, mod, p.Context(), sourceName, h)

	return &CompileResult{Header: header.String(), Body: body.String()}, h.Error()
}
