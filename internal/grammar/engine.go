// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/token"
	"github.com/Ctl-F/Tau/reporter"
)

// View is the named-children binding an Action sees: assignment key ->
// the node captured under that key.
type View map[string]ast.Node

// ActionFn finishes a successfully-matched alternative, turning its View
// into one AST node. An action that detects a semantic problem (e.g. an
// unknown type name) reports it via ctx.PushError and may return nil; on
// any accumulated error the engine forwards every message to the Handler,
// restores the stream, and fails the whole rule without trying its
// remaining alternatives.
type ActionFn func(ctx *compilectx.Context, view View) ast.Node

// Alt is one right-hand side of a named rule: an ordered list of Steps plus
// the action that builds its AST node on full match.
type Alt struct {
	Steps  []Step
	Action ActionFn
}

// RuleSet maps a rule name to its ordered list of alternatives, tried in
// order (first full match wins).
type RuleSet map[string][]Alt

// Engine evaluates a RuleSet against a token.Stream.
type Engine struct {
	rules RuleSet
}

// NewEngine wraps a completed rule table.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

// punctuators are operator-kind tokens that a bare Tok(token.Operator, ...)
// step must NOT swallow; they only ever match through an explicit Lit step.
var punctuators = map[string]bool{
	"(": true, ")": true, "[": true, "]": true, "{": true, "}": true,
	";": true, ",": true,
}

func isPunctuator(lit string) bool {
	return punctuators[lit]
}

// Parse evaluates the named rule starting at stream's current cursor. On
// success it returns the produced node with the stream positioned just
// past the match and Depth() back to its entry value. If no alternative
// matches it returns a *ParseError and leaves the stream's cursor unmoved.
// If the rule matches but tokens remain, it returns the node together with
// a CategoryExtraTokens *ParseError, the cursor left just past the match.
func (e *Engine) Parse(stream *token.Stream, ruleName string, ctx *compilectx.Context, h *reporter.Handler) (ast.Node, error) {
	// Flags are per-parse state; a reused context starts each parse clean.
	ctx.ClearFlags()
	depth := stream.Depth()
	node := e.evalRuleset(stream, e.rules[ruleName], ctx, h)
	if node == nil {
		return nil, &ParseError{
			Category: CategoryIncorrectToken,
			Pos:      posOf(stream.Peek()),
			Message:  "no alternative of \"" + ruleName + "\" matched",
		}
	}
	if stream.Depth() != depth {
		// An Action-level bug, not a source error: every Mark taken while
		// evaluating this rule must have been Pass'd or Fail'd already.
		panic("grammar: unbalanced mark/pass/fail depth after successful parse of " + ruleName)
	}
	if !stream.AtEOF() {
		// A recursive list rule (BodyItems, StmtList, MemberList, ...) can
		// recover from an inner action error by falling back to its empty
		// alternative, silently leaving the offending tokens unconsumed
		// rather than failing the whole parse. Parse is the only
		// externally-called entry point, so this is the one place that can
		// tell a recovered-but-incomplete parse from a genuinely complete
		// one.
		return node, &ParseError{
			Category: CategoryExtraTokens,
			Pos:      posOf(stream.Peek()),
			Message:  "unconsumed input after " + ruleName,
		}
	}
	return node, nil
}

// evalRuleset tries each alternative in order against stream, returning the
// first one's resulting node, or nil if none matched.
func (e *Engine) evalRuleset(stream *token.Stream, alts []Alt, ctx *compilectx.Context, h *reporter.Handler) ast.Node {
	for _, alt := range alts {
		stream.Mark()
		view := make(View, len(alt.Steps))
		if !e.evalSteps(stream, alt.Steps, ctx, h, view) {
			stream.Fail()
			continue
		}
		if alt.Action == nil {
			stream.Pass()
			return &ast.OrphanTokens{}
		}
		result := alt.Action(ctx, view)
		if errs := ctx.TakeErrors(); len(errs) > 0 {
			pos := posOf(stream.Peek())
			for _, msg := range errs {
				h.HandleErrorf(pos, "%s", msg)
			}
			stream.Fail()
			return nil
		}
		stream.Pass()
		return result
	}
	return nil
}

// evalSteps attempts every step of one alternative in order, binding
// captures into view. It returns false (leaving the stream mid-alternative,
// for the caller to Fail) the moment a required step does not match.
func (e *Engine) evalSteps(stream *token.Stream, steps []Step, ctx *compilectx.Context, h *reporter.Handler, view View) bool {
	for _, step := range steps {
		matched, node := e.evalStep(stream, step, ctx, h)
		if !matched {
			if step.Optional {
				continue
			}
			return false
		}
		if step.Key != "" {
			view[step.Key] = node
		}
	}
	return true
}

func (e *Engine) evalStep(stream *token.Stream, step Step, ctx *compilectx.Context, h *reporter.Handler) (bool, ast.Node) {
	switch step.Kind {
	case StepLiteral:
		t := stream.Peek()
		if t.Kind == token.Eof || t.Literal != step.Literal {
			return false, nil
		}
		stream.Next()
		if step.Flag != "" {
			ctx.SetFlag(step.Flag)
		}
		return true, &ast.OrphanTokens{Tokens: []string{t.Literal}}

	case StepTokenKind:
		t := stream.Peek()
		if t.Kind != step.TokenKind {
			return false, nil
		}
		if step.TokenKind == token.Operator && isPunctuator(t.Literal) {
			return false, nil
		}
		stream.Next()
		return true, &ast.OrphanTokens{Tokens: []string{t.Literal}}

	case StepRuleRef:
		node := e.evalRuleset(stream, e.rules[step.RuleName], ctx, h)
		if node == nil {
			return false, nil
		}
		return true, node

	case StepNestedGrab:
		t := stream.Peek()
		if t.Kind == token.Eof || t.Literal != step.OpenNest {
			return false, nil
		}
		stream.Next()
		depth := 1
		var collected []string
		for {
			p := stream.Peek()
			if p.Kind == token.Eof {
				// Unbalanced nest, surfaced as an ordinary step failure so
				// the enclosing alternative is abandoned like any other
				// mismatch.
				return false, nil
			}
			stream.Next()
			if p.Literal == step.OpenNest {
				depth++
			} else if p.Literal == step.CloseNest {
				depth--
				if depth == 0 {
					break
				}
			}
			collected = append(collected, p.Literal)
		}
		return true, &ast.OrphanTokens{Tokens: collected}

	default:
		return false, nil
	}
}

func posOf(t token.Token) reporter.Pos {
	return reporter.Pos{Filename: t.Source, Line: t.Row + 1, Col: t.Col + 1}
}
