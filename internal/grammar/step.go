// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package grammar implements a declarative, table-driven, backtracking
// recognizer: a rule set is plain data (Step/Alt built with small
// constructor helpers), and the engine evaluates it against a token stream
// with mark/pass/fail speculation.
package grammar

import "github.com/Ctl-F/Tau/internal/token"

// StepKind distinguishes the four matching obligations a Step can carry.
type StepKind int

const (
	StepLiteral StepKind = iota
	StepTokenKind
	StepRuleRef
	StepNestedGrab
)

// Step is one token-level or rule-level matching obligation inside an Alt.
// Exactly the fields relevant to its Kind are meaningful; the rest are
// zero.
type Step struct {
	Kind      StepKind
	Literal   string
	TokenKind token.Kind
	RuleName  string
	Key       string // assignment_key: binds the match into the action's View
	Optional  bool
	Flag      string // set in the context's flag set on a literal match
	OpenNest  string
	CloseNest string
}

// Lit matches one token whose literal equals s.
func Lit(s string) Step {
	return Step{Kind: StepLiteral, Literal: s}
}

// LitKey is Lit with a capture key.
func LitKey(s, key string) Step {
	return Step{Kind: StepLiteral, Literal: s, Key: key}
}

// LitOpt is Lit, optional.
func LitOpt(s string) Step {
	return Step{Kind: StepLiteral, Literal: s, Optional: true}
}

// LitFlag is Lit that also sets flag in the context's flag set on match.
func LitFlag(s, flag string) Step {
	return Step{Kind: StepLiteral, Literal: s, Flag: flag}
}

// LitOptFlag combines LitOpt and LitFlag.
func LitOptFlag(s, flag string) Step {
	return Step{Kind: StepLiteral, Literal: s, Optional: true, Flag: flag}
}

// Tok matches one token of the given kind, binding it under key.
func Tok(kind token.Kind, key string) Step {
	return Step{Kind: StepTokenKind, TokenKind: kind, Key: key}
}

// TokOpt is Tok, optional.
func TokOpt(kind token.Kind, key string) Step {
	return Step{Kind: StepTokenKind, TokenKind: kind, Key: key, Optional: true}
}

// RuleRef recursively evaluates the named rule, binding its resulting node
// under key.
func RuleRef(name, key string) Step {
	return Step{Kind: StepRuleRef, RuleName: name, Key: key}
}

// RuleRefOpt is RuleRef, optional.
func RuleRefOpt(name, key string) Step {
	return Step{Kind: StepRuleRef, RuleName: name, Key: key, Optional: true}
}

// GrabNested consumes one `open` token, then collects every token up to the
// matching `close`, tracking balanced nesting depth. The delimiters
// themselves are consumed but not collected; the tokens between them are
// bound under key as an *ast.OrphanTokens.
func GrabNested(open, close, key string) Step {
	return Step{Kind: StepNestedGrab, OpenNest: open, CloseNest: close, Key: key}
}
