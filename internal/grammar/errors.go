// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"

	"github.com/Ctl-F/Tau/reporter"
)

// Category classifies why a rule failed to match.
type Category int

const (
	CategoryEmptyDecl Category = iota
	CategoryIncompleteDecl
	CategoryExtraTokens
	CategoryIncorrectToken
	CategoryMissingToken
	CategoryDeclNotAllowed
)

func (c Category) String() string {
	switch c {
	case CategoryEmptyDecl:
		return "empty declaration"
	case CategoryIncompleteDecl:
		return "incomplete declaration"
	case CategoryExtraTokens:
		return "extra tokens"
	case CategoryIncorrectToken:
		return "incorrect token"
	case CategoryMissingToken:
		return "missing token"
	case CategoryDeclNotAllowed:
		return "declaration not allowed here"
	default:
		return "parse error"
	}
}

// ParseError is the error Engine.Parse returns: either the requested rule
// produced no node (no alternative matched, or an action reported an error
// and failed the rule), or the rule matched but left tokens unconsumed
// (CategoryExtraTokens). Action error messages themselves go to the Handler.
type ParseError struct {
	Category Category
	Pos      reporter.Pos
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Category, e.Message)
}

func (e *ParseError) GetPosition() reporter.Pos { return e.Pos }
func (e *ParseError) Unwrap() error             { return nil }

var _ reporter.ErrorWithPos = (*ParseError)(nil)
