// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package reporter carries source-position-aware errors and warnings up out
// of the lexer, grammar engine, and emitter without any of them needing to
// know what the caller ultimately does with them (print to stderr, collect
// into a slice, abort the compile).
package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidSource is returned by a compilation step when one or more errors
// were reported through a Handler that chose to keep going rather than abort
// immediately.
var ErrInvalidSource = errors.New("compile failed: invalid source")

// Pos is a 1-based source position, suitable for direct inclusion in
// user-facing messages.
type Pos struct {
	Filename string
	Line     int
	Col      int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// ErrorWithPos is an error tied to the source position that produced it.
type ErrorWithPos interface {
	error
	GetPosition() Pos
	Unwrap() error
}

// Error wraps err with pos, formatting as "<pos>: <err>".
func Error(pos Pos, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like Error but builds the underlying error via fmt.Errorf.
func Errorf(pos Pos, format string, args ...interface{}) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        Pos
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() Pos {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}

// AlreadyDefinedError reports a duplicate definition, citing where the name
// was first bound.
type AlreadyDefinedError struct {
	Name               string
	PreviousDefinition Pos
}

func AlreadyDefined(name string, previousDefinition Pos) AlreadyDefinedError {
	return AlreadyDefinedError{Name: name, PreviousDefinition: previousDefinition}
}

func (e AlreadyDefinedError) Error() string {
	return fmt.Sprintf("%s is already defined, previous definition at %s", e.Name, e.PreviousDefinition)
}
