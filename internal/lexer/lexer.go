// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lexer turns Tau source text into a token.Stream.
//
// Scanners are attempted in a fixed order (whitespace, comment, float,
// integer, string, char, operator, identifier); a synthetic trailing space
// is appended before scanning so a token ending at end-of-input always has
// a following byte to stop on.
package lexer

import (
	"fmt"

	"github.com/Ctl-F/Tau/internal/token"
)

type scanner struct {
	buf    string
	pos    int
	row    int
	col    int
	source string
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.buf)
}

// advance consumes n raw bytes starting at the current position, updating
// row/col as it crosses newlines.
func (s *scanner) advance(n int) {
	for i := 0; i < n; i++ {
		if s.buf[s.pos] == '\n' {
			s.row++
			s.col = 0
		} else {
			s.col++
		}
		s.pos++
	}
}

// Tokenize lexes source into a token stream. name identifies the source for
// error messages and for each token's Source field.
func Tokenize(source, name string) (*token.Stream, error) {
	s := &scanner{buf: source + " ", source: name}

	var tokens []token.Token

	for !s.eof() {
		if n := scanWhitespace(s.buf, s.pos); n > 0 {
			s.advance(n)
			continue
		}
		if n := scanLineComment(s.buf, s.pos); n > 0 {
			s.advance(n)
			continue
		}
		if n := scanBlockComment(s.buf, s.pos); n > 0 {
			s.advance(n)
			continue
		}

		startRow, startCol := s.row, s.col

		if lit, n, ok := scanFloat(s.buf, s.pos); ok {
			tokens = append(tokens, s.emit(token.Float, lit, startRow, startCol))
			s.advance(n)
			continue
		}
		if lit, n, ok := scanInteger(s.buf, s.pos); ok {
			tokens = append(tokens, s.emit(token.Integer, lit, startRow, startCol))
			s.advance(n)
			continue
		}
		if lit, n, ok, err := scanString(s.buf, s.pos); err != nil {
			return nil, s.errorAt(startRow, startCol)
		} else if ok {
			tokens = append(tokens, s.emit(token.String, lit, startRow, startCol))
			s.advance(n)
			continue
		}
		if lit, n, ok := scanChar(s.buf, s.pos); ok {
			tokens = append(tokens, s.emit(token.Char, lit, startRow, startCol))
			s.advance(n)
			continue
		}
		if matchAsKeyword(s.buf, s.pos) {
			tokens = append(tokens, s.emit(token.Operator, "as", startRow, startCol))
			s.advance(2)
			continue
		}
		if lit, ok := matchOperator(s.buf, s.pos); ok {
			tokens = append(tokens, s.emit(token.Operator, lit, startRow, startCol))
			s.advance(len(lit))
			continue
		}
		if lit, n, ok := scanIdentifier(s.buf, s.pos); ok {
			tokens = append(tokens, s.emit(token.Identifier, lit, startRow, startCol))
			s.advance(n)
			continue
		}

		return nil, s.errorAt(startRow, startCol)
	}

	eof := token.EofAt(name, s.row, s.col)
	return token.NewStream(tokens, eof), nil
}

func (s *scanner) emit(kind token.Kind, literal string, row, col int) token.Token {
	return token.Token{Literal: literal, Kind: kind, Row: row, Col: col, Source: s.source}
}

func (s *scanner) errorAt(row, col int) error {
	return fmt.Errorf("Unexpected Input in %s on line %d, col %d", s.source, row+1, col+1)
}

func scanWhitespace(buf string, pos int) int {
	start := pos
	for pos < len(buf) && isWhitespace(buf[pos]) {
		pos++
	}
	return pos - start
}

func scanLineComment(buf string, pos int) int {
	if pos+2 > len(buf) || buf[pos:pos+2] != "//" {
		return 0
	}
	start := pos
	pos += 2
	for pos < len(buf) && buf[pos] != '\n' {
		pos++
	}
	return pos - start
}

func scanBlockComment(buf string, pos int) int {
	if pos+2 > len(buf) || buf[pos:pos+2] != "/*" {
		return 0
	}
	start := pos
	pos += 2
	depth := 1
	for pos < len(buf) && depth > 0 {
		switch {
		case pos+2 <= len(buf) && buf[pos:pos+2] == "/*":
			depth++
			pos += 2
		case pos+2 <= len(buf) && buf[pos:pos+2] == "*/":
			depth--
			pos += 2
		default:
			pos++
		}
	}
	return pos - start
}

// scanFloat implements the "single decimal point" rule: a run of digits with
// no '.' at all is left for scanInteger (reclassification). A lone '.' with
// no digit on either side is left for the operator scanner (the Dot
// operator). This is what makes "1..2" lex as Float("1."), Float(".2").
func scanFloat(buf string, pos int) (string, int, bool) {
	start := pos
	p := pos
	sawDigitBefore := false
	for p < len(buf) && isDigit(buf[p]) {
		p++
		sawDigitBefore = true
	}
	if p >= len(buf) || buf[p] != '.' {
		return "", 0, false
	}
	p++
	sawDigitAfter := false
	for p < len(buf) && isDigit(buf[p]) {
		p++
		sawDigitAfter = true
	}
	if !sawDigitBefore && !sawDigitAfter {
		return "", 0, false
	}
	return buf[start:p], p - start, true
}

func scanInteger(buf string, pos int) (string, int, bool) {
	start := pos
	p := pos
	for p < len(buf) && isDigit(buf[p]) {
		p++
	}
	if p == start {
		return "", 0, false
	}
	return buf[start:p], p - start, true
}

// scanString returns the literal with its surrounding quotes still attached
// (raw source slice); unquoting and unescaping is the grammar action's job,
// not the lexer's.
func scanString(buf string, pos int) (string, int, bool, error) {
	if pos >= len(buf) || buf[pos] != '"' {
		return "", 0, false, nil
	}
	p := pos + 1
	for {
		if p >= len(buf) {
			return "", 0, false, fmt.Errorf("eof inside string")
		}
		if buf[p] == '\\' {
			p += 2
			continue
		}
		if buf[p] == '"' {
			p++
			break
		}
		p++
	}
	return buf[pos:p], p - pos, true, nil
}

// scanChar accepts only 'x' (length 3) or '\xx' (length 5, two hex digits).
func scanChar(buf string, pos int) (string, int, bool) {
	if pos >= len(buf) || buf[pos] != '\'' {
		return "", 0, false
	}
	if pos+3 <= len(buf) && buf[pos+1] != '\\' && buf[pos+2] == '\'' {
		return buf[pos : pos+3], 3, true
	}
	if pos+5 <= len(buf) && buf[pos+1] == '\\' &&
		isHexDigit(buf[pos+2]) && isHexDigit(buf[pos+3]) && buf[pos+4] == '\'' {
		return buf[pos : pos+5], 5, true
	}
	return "", 0, false
}

func scanIdentifier(buf string, pos int) (string, int, bool) {
	if pos >= len(buf) || !isAlpha(buf[pos]) {
		return "", 0, false
	}
	start := pos
	p := pos + 1
	for p < len(buf) && isAlphaNum(buf[p]) {
		p++
	}
	return buf[start:p], p - start, true
}
