// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package lexer

// multiCharOperators is tried longest-first so that, e.g., "<<=" is not cut
// short into "<<" followed by a stray "=".
var multiCharOperators = [][]string{
	{"<<=", ">>="},
	{
		"++", "--", "==", "!=", "<=", ">=", "<<", ">>",
		"&&", "||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	},
}

func matchOperator(buf string, pos int) (string, bool) {
	for _, group := range multiCharOperators {
		for _, op := range group {
			n := len(op)
			if pos+n <= len(buf) && buf[pos:pos+n] == op {
				return op, true
			}
		}
	}
	if pos < len(buf) && isOperatorChar(buf[pos]) {
		return buf[pos : pos+1], true
	}
	return "", false
}

// matchAsKeyword recognizes the "as" cast keyword as a whole word, so that
// "asset" is still lexed as a single identifier.
func matchAsKeyword(buf string, pos int) bool {
	if pos+2 > len(buf) || buf[pos:pos+2] != "as" {
		return false
	}
	if pos+2 < len(buf) && isAlphaNum(buf[pos+2]) {
		return false
	}
	return true
}
