// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package types

// ResolveBinary scans the table in declaration order, returning the result
// type of the first entry
// whose operator matches and whose operand types are each either identical
// to lhsType/rhsType or reachable via untyped-literal promotion. Returns
// Unknown if nothing matches.
func ResolveBinary(reg *Registry, table []AllowedBinaryOperator, op Op, lhsType, rhsType ID) ID {
	for _, entry := range table {
		if entry.Op != op {
			continue
		}
		if matchesOperand(reg, entry.Left, lhsType) && matchesOperand(reg, entry.Right, rhsType) {
			return entry.Result
		}
	}
	return Unknown
}

// ResolveUnary is ResolveBinary's unary-table counterpart.
func ResolveUnary(reg *Registry, table []AllowedUnaryOperator, op Op, operandType ID) ID {
	for _, entry := range table {
		if entry.Op != op {
			continue
		}
		if matchesOperand(reg, entry.Operand, operandType) {
			return entry.Result
		}
	}
	return Unknown
}

// matchesOperand tests whether an operator-table entry's operand type
// admits an expression of actual type. Direct equality always matches;
// an untyped integer literal matches any concrete integer entry, and an
// untyped float literal matches any concrete float entry, letting the
// caller's expression take on that entry's concrete type.
func matchesOperand(reg *Registry, entryType, actualType ID) bool {
	if entryType == actualType {
		return true
	}
	if actualType == reg.intLiteral && reg.IsInteger(entryType) {
		return true
	}
	if actualType == reg.floatLiteral && reg.IsFloat(entryType) {
		return true
	}
	return false
}
