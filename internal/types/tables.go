// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package types

// AllowedBinaryOperator is one admissible (op, left, right) -> result
// combination. Overload is reserved for operator-overload rewriting, which
// is not wired up yet; nothing populates it.
type AllowedBinaryOperator struct {
	Op       Op
	Left     ID
	Right    ID
	Result   ID
	Overload interface{}
}

// AllowedUnaryOperator is one admissible (op, operand) -> result
// combination.
type AllowedUnaryOperator struct {
	Op       Op
	Operand  ID
	Result   ID
	Overload interface{}
}

// numericTypeNames lists every concrete numeric type, in the order literal
// promotion tries them: i8..i64 before u8..u64 before f32/f64.
var numericTypeNames = []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "f32", "f64"}

var integerTypeNames = []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"}

var signedIntegerTypeNames = []string{"i8", "i16", "i32", "i64"}

var unsignedToSignedWiden = map[string]string{
	"u8": "i8", "u16": "i16", "u32": "i32", "u64": "i64",
}

// BuildBinaryOperators constructs the admissible binary-operator table
// against the types already registered in reg. Each operator family is
// generated as a loop over the type list rather than written out entry by
// entry.
func BuildBinaryOperators(reg *Registry) []AllowedBinaryOperator {
	var ops []AllowedBinaryOperator

	sameTypeOps := []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpAssign}
	for _, op := range sameTypeOps {
		for _, name := range numericTypeNames {
			id := reg.IDFromName(name)
			ops = append(ops, AllowedBinaryOperator{Op: op, Left: id, Right: id, Result: id})
		}
	}

	boolTypeID := reg.IDFromName("bool")
	relationalOps := []Op{OpEquals, OpNotEquals, OpLessThan, OpGreaterThan, OpLessEquals, OpGreaterEquals}
	for _, op := range relationalOps {
		for _, name := range numericTypeNames {
			id := reg.IDFromName(name)
			ops = append(ops, AllowedBinaryOperator{Op: op, Left: id, Right: id, Result: boolTypeID})
		}
	}

	bitwiseOps := []Op{OpBinaryAnd, OpBinaryOr, OpBinaryXor, OpLeftShift, OpRightShift}
	for _, op := range bitwiseOps {
		for _, name := range integerTypeNames {
			id := reg.IDFromName(name)
			ops = append(ops, AllowedBinaryOperator{Op: op, Left: id, Right: id, Result: id})
		}
	}

	compoundAssignOps := []Op{
		OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign,
		OpAndAssign, OpOrAssign, OpXorAssign, OpLeftShiftAssign, OpRightShiftAssign,
	}
	for _, op := range compoundAssignOps {
		for _, name := range numericTypeNames {
			id := reg.IDFromName(name)
			ops = append(ops, AllowedBinaryOperator{Op: op, Left: id, Right: id, Result: id})
		}
	}

	return ops
}

// BuildUnaryOperators constructs the admissible unary-operator table against
// the types already registered in reg.
func BuildUnaryOperators(reg *Registry) []AllowedUnaryOperator {
	var ops []AllowedUnaryOperator

	for _, name := range signedIntegerTypeNames {
		id := reg.IDFromName(name)
		ops = append(ops, AllowedUnaryOperator{Op: OpNegative, Operand: id, Result: id})
	}
	for _, name := range []string{"u8", "u16", "u32", "u64"} {
		id := reg.IDFromName(name)
		result := reg.IDFromName(unsignedToSignedWiden[name])
		ops = append(ops, AllowedUnaryOperator{Op: OpNegative, Operand: id, Result: result})
	}
	for _, name := range []string{"f32", "f64"} {
		id := reg.IDFromName(name)
		ops = append(ops, AllowedUnaryOperator{Op: OpNegative, Operand: id, Result: id})
	}

	boolTypeID := reg.IDFromName("bool")
	for _, name := range append([]string{"bool"}, numericTypeNames...) {
		id := reg.IDFromName(name)
		ops = append(ops, AllowedUnaryOperator{Op: OpNot, Operand: id, Result: boolTypeID})
	}

	for _, name := range append([]string{"bool"}, integerTypeNames...) {
		id := reg.IDFromName(name)
		ops = append(ops, AllowedUnaryOperator{Op: OpBinaryNot, Operand: id, Result: id})
	}

	incDecOps := []Op{OpPreInc, OpPostInc, OpPreDec, OpPostDec}
	for _, op := range incDecOps {
		for _, name := range signedIntegerTypeNames {
			id := reg.IDFromName(name)
			ops = append(ops, AllowedUnaryOperator{Op: op, Operand: id, Result: id})
		}
		for _, name := range []string{"u8", "u16", "u32", "u64"} {
			id := reg.IDFromName(name)
			result := reg.IDFromName(unsignedToSignedWiden[name])
			ops = append(ops, AllowedUnaryOperator{Op: op, Operand: id, Result: result})
		}
	}

	castTargets := append(append([]string{}, numericTypeNames...), "bool", "char")
	for _, from := range castTargets {
		fromID := reg.IDFromName(from)
		for _, to := range castTargets {
			if to == from {
				continue
			}
			toID := reg.IDFromName(to)
			ops = append(ops, AllowedUnaryOperator{Op: OpCast, Operand: fromID, Result: toID})
		}
	}

	return ops
}
