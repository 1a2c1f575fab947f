// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ctl-F/Tau/internal/types"
)

func newOpRegistry() (*types.Registry, []types.AllowedBinaryOperator, []types.AllowedUnaryOperator) {
	reg := types.NewRegistry()
	return reg, types.BuildBinaryOperators(reg), types.BuildUnaryOperators(reg)
}

func TestResolveBinaryConcreteSameType(t *testing.T) {
	reg, bin, _ := newOpRegistry()
	i32 := reg.IDFromName("i32")
	result := types.ResolveBinary(reg, bin, types.OpAdd, i32, i32)
	assert.Equal(t, i32, result)
}

func TestResolveBinaryPromotesUntypedIntLiteral(t *testing.T) {
	reg, bin, _ := newOpRegistry()
	i64 := reg.IDFromName("i64")
	result := types.ResolveBinary(reg, bin, types.OpAdd, i64, reg.IntLiteralType())
	assert.Equal(t, i64, result)
}

func TestResolveBinaryRejectsMixedConcreteTypes(t *testing.T) {
	reg, bin, _ := newOpRegistry()
	i32 := reg.IDFromName("i32")
	f32 := reg.IDFromName("f32")
	assert.Equal(t, types.Unknown, types.ResolveBinary(reg, bin, types.OpAdd, i32, f32))
}

func TestResolveBinaryRelationalYieldsBool(t *testing.T) {
	reg, bin, _ := newOpRegistry()
	i32 := reg.IDFromName("i32")
	result := types.ResolveBinary(reg, bin, types.OpLessThan, i32, i32)
	assert.Equal(t, reg.IDFromName("bool"), result)
}

func TestResolveBinaryBitwiseRejectsFloat(t *testing.T) {
	reg, bin, _ := newOpRegistry()
	f32 := reg.IDFromName("f32")
	assert.Equal(t, types.Unknown, types.ResolveBinary(reg, bin, types.OpBinaryAnd, f32, f32))
}

func TestResolveUnaryNegateUnsignedWidensToSigned(t *testing.T) {
	reg, _, un := newOpRegistry()
	u8 := reg.IDFromName("u8")
	i8 := reg.IDFromName("i8")
	assert.Equal(t, i8, types.ResolveUnary(reg, un, types.OpNegative, u8))
}

func TestResolveUnaryNegateSignedStaysSameType(t *testing.T) {
	reg, _, un := newOpRegistry()
	i32 := reg.IDFromName("i32")
	assert.Equal(t, i32, types.ResolveUnary(reg, un, types.OpNegative, i32))
}

func TestResolveUnaryNotYieldsBool(t *testing.T) {
	reg, _, un := newOpRegistry()
	i32 := reg.IDFromName("i32")
	assert.Equal(t, reg.IDFromName("bool"), types.ResolveUnary(reg, un, types.OpNot, i32))
}

func TestResolveUnaryCastBetweenNumericTypes(t *testing.T) {
	reg, _, un := newOpRegistry()
	i32 := reg.IDFromName("i32")
	i8 := reg.IDFromName("i8")
	// The cast node carries no target type, so resolution returns the first
	// cast entry for i32 in table order, which targets i8.
	assert.Equal(t, i8, types.ResolveUnary(reg, un, types.OpCast, i32))
}

func TestResolveUnaryUnknownOperatorOperandCombo(t *testing.T) {
	reg, _, un := newOpRegistry()
	boolID := reg.IDFromName("bool")
	// Bool has no negate entry in the table.
	assert.Equal(t, types.Unknown, types.ResolveUnary(reg, un, types.OpNegative, boolID))
}
