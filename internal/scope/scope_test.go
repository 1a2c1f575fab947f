// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ctl-F/Tau/internal/scope"
	"github.com/Ctl-F/Tau/internal/types"
)

func TestScopeLookupWalksInnermostFirst(t *testing.T) {
	s := scope.New()
	s.Begin()
	s.AddVariable("x", types.ID(1), false, false)
	s.Begin()
	s.AddVariable("x", types.ID(2), false, false)

	info, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, types.ID(2), info.Type)

	s.End()
	info, ok = s.Get("x")
	require.True(t, ok)
	assert.Equal(t, types.ID(1), info.Type)
}

func TestScopeEndRemovesInnerBindings(t *testing.T) {
	s := scope.New()
	s.Begin()
	s.AddVariable("outer", types.ID(1), false, false)
	s.Begin()
	s.AddVariable("inner", types.ID(2), false, false)
	s.End()

	assert.True(t, s.Exists("outer"))
	assert.False(t, s.Exists("inner"))
}

func TestScopeLookupVariableUnknownName(t *testing.T) {
	s := scope.New()
	s.Begin()
	_, ok := s.LookupVariable("missing")
	assert.False(t, ok)
}

func TestScopeEndWithNoOpenFramePanics(t *testing.T) {
	s := scope.New()
	assert.Panics(t, func() { s.End() })
}
