// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scope implements the lexical symbol table shared by grammar
// actions and the emitter.
//
// Frames are modeled as an index-addressable slice, not a linked list, and
// Begin/End must be paired on every control-flow exit. Each frame is an
// art.Tree rather than a plain map, the same name->value index
// types.Registry uses — qualified names sharing a prefix (a struct name and
// its field accessors) benefit from the shared-prefix storage.
package scope

import (
	art "github.com/kralicky/go-adaptive-radix-tree"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/types"
)

// ItemKind classifies what a name in scope refers to.
type ItemKind int

const (
	KindVariable ItemKind = iota
	KindModule
	KindStruct
	KindEnum
	KindFunction
	KindPrimitive
)

// ItemInfo is the value type stored for every name in scope.
type ItemInfo struct {
	Kind       ItemKind
	Type       types.ID
	IsPointer  bool
	IsOptional bool
	Path       *ast.Path
}

// Scope is a stack of frames mapping name -> ItemInfo. Lookup walks frames
// top-down (innermost first); insertion always targets the innermost frame.
// There is no shadow-check at insertion: a name re-declared in the same
// frame simply overwrites the earlier entry.
type Scope struct {
	frames []art.Tree[ItemInfo]
}

// New returns an empty Scope with no frames. Begin must be called before
// Add/AddVariable are used.
func New() *Scope {
	return &Scope{}
}

// Begin pushes a new, empty frame.
func (s *Scope) Begin() {
	s.frames = append(s.frames, art.New[ItemInfo]())
}

// End pops the innermost frame. Calling End with no open frame is a caller
// bug (every Begin must be paired), so it panics rather than silently
// under-running the stack.
func (s *Scope) End() {
	if len(s.frames) == 0 {
		panic("scope: End called with no open frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports how many frames are currently open.
func (s *Scope) Depth() int {
	return len(s.frames)
}

// Exists reports whether name is visible in any open frame.
func (s *Scope) Exists(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Get looks up name, searching from the innermost frame outward.
func (s *Scope) Get(name string) (ItemInfo, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].Search(art.Key(name)); ok {
			return v, true
		}
	}
	return ItemInfo{}, false
}

// Add inserts name into the innermost frame, overwriting any existing entry
// there.
func (s *Scope) Add(name string, info ItemInfo) {
	s.frames[len(s.frames)-1].Insert(art.Key(name), info)
}

// AddVariable is a convenience wrapper for the common case of adding a
// plain variable binding.
func (s *Scope) AddVariable(name string, t types.ID, isPointer, isOptional bool) {
	s.Add(name, ItemInfo{Kind: KindVariable, Type: t, IsPointer: isPointer, IsOptional: isOptional})
}

// LookupVariable implements ast.TypeContext's narrow view onto scope: the
// declared type of any named item currently visible, regardless of its
// ItemKind (a function's own binding carries its return type the same way a
// variable's binding carries its declared type).
func (s *Scope) LookupVariable(name string) (types.ID, bool) {
	info, ok := s.Get(name)
	if !ok {
		return types.Unknown, false
	}
	return info.Type, true
}
