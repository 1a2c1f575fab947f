// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compilectx holds the single mutable context threaded through
// every grammar action and through both emitter passes: the type registry,
// the operator tables, the active scope, an accumulated action-error list,
// and the namescope/current-module bookkeeping the emitter's name
// qualification algorithm needs.
package compilectx

import (
	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/scope"
	"github.com/Ctl-F/Tau/internal/types"
)

// Context is the shared, per-compilation mutable state. It implements
// ast.TypeContext so that any Typed AST node can resolve its own type
// without importing this package (ast accepts the interface; compilectx
// provides the implementation — see internal/ast/node.go).
type Context struct {
	Registry  *types.Registry
	BinaryOps []types.AllowedBinaryOperator
	UnaryOps  []types.AllowedUnaryOperator
	Flags     map[string]struct{}
	Errors    []string
	Scope     *scope.Scope
	Namescope []string
	Module    *ast.Module
}

// New builds a Context with a freshly seeded type registry, its derived
// operator tables, and an empty (but not yet opened) scope.
func New() *Context {
	reg := types.NewRegistry()
	return &Context{
		Registry:  reg,
		BinaryOps: types.BuildBinaryOperators(reg),
		UnaryOps:  types.BuildUnaryOperators(reg),
		Flags:     make(map[string]struct{}),
		Scope:     scope.New(),
	}
}

func (c *Context) Types() *types.Registry                         { return c.Registry }
func (c *Context) BinaryOperators() []types.AllowedBinaryOperator { return c.BinaryOps }
func (c *Context) UnaryOperators() []types.AllowedUnaryOperator   { return c.UnaryOps }

func (c *Context) LookupVariable(name string) (types.ID, bool) {
	return c.Scope.LookupVariable(name)
}

var _ ast.TypeContext = (*Context)(nil)

// SetFlag/HasFlag back the grammar engine's "literal match sets a named
// flag" step.
func (c *Context) SetFlag(name string) {
	c.Flags[name] = struct{}{}
}

func (c *Context) HasFlag(name string) bool {
	_, ok := c.Flags[name]
	return ok
}

func (c *Context) ClearFlags() {
	c.Flags = make(map[string]struct{})
}

// PushError records an action error. A non-empty error list after an
// alternative's action runs causes the grammar engine to treat the
// alternative as failed.
func (c *Context) PushError(msg string) {
	c.Errors = append(c.Errors, msg)
}

// TakeErrors returns and clears the accumulated action errors, used by the
// grammar engine between alternatives.
func (c *Context) TakeErrors() []string {
	errs := c.Errors
	c.Errors = nil
	return errs
}

// BeginNamescope/EndNamescope maintain a stack of name components the
// emitter pushes while descending into a module, used during name
// qualification to re-resolve unqualified references with the enclosing
// module's name prepended.
func (c *Context) BeginNamescope(name string) {
	c.Namescope = append(c.Namescope, name)
}

func (c *Context) EndNamescope() {
	c.Namescope = c.Namescope[:len(c.Namescope)-1]
}
