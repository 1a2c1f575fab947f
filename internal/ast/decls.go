// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/Ctl-F/Tau/internal/types"

// Module is the AST root: a qualified module name and its body.
type Module struct {
	Name *PathSpec
	Body *Body
}

func (*Module) astNode() {}

// Body holds a module's three ordered declaration sequences.
type Body struct {
	Includes  []*Include
	Structs   []*StructDef
	Functions []*FunctionDef
}

func (*Body) astNode() {}

// Include is either a pass-through C include (`include _C "stdio.h";`) or a
// Tau module import by path. Module imports are not resolved yet, so Path
// is carried structurally but unused by the emitter.
type Include struct {
	IsCInclude bool
	Raw        string
	Path       *Path
}

func (*Include) astNode() {}

// StructDef is a struct declaration. TypeID is assigned when the struct is
// registered with the type registry, eagerly during parsing, so later
// declarations in the same module can already name the type.
type StructDef struct {
	Name       string
	Members    []*VariableDecl
	Template   *TemplateParams
	Visibility Visibility
	TypeID     types.ID
}

func (*StructDef) astNode() {}

// Param is one function parameter.
type Param struct {
	Name string
	Type types.ID
}

// ParameterList is a function's parameter list.
type ParameterList struct {
	Params []Param
}

func (*ParameterList) astNode() {}

// FunctionDef is a function declaration.
type FunctionDef struct {
	Name       string
	Params     *ParameterList
	Template   *TemplateParams
	ReturnType types.ID
	Body       *StatementBlock
	Visibility Visibility
}

func (*FunctionDef) astNode() {}

// VariableDecl is a struct member or a local variable declaration.
type VariableDecl struct {
	Name       string
	Type       types.ID
	Default    Node
	Visibility Visibility
}

func (*VariableDecl) astNode() {}
