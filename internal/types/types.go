// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

// Package types implements the type registry: name-to-id assignment, struct
// field layout, and the operator admissibility tables used to resolve
// expression types.
//
// Struct layout is a padding-free running sum: each field's offset is the
// sum of the sizes of every field before it, and the struct's size is the
// final sum.
package types

import (
	"fmt"

	art "github.com/kralicky/go-adaptive-radix-tree"
)

// ID is an opaque handle into the registry. The zero value denotes
// unknown/unresolved.
type ID uint64

// Unknown is the reserved id meaning "unresolved".
const Unknown ID = 0

// TemplateBase is reserved for future generic instantiations (templates are
// out of scope for this core; the mask is kept so a future extension has a
// place to start from without colliding with concrete ids).
const TemplateBase ID = 0x1000000000000000

// FieldDef is one field of a user-defined (struct) type.
type FieldDef struct {
	Name   string
	Offset uint64
	Type   ID
}

// numericClass tags a primitive's role in operator resolution: whether it's
// an integer or float type, for the purposes of untyped-literal promotion.
type numericClass int

const (
	classNone numericClass = iota
	classInteger
	classFloat
)

// Descriptor is everything the registry knows about one type.
type Descriptor struct {
	ID            ID
	TrueName      string
	Size          uint64
	IsUserDefined bool
	Fields        []FieldDef
	class         numericClass
}

// Registry assigns fresh ids to types and answers layout/name queries.
// Not safe for concurrent use; it is per-compilation state with exactly one
// writer at a time.
type Registry struct {
	byID    map[ID]*Descriptor
	byName  art.Tree[ID]
	counter ID

	// Placeholder ids for the two untyped-literal types; promoted to a
	// concrete numeric type during operator resolution.
	intLiteral   ID
	floatLiteral ID
}

// primitiveSizes lists the pre-seeded primitives in registration order.
var primitiveSizes = []struct {
	name string
	size uint64
}{
	{"void", 0},
	{"u8", 1}, {"u16", 2}, {"u32", 4}, {"u64", 8},
	{"i8", 1}, {"i16", 2}, {"i32", 4}, {"i64", 8},
	{"f32", 4}, {"f64", 8},
	{"char", 1},
	{"bool", 1},
}

// NewRegistry builds a registry pre-seeded with every primitive type plus
// the two untyped-literal placeholder types.
func NewRegistry() *Registry {
	r := &Registry{
		byID:   make(map[ID]*Descriptor),
		byName: art.New[ID](),
	}
	for _, p := range primitiveSizes {
		r.definePrimitive(p.name, p.size)
	}
	r.intLiteral = r.definePrimitive("long long", 8)
	r.byID[r.intLiteral].class = classInteger
	r.floatLiteral = r.definePrimitive("double", 8)
	r.byID[r.floatLiteral].class = classFloat
	return r
}

func (r *Registry) definePrimitive(name string, size uint64) ID {
	r.counter++
	d := &Descriptor{ID: r.counter, TrueName: name, Size: size}
	for _, n := range integerTypeNames {
		if n == name {
			d.class = classInteger
		}
	}
	for _, n := range []string{"f32", "f64"} {
		if n == name {
			d.class = classFloat
		}
	}
	r.byID[d.ID] = d
	r.byName.Insert(art.Key(name), d.ID)
	return d.ID
}

// IsInteger reports whether id names one of the concrete integer types.
func (r *Registry) IsInteger(id ID) bool {
	d, ok := r.byID[id]
	return ok && d.class == classInteger
}

// IsFloat reports whether id names one of the concrete float types.
func (r *Registry) IsFloat(id ID) bool {
	d, ok := r.byID[id]
	return ok && d.class == classFloat
}

// IntLiteralType returns the placeholder type id for untyped integer
// literals.
func (r *Registry) IntLiteralType() ID { return r.intLiteral }

// FloatLiteralType returns the placeholder type id for untyped float
// literals.
func (r *Registry) FloatLiteralType() ID { return r.floatLiteral }

// IsUntypedLiteral reports whether id is one of the two literal placeholder
// types.
func (r *Registry) IsUntypedLiteral(id ID) bool {
	return id == r.intLiteral || id == r.floatLiteral
}

// IDFromName looks up a previously defined type by its true name. Returns
// Unknown if no such type exists.
func (r *Registry) IDFromName(name string) ID {
	if v, found := r.byName.Search(art.Key(name)); found {
		return v
	}
	return Unknown
}

// SizeOf returns the byte size of id, or 0 if id is unknown.
func (r *Registry) SizeOf(id ID) uint64 {
	d, ok := r.byID[id]
	if !ok {
		return 0
	}
	return d.Size
}

// NameOf returns the C-legible name of id, prefixing user-defined types with
// "struct " per the C layout requirement. Returns "Undefined" if id is
// unknown.
func (r *Registry) NameOf(id ID) string {
	d, ok := r.byID[id]
	if !ok {
		return "Undefined"
	}
	if d.IsUserDefined {
		return "struct " + d.TrueName
	}
	return d.TrueName
}

// FieldsOf returns the fields of a struct type, or nil if id is not a
// struct.
func (r *Registry) FieldsOf(id ID) []FieldDef {
	d, ok := r.byID[id]
	if !ok {
		return nil
	}
	return d.Fields
}

// OffsetOf returns the byte offset of field within struct type id, or 0 if
// not found.
func (r *Registry) OffsetOf(id ID, field string) uint64 {
	d, ok := r.byID[id]
	if !ok {
		return 0
	}
	for _, f := range d.Fields {
		if f.Name == field {
			return f.Offset
		}
	}
	return 0
}

// StructFieldType returns the type id of field within struct type id, or
// Unknown if not found.
func (r *Registry) StructFieldType(id ID, field string) ID {
	d, ok := r.byID[id]
	if !ok {
		return Unknown
	}
	for _, f := range d.Fields {
		if f.Name == field {
			return f.Type
		}
	}
	return Unknown
}

// IsStruct reports whether id is a user-defined (struct) type.
func (r *Registry) IsStruct(id ID) bool {
	d, ok := r.byID[id]
	return ok && d.IsUserDefined
}

// DefineType registers a new opaque user-defined type of the given size,
// with no fields. Fails if the name is already taken; DefineStruct likewise
// refuses a name already registered here, so a type defined this way cannot
// later be completed as a struct.
func (r *Registry) DefineType(name string, size uint64) (ID, error) {
	if existing := r.IDFromName(name); existing != Unknown {
		return Unknown, fmt.Errorf("Type %s is already defined", name)
	}
	r.counter++
	d := &Descriptor{ID: r.counter, TrueName: name, Size: size, IsUserDefined: true}
	r.byID[d.ID] = d
	r.byName.Insert(art.Key(name), d.ID)
	return d.ID, nil
}

// DefineStruct registers a new struct type and lays out its fields as a
// running-sum offset accumulation: each field's offset is the sum of every
// preceding field's size, and the type's total size is the sum of all
// fields, with no padding.
func (r *Registry) DefineStruct(name string, fields []FieldDef) (ID, error) {
	if existing := r.IDFromName(name); existing != Unknown {
		return Unknown, fmt.Errorf("Type %s is already defined", name)
	}

	laidOut := make([]FieldDef, len(fields))
	var offset uint64
	for i, f := range fields {
		laidOut[i] = FieldDef{Name: f.Name, Type: f.Type, Offset: offset}
		offset += r.SizeOf(f.Type)
	}

	r.counter++
	d := &Descriptor{
		ID:            r.counter,
		TrueName:      name,
		Size:          offset,
		IsUserDefined: true,
		Fields:        laidOut,
	}
	r.byID[d.ID] = d
	r.byName.Insert(art.Key(name), d.ID)
	return d.ID, nil
}
