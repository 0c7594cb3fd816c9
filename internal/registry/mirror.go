// Package registry provides the read-only type metadata surface the engine
// resolves against: class mirrors keyed by type id, the well-known platform
// type ids, and the subclass decision procedure over the mirrored hierarchy.
package registry

import "adapter-generator/typedesc"

// FieldMirror describes a declared field of a mirrored class.
type FieldMirror struct {
	Name string
	Type *typedesc.Type
}

// MethodMirror describes a declared method. Its signature descriptor is
// executable-shaped and must never enter a subclass test.
type MethodMirror struct {
	Name      string
	Signature *typedesc.Type
}

// ClassMirror is the metadata answer for one type id: supertype, declared
// interfaces, fields, and methods. Enum classes additionally carry their
// constants in declaration order.
type ClassMirror struct {
	ID            typedesc.TypeID
	Super         *typedesc.TypeID
	Interfaces    []typedesc.TypeID
	Fields        []FieldMirror
	Methods       []MethodMirror
	EnumConstants []string
}

// IsEnum returns true if the mirrored class derives from the enum base type.
func (m *ClassMirror) IsEnum() bool {
	return m.Super != nil && *m.Super == EnumBaseID
}

// Registry answers class metadata queries for type ids. Implementations are
// read-only; the engine and the subclass resolver only ever query it.
type Registry interface {
	ClassMirrorOf(id typedesc.TypeID) (*ClassMirror, bool)
}
