// Package rt holds the dynamic value model that synthesized codecs operate
// on: class instances, enum constants, and the platform container shapes,
// plus the per-generator codec table the native protocol dispatches through.
package rt

import "adapter-generator/typedesc"

// Object is an instance of a registry-described class. Values are stored in
// property declaration order, which equals primary-constructor parameter
// order; codecs rely on that symmetry in both directions.
type Object struct {
	Class  typedesc.TypeID
	Values []any
}

// NewObject constructs an instance with values in declaration order.
func NewObject(class typedesc.TypeID, values ...any) *Object {
	return &Object{Class: class, Values: values}
}

// EnumValue is one constant of a mirrored enum type.
type EnumValue struct {
	Type    typedesc.TypeID
	Ordinal int32
	Name    string
}

// Opaque is the undecoded payload of an opaque-serializable value as read
// off the channel.
type Opaque []byte
