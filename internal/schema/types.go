// Package schema models declared classes - the ordered property lists the
// engine resolves - and loads them from YAML schema files together with the
// registry entries they imply.
package schema

import (
	"strings"

	"adapter-generator/typedesc"
)

// PropertySpec is one declared property: a name unique within its class and
// the declared type descriptor. Nullability is implied by the
// primitive-vs-boxed distinction of the descriptor.
type PropertySpec struct {
	Name string
	Type *typedesc.Type
}

// ClassSpec is one declared class: the owning type id and the ordered
// property list. Property order equals primary-constructor parameter order;
// serialization order equals construction order in both directions. Specs
// are built once per declared type and never mutated.
type ClassSpec struct {
	ID         typedesc.TypeID
	Properties []PropertySpec
}

// Property returns the named property, if declared.
func (c *ClassSpec) Property(name string) (PropertySpec, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return PropertySpec{}, false
}

// ParseTypeID splits a qualified name at its last dot into a TypeID.
func ParseTypeID(s string) typedesc.TypeID {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return typedesc.TypeID{Package: s[:i], Name: s[i+1:]}
	}

	return typedesc.TypeID{Name: s}
}
