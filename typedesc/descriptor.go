// Package typedesc models declared property types as a closed set of
// recursive descriptor variants. Descriptors are immutable values built once
// from a declaration; their nesting depth is bounded by that declaration, so
// walks over them always terminate.
package typedesc

import "strings"

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	Package string // e.g., "demo"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}

// IsZero returns true if the TypeID carries no identity.
func (t TypeID) IsZero() bool {
	return t.Package == "" && t.Name == ""
}

// Type is one variant of the descriptor set. Which fields are meaningful
// depends on Kind: ID for raw and parameterized types, Elem for arrays,
// Args for parameterized types. The zero value is KindUnknown.
type Type struct {
	Kind Kind
	ID   TypeID
	Elem *Type
	Args []*Type
}

// RawOf returns a raw (non-generic) type descriptor.
func RawOf(id TypeID) *Type {
	return &Type{Kind: KindRaw, ID: id}
}

// ArrayOf returns an array descriptor over the given element descriptor.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

// ParameterizedOf returns a parameterized descriptor with ordered arguments.
func ParameterizedOf(id TypeID, args ...*Type) *Type {
	return &Type{Kind: KindParameterized, ID: id, Args: args}
}

// TypeVarOf returns a type-variable descriptor named after the declaration.
func TypeVarOf(name string) *Type {
	return &Type{Kind: KindTypeVariable, ID: TypeID{Name: name}}
}

// InnerOf returns a descriptor for a member type nested in an enclosing type.
func InnerOf(id TypeID) *Type {
	return &Type{Kind: KindInner, ID: id}
}

// UpperBoundedOf returns a wildcard descriptor bounded from above.
func UpperBoundedOf(bound *Type) *Type {
	return &Type{Kind: KindUpperBounded, Elem: bound}
}

// LowerBoundedOf returns a wildcard descriptor bounded from below.
func LowerBoundedOf(bound *Type) *Type {
	return &Type{Kind: KindLowerBounded, Elem: bound}
}

// ExecutableOf returns a method-shaped descriptor for a method mirror.
func ExecutableOf(id TypeID) *Type {
	return &Type{Kind: KindExecutable, ID: id}
}

// IsRaw returns true for a type reference with no generic type arguments.
func (t *Type) IsRaw() bool {
	return t != nil && t.Kind == KindRaw
}

// Equal reports structural equality of two descriptors.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}

	if t.Kind != o.Kind || t.ID != o.ID {
		return false
	}

	if !t.Elem.Equal(o.Elem) {
		return false
	}

	if len(t.Args) != len(o.Args) {
		return false
	}

	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// String returns a source-like rendering of the descriptor.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindRaw, KindInner:
		return t.ID.String()
	case KindArray:
		return t.Elem.String() + "[]"
	case KindParameterized:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}

		return t.ID.String() + "<" + strings.Join(args, ",") + ">"
	case KindTypeVariable:
		return t.ID.Name
	case KindUpperBounded:
		return "? extends " + t.Elem.String()
	case KindLowerBounded:
		return "? super " + t.Elem.String()
	case KindExecutable:
		return t.ID.String() + "()"
	default:
		return "unknown"
	}
}
