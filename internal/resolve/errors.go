package resolve

import (
	"fmt"

	"adapter-generator/typedesc"
)

// UnsupportedPropertyTypeError reports that every fallback branch was tried
// and none matched. It is fatal for the class under resolution and is never
// retried: the declaration itself is defective.
type UnsupportedPropertyTypeError struct {
	Class    typedesc.TypeID
	Property string
	Type     *typedesc.Type
}

func (e *UnsupportedPropertyTypeError) Error() string {
	return fmt.Sprintf("resolve: unsupported property type %s for %s.%s",
		e.Type, e.Class, e.Property)
}

// InvalidDeclarationError reports a branch whose own shape check failed:
// wrong generic-argument count, a non-parameterized container, or a non-raw
// sparse-map argument. Same fatal, no-retry policy as unsupported types.
type InvalidDeclarationError struct {
	Class    typedesc.TypeID
	Property string
	Reason   string
}

func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf("resolve: invalid declaration of %s.%s: %s",
		e.Class, e.Property, e.Reason)
}
