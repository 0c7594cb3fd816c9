// Package strategy contains the read/write procedure pairs the resolution
// engine assembles per property, and the value context they are driven
// through. Strategies are stateless or hold only immutable sub-strategies,
// so one instance is safely shared across classes and synthesis calls.
package strategy

import "reflect"

// Strategy is a read+write procedure pair responsible for one type shape.
type Strategy interface {
	// Read reconstructs one value from the context's channel.
	Read(ctx Context) (any, error)
	// Write transfers v to the context's channel.
	Write(ctx Context, v any) error
}

// isNil reports whether v is absent: either untyped nil or a nil pointer,
// map, or slice boxed in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
