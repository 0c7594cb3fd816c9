package strategy

import (
	"adapter-generator/channel"
	"adapter-generator/typedesc"
)

// WriteFlags carries per-call hints through synthesis.
type WriteFlags uint32

const (
	// FlagNone is the default flag set.
	FlagNone WriteFlags = 0
	// FlagReturnValue marks the value as a call result being written back.
	FlagReturnValue WriteFlags = 1 << iota
)

// Context is the per-call state threaded through a strategy invocation:
// the channel handle, the type currently being transferred, an optional
// current value reference, and the write flags. Contexts are passed by
// value; Retype and Rebind derive new contexts and never mutate shared
// state, so sibling sub-resolutions cannot interfere.
type Context struct {
	Ch    channel.Channel
	Type  *typedesc.Type
	Value any
	Flags WriteFlags
}

// NewContext returns a context over ch scoped to t.
func NewContext(ch channel.Channel, t *typedesc.Type) Context {
	return Context{Ch: ch, Type: t}
}

// Retype derives a context scoped to a different type, sharing the channel
// and flags. Used for element, key, value, and unboxed sub-resolution.
func (c Context) Retype(t *typedesc.Type) Context {
	c.Type = t
	return c
}

// Rebind derives a context with only the current value reference swapped.
func (c Context) Rebind(v any) Context {
	c.Value = v
	return c
}

// WithFlags derives a context with the given write flags.
func (c Context) WithFlags(f WriteFlags) Context {
	c.Flags = f
	return c
}
