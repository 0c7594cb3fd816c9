package registry

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/typedesc"
)

// mapRegistry is the immutable in-memory Registry produced by Builder.
type mapRegistry struct {
	mirrors map[typedesc.TypeID]*ClassMirror
}

// Compile-time assertion that mapRegistry implements Registry.
var _ Registry = (*mapRegistry)(nil)

func (r *mapRegistry) ClassMirrorOf(id typedesc.TypeID) (*ClassMirror, bool) {
	m, ok := r.mirrors[id]
	return m, ok
}

// Builder accumulates class mirrors and produces an immutable Registry.
// It is the write-side counterpart of the read-only query interface; after
// Build the snapshot never changes.
type Builder struct {
	mirrors map[typedesc.TypeID]*ClassMirror
	err     error
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{mirrors: map[typedesc.TypeID]*ClassMirror{}}
}

// AddClass registers a class mirror. Duplicate ids are recorded as a build
// error rather than silently overwritten.
func (b *Builder) AddClass(m *ClassMirror) *Builder {
	if _, dup := b.mirrors[m.ID]; dup && b.err == nil {
		b.err = errors.Newf("registry: duplicate class mirror for %s", m.ID)
	}

	b.mirrors[m.ID] = m

	return b
}

// AddEnum registers an enum mirror with its constants in declaration order.
func (b *Builder) AddEnum(id typedesc.TypeID, constants ...string) *Builder {
	super := EnumBaseID

	return b.AddClass(&ClassMirror{
		ID:            id,
		Super:         &super,
		EnumConstants: constants,
	})
}

// Build returns the immutable registry snapshot.
func (b *Builder) Build() (Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	mirrors := make(map[typedesc.TypeID]*ClassMirror, len(b.mirrors))
	for id, m := range b.mirrors {
		mirrors[id] = m
	}

	return &mapRegistry{mirrors: mirrors}, nil
}
