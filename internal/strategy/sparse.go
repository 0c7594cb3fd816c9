package strategy

import (
	"adapter-generator/internal/rt"
	"adapter-generator/typedesc"
)

// SparseMap delegates wholly to the platform read/write for the
// integer-keyed sparse container, passing only the element type's identity.
// It never iterates entries itself.
type SparseMap struct {
	Elem   typedesc.TypeID
	Codecs *rt.Codecs
}

func (s SparseMap) Read(ctx Context) (any, error) {
	return rt.ReadSparse(ctx.Ch, s.Codecs, s.Elem)
}

func (s SparseMap) Write(ctx Context, v any) error {
	a, ok := v.(*rt.SparseArray)
	if !ok {
		return badValue("sparse array", v)
	}

	return rt.WriteSparse(ctx.Ch, s.Codecs, s.Elem, a)
}

// SparseBool is the dedicated strategy for the boolean-keyed sparse
// container.
type SparseBool struct{}

func (SparseBool) Read(ctx Context) (any, error) {
	return rt.ReadSparseBool(ctx.Ch)
}

func (SparseBool) Write(ctx Context, v any) error {
	a, ok := v.(*rt.SparseBoolArray)
	if !ok {
		return badValue("sparse bool array", v)
	}

	return rt.WriteSparseBool(ctx.Ch, a)
}
