package strategy

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/typedesc"
)

// boxed delegates to the primitive counterpart after unboxing on write and
// before boxing on read. The delegate runs under a context retyped to the
// unboxed descriptor with the value reference rebound to the primitive
// holder.
type boxed[T any] struct {
	prim    Strategy
	unboxed *typedesc.Type
}

// Boxed returns the not-null part of a boxed strategy over *T; callers wrap
// it in Optional to get the presence-flag framing.
func Boxed[T any](prim Strategy, unboxed *typedesc.Type) Strategy {
	return boxed[T]{prim: prim, unboxed: unboxed}
}

func (s boxed[T]) Read(ctx Context) (any, error) {
	v, err := s.prim.Read(ctx.Retype(s.unboxed))
	if err != nil {
		return nil, err
	}

	t, ok := v.(T)
	if !ok {
		return nil, errors.Newf("strategy: primitive delegate returned %T", v)
	}

	return &t, nil
}

func (s boxed[T]) Write(ctx Context, v any) error {
	p, ok := v.(*T)
	if !ok {
		var want *T
		return errors.Newf("strategy: expected %T value, got %T", want, v)
	}

	sub := ctx.Retype(s.unboxed).Rebind(*p)

	return s.prim.Write(sub, *p)
}
