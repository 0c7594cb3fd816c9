package strategy

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/typedesc"
)

// Array writes the element count and then each element via the delegate
// strategy in iteration order; reads allocate a destination of the read
// count and assign in order, so round trips are order-stable.
type Array struct {
	Elem     Strategy
	ElemType *typedesc.Type
}

func (s Array) Read(ctx Context) (any, error) {
	n, err := ctx.Ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errors.Newf("strategy: negative array count %d", n)
	}

	sub := ctx.Retype(s.ElemType)
	out := make([]any, n)

	for i := range out {
		out[i], err = s.Elem.Read(sub)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}

	return out, nil
}

func (s Array) Write(ctx Context, v any) error {
	xs, ok := v.([]any)
	if !ok {
		return badValue("array", v)
	}

	if err := ctx.Ch.WriteInt32(int32(len(xs))); err != nil {
		return err
	}

	sub := ctx.Retype(s.ElemType)

	for i, x := range xs {
		if err := s.Elem.Write(sub.Rebind(x), x); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}

	return nil
}
