package strategy

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/internal/rt"
	"adapter-generator/typedesc"
)

// CollectionKind selects the fixed concrete implementation a collection
// strategy reconstructs into.
type CollectionKind int

const (
	// CollectionList reconstructs into a resizable array.
	CollectionList CollectionKind = iota
	// CollectionSet reconstructs into an insertion-ordered set.
	CollectionSet
)

// String returns a human-readable kind name.
func (k CollectionKind) String() string {
	switch k {
	case CollectionList:
		return "list"
	case CollectionSet:
		return "set"
	default:
		return "unknown"
	}
}

// Collection transfers a list or set: element count, then each element via
// the delegate strategy in iteration order. Reconstruction always uses the
// kind's fixed implementation regardless of what the value was originally
// built with; order and values survive the round trip, the concrete
// implementation does not.
type Collection struct {
	Kind     CollectionKind
	Elem     Strategy
	ElemType *typedesc.Type
}

func (s Collection) Read(ctx Context) (any, error) {
	n, err := ctx.Ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errors.Newf("strategy: negative %s count %d", s.Kind, n)
	}

	sub := ctx.Retype(s.ElemType)

	switch s.Kind {
	case CollectionSet:
		out := rt.NewOrderedSet()

		for i := range int(n) {
			x, err := s.Elem.Read(sub)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}

			out.Add(x)
		}

		return out, nil

	default:
		out := make([]any, n)

		for i := range out {
			out[i], err = s.Elem.Read(sub)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
		}

		return out, nil
	}
}

func (s Collection) Write(ctx Context, v any) error {
	var elems []any

	switch val := v.(type) {
	case []any:
		elems = val
	case *rt.OrderedSet:
		elems = val.Values()
	default:
		return badValue(s.Kind.String(), v)
	}

	if err := ctx.Ch.WriteInt32(int32(len(elems))); err != nil {
		return err
	}

	sub := ctx.Retype(s.ElemType)

	for i, x := range elems {
		if err := s.Elem.Write(sub.Rebind(x), x); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}

	return nil
}
