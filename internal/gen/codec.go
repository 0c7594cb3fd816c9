package gen

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/channel"
	"adapter-generator/internal/resolve"
	"adapter-generator/internal/rt"
	"adapter-generator/internal/schema"
	"adapter-generator/internal/strategy"
)

// ClassCodec is the synthesized read/write pair for one class. Reads and
// writes walk the same resolved property list in declaration order, so the
// two directions are symmetric by construction.
type ClassCodec struct {
	spec  *schema.ClassSpec
	props []resolve.ResolvedProperty
}

// Spec returns the class specification this codec was synthesized from.
func (c *ClassCodec) Spec() *schema.ClassSpec {
	return c.spec
}

// Write transfers obj to the channel, property by property in declaration
// order.
func (c *ClassCodec) Write(ch channel.Channel, obj *rt.Object) error {
	if obj == nil {
		return errors.Newf("gen: nil object for class %s", c.spec.ID)
	}

	if obj.Class != c.spec.ID {
		return errors.Newf("gen: codec for %s cannot write %s", c.spec.ID, obj.Class)
	}

	if len(obj.Values) != len(c.props) {
		return errors.Newf("gen: class %s expects %d values, have %d",
			c.spec.ID, len(c.props), len(obj.Values))
	}

	for i, p := range c.props {
		v := obj.Values[i]
		ctx := strategy.NewContext(ch, p.Spec.Type).Rebind(v)

		if err := p.Strategy.Write(ctx, v); err != nil {
			return errors.Wrapf(err, "class %s property %s", c.spec.ID, p.Spec.Name)
		}
	}

	return nil
}

// Read reconstructs an instance from the channel. Values come back in
// property declaration order, which is construction order.
func (c *ClassCodec) Read(ch channel.Channel) (*rt.Object, error) {
	values := make([]any, len(c.props))

	for i, p := range c.props {
		ctx := strategy.NewContext(ch, p.Spec.Type)

		v, err := p.Strategy.Read(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s property %s", c.spec.ID, p.Spec.Name)
		}

		values[i] = v
	}

	return rt.NewObject(c.spec.ID, values...), nil
}

// asCodec adapts the class codec to the rt codec table contract.
func (c *ClassCodec) asCodec() rt.Codec {
	return rt.Codec{
		Read: func(ch channel.Channel) (any, error) {
			return c.Read(ch)
		},
		Write: func(ch channel.Channel, v any) error {
			obj, ok := v.(*rt.Object)
			if !ok {
				return errors.Newf("gen: %T is not an object of class %s", v, c.spec.ID)
			}

			return c.Write(ch, obj)
		},
	}
}
