package strategy

import (
	"encoding"

	"adapter-generator/internal/rt"
	"adapter-generator/typedesc"
)

// Native is the strategy for types implementing the platform's
// self-describing serialization protocol. It delegates reconstruction to
// that protocol through the codec table using only the element type's
// identity.
type Native struct {
	Type   typedesc.TypeID
	Codecs *rt.Codecs
}

func (s Native) Read(ctx Context) (any, error) {
	return s.Codecs.ReadValue(ctx.Ch, s.Type)
}

func (s Native) Write(ctx Context, v any) error {
	return s.Codecs.WriteValue(ctx.Ch, s.Type, v)
}

// OpaqueBlob is the fallback strategy for types implementing the generic
// opaque-serializable protocol: the value marshals itself to bytes and is
// framed as a length-prefixed blob. Reads surface the payload as rt.Opaque;
// interpreting it is the value type's business.
type OpaqueBlob struct{}

func (OpaqueBlob) Read(ctx Context) (any, error) {
	b, err := ctx.Ch.ReadBytes()
	if err != nil {
		return nil, err
	}

	return rt.Opaque(b), nil
}

func (OpaqueBlob) Write(ctx Context, v any) error {
	switch m := v.(type) {
	case encoding.BinaryMarshaler:
		b, err := m.MarshalBinary()
		if err != nil {
			return err
		}

		return ctx.Ch.WriteBytes(b)
	case rt.Opaque:
		return ctx.Ch.WriteBytes(m)
	default:
		return badValue("opaque-serializable", v)
	}
}
