package strategy

import "github.com/cockroachdb/errors"

// Direct strategies transfer a fixed-width or length-prefixed value
// unconditionally; nullability is never their concern.

func badValue(want string, got any) error {
	return errors.Newf("strategy: expected %s value, got %T", want, got)
}

// Bool transfers a primitive boolean.
type Bool struct{}

func (Bool) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadBool()
	return v, err
}

func (Bool) Write(ctx Context, v any) error {
	b, ok := v.(bool)
	if !ok {
		return badValue("bool", v)
	}

	return ctx.Ch.WriteBool(b)
}

// Byte transfers a primitive byte.
type Byte struct{}

func (Byte) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadByte()
	return v, err
}

func (Byte) Write(ctx Context, v any) error {
	b, ok := v.(byte)
	if !ok {
		return badValue("byte", v)
	}

	return ctx.Ch.WriteByte(b)
}

// Char transfers a primitive UTF-16 code unit.
type Char struct{}

func (Char) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadChar()
	return v, err
}

func (Char) Write(ctx Context, v any) error {
	c, ok := v.(uint16)
	if !ok {
		return badValue("char", v)
	}

	return ctx.Ch.WriteChar(c)
}

// Int16 transfers a primitive short.
type Int16 struct{}

func (Int16) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadInt16()
	return v, err
}

func (Int16) Write(ctx Context, v any) error {
	i, ok := v.(int16)
	if !ok {
		return badValue("int16", v)
	}

	return ctx.Ch.WriteInt16(i)
}

// Int32 transfers a primitive int.
type Int32 struct{}

func (Int32) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadInt32()
	return v, err
}

func (Int32) Write(ctx Context, v any) error {
	i, ok := v.(int32)
	if !ok {
		return badValue("int32", v)
	}

	return ctx.Ch.WriteInt32(i)
}

// Int64 transfers a primitive long.
type Int64 struct{}

func (Int64) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadInt64()
	return v, err
}

func (Int64) Write(ctx Context, v any) error {
	i, ok := v.(int64)
	if !ok {
		return badValue("int64", v)
	}

	return ctx.Ch.WriteInt64(i)
}

// Float32 transfers a primitive float.
type Float32 struct{}

func (Float32) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadFloat32()
	return v, err
}

func (Float32) Write(ctx Context, v any) error {
	f, ok := v.(float32)
	if !ok {
		return badValue("float32", v)
	}

	return ctx.Ch.WriteFloat32(f)
}

// Float64 transfers a primitive double.
type Float64 struct{}

func (Float64) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadFloat64()
	return v, err
}

func (Float64) Write(ctx Context, v any) error {
	f, ok := v.(float64)
	if !ok {
		return badValue("float64", v)
	}

	return ctx.Ch.WriteFloat64(f)
}

// Text transfers a string through the channel's variable-length ops.
type Text struct{}

func (Text) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadString()
	return v, err
}

func (Text) Write(ctx Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return badValue("text", v)
	}

	return ctx.Ch.WriteString(s)
}

// Blob transfers a raw byte payload through the channel's variable-length ops.
type Blob struct{}

func (Blob) Read(ctx Context) (any, error) {
	v, err := ctx.Ch.ReadBytes()
	return v, err
}

func (Blob) Write(ctx Context, v any) error {
	b, ok := v.([]byte)
	if !ok {
		return badValue("blob", v)
	}

	return ctx.Ch.WriteBytes(b)
}
