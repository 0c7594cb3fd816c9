package strategy

// optional frames every value with one leading presence flag (1 = present,
// 0 = absent) before delegating to a not-null inner strategy. This is the
// single nullability convention; every composite strategy wraps itself in it
// rather than reimplementing null handling.
type optional struct {
	inner Strategy
}

// Optional wraps inner in the presence-flag framing.
func Optional(inner Strategy) Strategy {
	return optional{inner: inner}
}

func (s optional) Read(ctx Context) (any, error) {
	flag, err := ctx.Ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	if flag == 0 {
		return nil, nil
	}

	return s.inner.Read(ctx)
}

func (s optional) Write(ctx Context, v any) error {
	if isNil(v) {
		return ctx.Ch.WriteInt32(0)
	}

	if err := ctx.Ch.WriteInt32(1); err != nil {
		return err
	}

	return s.inner.Write(ctx, v)
}
