package strategy

// Map is the structurally resolvable but unimplemented strategy for the
// generic two-argument map interface: write transfers nothing and read
// yields a null placeholder. A non-empty map therefore does not survive a
// round trip. This mirrors the unfinished upstream behavior on purpose;
// inventing a map wire format here would silently diverge from every
// existing writer.
type Map struct {
	Key   Strategy
	Value Strategy
}

func (Map) Read(ctx Context) (any, error) {
	return nil, nil
}

func (Map) Write(ctx Context, v any) error {
	return nil
}
