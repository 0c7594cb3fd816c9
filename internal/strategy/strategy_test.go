package strategy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adapter-generator/channel"
	"adapter-generator/internal/rt"
	"adapter-generator/internal/strategy"
	"adapter-generator/typedesc"
)

var (
	int32Desc = typedesc.RawOf(typedesc.TypeID{Name: "int32"})
	textDesc  = typedesc.RawOf(typedesc.TypeID{Package: "platform", Name: "Text"})
)

func roundTrip(t *testing.T, s strategy.Strategy, desc *typedesc.Type, v any) any {
	t.Helper()

	ch := channel.NewMemory()
	ctx := strategy.NewContext(ch, desc)

	require.NoError(t, s.Write(ctx, v))
	ch.Rewind()

	got, err := s.Read(ctx)
	require.NoError(t, err)

	return got
}

func TestDirectRoundTrips(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		s    strategy.Strategy
		v    any
	}{
		{"bool", strategy.Bool{}, true},
		{"byte", strategy.Byte{}, byte(0xFF)},
		{"char", strategy.Char{}, uint16('木')},
		{"int16 min", strategy.Int16{}, int16(math.MinInt16)},
		{"int32 max", strategy.Int32{}, int32(math.MaxInt32)},
		{"int64 min", strategy.Int64{}, int64(math.MinInt64)},
		{"float32", strategy.Float32{}, float32(3.25)},
		{"float64", strategy.Float64{}, float64(-0.5)},
		{"text", strategy.Text{}, "héllo"},
		{"empty text", strategy.Text{}, ""},
		{"blob", strategy.Blob{}, []byte{0, 1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.v, roundTrip(t, tc.s, int32Desc, tc.v))
		})
	}
}

func TestDirectRejectsWrongValueType(t *testing.T) {
	t.Parallel()

	ctx := strategy.NewContext(channel.NewMemory(), int32Desc)
	assert.ErrorContains(t, strategy.Int32{}.Write(ctx, "nope"), "expected int32")
}

func TestOptionalFraming(t *testing.T) {
	t.Parallel()

	opt := strategy.Optional(strategy.Int32{})

	assert.Equal(t, int32(7), roundTrip(t, opt, int32Desc, int32(7)))
	assert.Nil(t, roundTrip(t, opt, int32Desc, nil))

	// A typed nil pointer counts as absent, same as untyped nil.
	var p *int32
	assert.Nil(t, roundTrip(t, opt, int32Desc, p))

	// Absent values occupy exactly one flag word.
	ch := channel.NewMemory()
	require.NoError(t, opt.Write(strategy.NewContext(ch, int32Desc), nil))
	assert.Len(t, ch.Bytes(), 4)
}

func TestBoxedRoundTrip(t *testing.T) {
	t.Parallel()

	boxedDesc := typedesc.RawOf(typedesc.TypeID{Package: "platform", Name: "Int32"})
	s := strategy.Optional(strategy.Boxed[int32](strategy.Int32{}, int32Desc))

	v := int32(-42)
	got := roundTrip(t, s, boxedDesc, &v)
	require.IsType(t, (*int32)(nil), got)
	assert.Equal(t, v, *got.(*int32))

	assert.Nil(t, roundTrip(t, s, boxedDesc, nil))
}

func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	colorID := typedesc.TypeID{Package: "demo", Name: "Color"}
	s := strategy.Enum{Type: colorID, Constants: []string{"RED", "GREEN", "BLUE"}}

	third := rt.EnumValue{Type: colorID, Ordinal: 2, Name: "BLUE"}
	assert.Equal(t, third, roundTrip(t, s, typedesc.RawOf(colorID), third))
}

func TestEnumShortenedDeclaration(t *testing.T) {
	t.Parallel()

	colorID := typedesc.TypeID{Package: "demo", Name: "Color"}
	full := strategy.Enum{Type: colorID, Constants: []string{"RED", "GREEN", "BLUE"}}
	short := strategy.Enum{Type: colorID, Constants: []string{"RED", "GREEN"}}

	ch := channel.NewMemory()
	ctx := strategy.NewContext(ch, typedesc.RawOf(colorID))
	require.NoError(t, full.Write(ctx, rt.EnumValue{Type: colorID, Ordinal: 2, Name: "BLUE"}))
	ch.Rewind()

	_, err := short.Read(ctx)
	var rangeErr *strategy.RuntimeRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int32(2), rangeErr.Ordinal)
	assert.Equal(t, 2, rangeErr.Size)
}

func TestArrayOrderStable(t *testing.T) {
	t.Parallel()

	s := strategy.Array{Elem: strategy.Text{}, ElemType: textDesc}
	in := []any{"c", "a", "b"}

	assert.Equal(t, in, roundTrip(t, s, typedesc.ArrayOf(textDesc), in))
	assert.Equal(t, []any{}, roundTrip(t, s, typedesc.ArrayOf(textDesc), []any{}))
}

func TestCollectionList(t *testing.T) {
	t.Parallel()

	s := strategy.Collection{Kind: strategy.CollectionList, Elem: strategy.Int32{}, ElemType: int32Desc}
	in := []any{int32(3), int32(1), int32(2)}

	assert.Equal(t, in, roundTrip(t, s, int32Desc, in))
}

func TestCollectionSetReconstruction(t *testing.T) {
	t.Parallel()

	s := strategy.Collection{Kind: strategy.CollectionSet, Elem: strategy.Text{}, ElemType: textDesc}
	in := rt.NewOrderedSet("z", "a", "m")

	got := roundTrip(t, s, textDesc, in)
	set, ok := got.(*rt.OrderedSet)
	require.True(t, ok)
	assert.Equal(t, []any{"z", "a", "m"}, set.Values())

	// A list value also writes through a set strategy; it still reconstructs
	// into the fixed set implementation.
	got = roundTrip(t, s, textDesc, []any{"x", "y"})
	set, ok = got.(*rt.OrderedSet)
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, set.Values())
}

func TestSparseBoolStrategy(t *testing.T) {
	t.Parallel()

	a := rt.NewSparseBoolArray()
	a.Put(9, true)
	a.Put(1, false)

	got := roundTrip(t, strategy.SparseBool{}, int32Desc, a)
	arr, ok := got.(*rt.SparseBoolArray)
	require.True(t, ok)
	assert.Equal(t, []int32{1, 9}, arr.Keys())
}

func TestSparseMapDelegatesToCodecs(t *testing.T) {
	t.Parallel()

	elemID := typedesc.TypeID{Package: "demo", Name: "Tag"}
	codecs := rt.NewCodecs()
	codecs.Register(elemID, rt.Codec{
		Read: func(ch channel.Channel) (any, error) {
			return ch.ReadString()
		},
		Write: func(ch channel.Channel, v any) error {
			return ch.WriteString(v.(string))
		},
	})

	a := rt.NewSparseArray()
	a.Put(5, "five")
	a.Put(2, "two")

	s := strategy.SparseMap{Elem: elemID, Codecs: codecs}
	got := roundTrip(t, s, int32Desc, a)

	arr, ok := got.(*rt.SparseArray)
	require.True(t, ok)
	assert.Equal(t, []int32{2, 5}, arr.Keys())

	v, ok := arr.Get(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)
}

type stamped struct{ payload []byte }

func (s stamped) MarshalBinary() ([]byte, error) {
	return s.payload, nil
}

func TestOpaqueBlob(t *testing.T) {
	t.Parallel()

	s := strategy.OpaqueBlob{}

	got := roundTrip(t, s, int32Desc, stamped{payload: []byte{9, 8}})
	assert.Equal(t, rt.Opaque{9, 8}, got)

	// Opaque payloads write back unchanged.
	assert.Equal(t, rt.Opaque{9, 8}, roundTrip(t, s, int32Desc, rt.Opaque{9, 8}))
}

func TestMapStrategyGap(t *testing.T) {
	t.Parallel()

	s := strategy.Map{Key: strategy.Text{}, Value: strategy.Int32{}}
	ch := channel.NewMemory()
	ctx := strategy.NewContext(ch, int32Desc)

	// Writing a non-empty map transfers nothing and reading yields the null
	// placeholder: entries do not survive the round trip.
	require.NoError(t, s.Write(ctx, map[any]any{"k": int32(1)}))
	assert.Empty(t, ch.Bytes())

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContextDerivations(t *testing.T) {
	t.Parallel()

	ch := channel.NewMemory()
	ctx := strategy.NewContext(ch, int32Desc)

	retyped := ctx.Retype(textDesc)
	rebound := ctx.Rebind(int32(5))
	flagged := ctx.WithFlags(strategy.FlagReturnValue)

	// Derivations never touch the original.
	assert.Equal(t, int32Desc, ctx.Type)
	assert.Nil(t, ctx.Value)
	assert.Equal(t, strategy.FlagNone, ctx.Flags)

	assert.Equal(t, textDesc, retyped.Type)
	assert.Equal(t, int32(5), rebound.Value)
	assert.Equal(t, strategy.FlagReturnValue, flagged.Flags)
}
