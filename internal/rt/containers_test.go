package rt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adapter-generator/channel"
	"adapter-generator/internal/rt"
	"adapter-generator/typedesc"
)

func TestOrderedSetKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := rt.NewOrderedSet("b", "a", "c", "a")

	assert.Equal(t, []any{"b", "a", "c"}, s.Values())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("d"))
}

func TestOrderedSetUncomparableElements(t *testing.T) {
	t.Parallel()

	// Reconstructed list and blob elements are slices; adding them must
	// dedupe by deep equality instead of panicking on the hash index.
	s := rt.NewOrderedSet()

	assert.True(t, s.Add([]any{"a", "b"}))
	assert.False(t, s.Add([]any{"a", "b"}))
	assert.True(t, s.Add([]any{"a"}))
	assert.True(t, s.Add(map[any]any{"k": int32(1)}))
	assert.True(t, s.Add("plain"))

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains([]any{"a"}))
	assert.False(t, s.Contains([]any{"b"}))
	assert.True(t, s.Contains("plain"))
}

func TestSparseArrayKeysSorted(t *testing.T) {
	t.Parallel()

	a := rt.NewSparseArray()
	a.Put(30, "x")
	a.Put(-1, "y")
	a.Put(7, "z")

	assert.Equal(t, []int32{-1, 7, 30}, a.Keys())

	v, ok := a.Get(7)
	require.True(t, ok)
	assert.Equal(t, "z", v)
}

func TestSparseBoolRoundTrip(t *testing.T) {
	t.Parallel()

	a := rt.NewSparseBoolArray()
	a.Put(4, true)
	a.Put(2, false)

	ch := channel.NewMemory()
	require.NoError(t, rt.WriteSparseBool(ch, a))
	ch.Rewind()

	got, err := rt.ReadSparseBool(ch)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 4}, got.Keys())

	v, ok := got.Get(4)
	require.True(t, ok)
	assert.True(t, v)

	v, ok = got.Get(2)
	require.True(t, ok)
	assert.False(t, v)
}

func TestCodecsUnregistered(t *testing.T) {
	t.Parallel()

	codecs := rt.NewCodecs()
	_, err := codecs.ReadValue(channel.NewMemory(), typedesc.TypeID{Package: "demo", Name: "Ghost"})
	assert.ErrorContains(t, err, "no codec registered")
}
