package channel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adapter-generator/channel"
)

func TestMemoryFixedWidthRoundTrip(t *testing.T) {
	t.Parallel()

	m := channel.NewMemory()

	require.NoError(t, m.WriteBool(true))
	require.NoError(t, m.WriteByte(0xAB))
	require.NoError(t, m.WriteChar('好'))
	require.NoError(t, m.WriteInt16(-2))
	require.NoError(t, m.WriteInt32(math.MinInt32))
	require.NoError(t, m.WriteInt64(math.MaxInt64))
	require.NoError(t, m.WriteFloat32(1.5))
	require.NoError(t, m.WriteFloat64(-2.25))

	m.Rewind()

	b, err := m.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	by, err := m.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), by)

	c, err := m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, uint16('好'), c)

	i16, err := m.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	i32, err := m.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), i32)

	i64, err := m.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), i64)

	f32, err := m.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	f64, err := m.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -2.25, f64)

	assert.Zero(t, m.Len())
}

func TestMemorySubWordValuesTakeFourBytes(t *testing.T) {
	t.Parallel()

	m := channel.NewMemory()
	require.NoError(t, m.WriteBool(false))
	require.NoError(t, m.WriteByte(1))
	require.NoError(t, m.WriteChar(2))
	require.NoError(t, m.WriteInt16(3))

	assert.Len(t, m.Bytes(), 16)
}

func TestMemoryVariableLengthRoundTrip(t *testing.T) {
	t.Parallel()

	m := channel.NewMemory()
	require.NoError(t, m.WriteString(""))
	require.NoError(t, m.WriteString("héllo"))
	require.NoError(t, m.WriteBytes([]byte{1, 2, 3}))

	m.Rewind()

	s, err := m.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = m.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	b, err := m.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestMemoryShortRead(t *testing.T) {
	t.Parallel()

	m := channel.NewMemory()
	require.NoError(t, m.WriteInt32(7))

	m.Rewind()

	_, err := m.ReadInt64()
	assert.ErrorIs(t, err, channel.ErrShortRead)
}

func TestMemoryRewindRereads(t *testing.T) {
	t.Parallel()

	m := channel.NewMemory()
	require.NoError(t, m.WriteInt32(42))

	for range 2 {
		m.Rewind()

		v, err := m.ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(42), v)
	}
}
