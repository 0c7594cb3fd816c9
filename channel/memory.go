package channel

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrShortRead is returned when a read runs past the end of the channel data.
var ErrShortRead = errors.New("channel: read past end of data")

// ErrNegativeCount is returned when a variable-length read finds a negative count.
var ErrNegativeCount = errors.New("channel: negative length prefix")

// Memory is a Channel over an in-memory byte slice. Writes append at the end,
// reads advance an independent cursor. All multi-byte values are big-endian.
// Sub-int32 primitives (bool, byte, char, int16) occupy 4 bytes on the wire,
// the same width as presence flags and counts.
//
// Memory is not safe for concurrent use.
type Memory struct {
	data []byte
	pos  int
}

// Compile-time assertion that Memory implements Channel.
var _ Channel = (*Memory)(nil)

// NewMemory returns an empty in-memory channel.
func NewMemory() *Memory {
	return &Memory{}
}

// Bytes returns the raw written data.
func (m *Memory) Bytes() []byte {
	return m.data
}

// Rewind resets the read cursor to the start of the data.
func (m *Memory) Rewind() {
	m.pos = 0
}

// Len returns the number of unread bytes.
func (m *Memory) Len() int {
	return len(m.data) - m.pos
}

func (m *Memory) writeUint32(v uint32) error {
	m.data = binary.BigEndian.AppendUint32(m.data, v)
	return nil
}

func (m *Memory) readUint32() (uint32, error) {
	if m.pos+4 > len(m.data) {
		return 0, errors.WithStack(ErrShortRead)
	}

	v := binary.BigEndian.Uint32(m.data[m.pos:])
	m.pos += 4

	return v, nil
}

func (m *Memory) WriteBool(v bool) error {
	if v {
		return m.writeUint32(1)
	}

	return m.writeUint32(0)
}

func (m *Memory) WriteByte(v byte) error {
	return m.writeUint32(uint32(v))
}

func (m *Memory) WriteChar(v uint16) error {
	return m.writeUint32(uint32(v))
}

func (m *Memory) WriteInt16(v int16) error {
	return m.writeUint32(uint32(int32(v)))
}

func (m *Memory) WriteInt32(v int32) error {
	return m.writeUint32(uint32(v))
}

func (m *Memory) WriteInt64(v int64) error {
	m.data = binary.BigEndian.AppendUint64(m.data, uint64(v))
	return nil
}

func (m *Memory) WriteFloat32(v float32) error {
	return m.writeUint32(math.Float32bits(v))
}

func (m *Memory) WriteFloat64(v float64) error {
	m.data = binary.BigEndian.AppendUint64(m.data, math.Float64bits(v))
	return nil
}

func (m *Memory) WriteString(v string) error {
	return m.WriteBytes([]byte(v))
}

func (m *Memory) WriteBytes(v []byte) error {
	if err := m.writeUint32(uint32(len(v))); err != nil {
		return err
	}

	m.data = append(m.data, v...)

	return nil
}

func (m *Memory) ReadBool() (bool, error) {
	v, err := m.readUint32()
	return v != 0, err
}

func (m *Memory) ReadByte() (byte, error) {
	v, err := m.readUint32()
	return byte(v), err
}

func (m *Memory) ReadChar() (uint16, error) {
	v, err := m.readUint32()
	return uint16(v), err
}

func (m *Memory) ReadInt16() (int16, error) {
	v, err := m.readUint32()
	return int16(int32(v)), err
}

func (m *Memory) ReadInt32() (int32, error) {
	v, err := m.readUint32()
	return int32(v), err
}

func (m *Memory) ReadInt64() (int64, error) {
	if m.pos+8 > len(m.data) {
		return 0, errors.WithStack(ErrShortRead)
	}

	v := binary.BigEndian.Uint64(m.data[m.pos:])
	m.pos += 8

	return int64(v), nil
}

func (m *Memory) ReadFloat32() (float32, error) {
	v, err := m.readUint32()
	return math.Float32frombits(v), err
}

func (m *Memory) ReadFloat64() (float64, error) {
	if m.pos+8 > len(m.data) {
		return 0, errors.WithStack(ErrShortRead)
	}

	v := binary.BigEndian.Uint64(m.data[m.pos:])
	m.pos += 8

	return math.Float64frombits(v), nil
}

func (m *Memory) ReadString() (string, error) {
	b, err := m.ReadBytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (m *Memory) ReadBytes() ([]byte, error) {
	n, err := m.readUint32()
	if err != nil {
		return nil, err
	}

	if int32(n) < 0 {
		return nil, errors.WithStack(ErrNegativeCount)
	}

	if m.pos+int(n) > len(m.data) {
		return nil, errors.WithStack(ErrShortRead)
	}

	b := make([]byte, n)
	copy(b, m.data[m.pos:])
	m.pos += int(n)

	return b, nil
}
