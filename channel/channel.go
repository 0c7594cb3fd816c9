// Package channel defines the binary sink/source that synthesized read/write
// procedures transfer values through, together with an in-memory
// implementation used for execution and tests.
package channel

// Channel is the abstract transfer surface driven by strategies. Fixed-width
// operations move primitives at their native width; variable-length
// operations carry a 4-byte count followed by the payload bytes. Presence
// flags and element counts are always 4-byte integers written through
// WriteInt32.
type Channel interface {
	WriteBool(v bool) error
	WriteByte(v byte) error
	WriteChar(v uint16) error
	WriteInt16(v int16) error
	WriteInt32(v int32) error
	WriteInt64(v int64) error
	WriteFloat32(v float32) error
	WriteFloat64(v float64) error
	WriteString(v string) error
	WriteBytes(v []byte) error

	ReadBool() (bool, error)
	ReadByte() (byte, error)
	ReadChar() (uint16, error)
	ReadInt16() (int16, error)
	ReadInt32() (int32, error)
	ReadInt64() (int64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
	ReadString() (string, error)
	ReadBytes() ([]byte, error)
}
