package rt

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/channel"
	"adapter-generator/typedesc"
)

// WriteSparse transfers a sparse array whose values belong to the identified
// element class. Entries go out in ascending key order: count, then key and
// value per entry.
func WriteSparse(ch channel.Channel, codecs *Codecs, elem typedesc.TypeID, a *SparseArray) error {
	if err := ch.WriteInt32(int32(a.Len())); err != nil {
		return err
	}

	for _, key := range a.Keys() {
		if err := ch.WriteInt32(key); err != nil {
			return err
		}

		v, _ := a.Get(key)
		if err := codecs.WriteValue(ch, elem, v); err != nil {
			return errors.Wrapf(err, "sparse entry %d", key)
		}
	}

	return nil
}

// ReadSparse reconstructs a sparse array of the identified element class.
func ReadSparse(ch channel.Channel, codecs *Codecs, elem typedesc.TypeID) (*SparseArray, error) {
	n, err := ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	a := NewSparseArray()

	for range n {
		key, err := ch.ReadInt32()
		if err != nil {
			return nil, err
		}

		v, err := codecs.ReadValue(ch, elem)
		if err != nil {
			return nil, errors.Wrapf(err, "sparse entry %d", key)
		}

		a.Put(key, v)
	}

	return a, nil
}

// WriteSparseBool transfers a sparse bool array in ascending key order.
func WriteSparseBool(ch channel.Channel, a *SparseBoolArray) error {
	if err := ch.WriteInt32(int32(a.Len())); err != nil {
		return err
	}

	for _, key := range a.Keys() {
		if err := ch.WriteInt32(key); err != nil {
			return err
		}

		v, _ := a.Get(key)
		if err := ch.WriteBool(v); err != nil {
			return err
		}
	}

	return nil
}

// ReadSparseBool reconstructs a sparse bool array.
func ReadSparseBool(ch channel.Channel) (*SparseBoolArray, error) {
	n, err := ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	a := NewSparseBoolArray()

	for range n {
		key, err := ch.ReadInt32()
		if err != nil {
			return nil, err
		}

		v, err := ch.ReadBool()
		if err != nil {
			return nil, err
		}

		a.Put(key, v)
	}

	return a, nil
}
