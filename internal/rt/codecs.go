package rt

import (
	"sync"

	"github.com/cockroachdb/errors"

	"adapter-generator/channel"
	"adapter-generator/typedesc"
)

// Reader reconstructs a value of one class from the channel.
type Reader func(ch channel.Channel) (any, error)

// Writer transfers a value of one class to the channel.
type Writer func(ch channel.Channel, v any) error

// Codec is the paired read/write procedure for one class.
type Codec struct {
	Read  Reader
	Write Writer
}

// Codecs is the per-generator table behind the native self-describing
// protocol: strategies hand it only a type identity and it supplies the
// class's read/write pair. Lookups are late-bound so mutually referential
// classes can resolve before either codec exists.
type Codecs struct {
	mu   sync.RWMutex
	byID map[typedesc.TypeID]Codec
}

// NewCodecs returns an empty codec table.
func NewCodecs() *Codecs {
	return &Codecs{byID: map[typedesc.TypeID]Codec{}}
}

// Register binds the codec for a class identity.
func (c *Codecs) Register(id typedesc.TypeID, codec Codec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID[id] = codec
}

// Lookup returns the codec registered for id.
func (c *Codecs) Lookup(id typedesc.TypeID) (Codec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codec, ok := c.byID[id]

	return codec, ok
}

// ReadValue reconstructs a value of the identified class from the channel.
func (c *Codecs) ReadValue(ch channel.Channel, id typedesc.TypeID) (any, error) {
	codec, ok := c.Lookup(id)
	if !ok {
		return nil, errors.Newf("rt: no codec registered for %s", id)
	}

	return codec.Read(ch)
}

// WriteValue transfers a value of the identified class to the channel.
func (c *Codecs) WriteValue(ch channel.Channel, id typedesc.TypeID, v any) error {
	codec, ok := c.Lookup(id)
	if !ok {
		return errors.Newf("rt: no codec registered for %s", id)
	}

	return codec.Write(ch, v)
}
