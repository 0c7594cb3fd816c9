package resolve

import (
	"adapter-generator/internal/registry"
	"adapter-generator/internal/strategy"
	"adapter-generator/typedesc"
)

// Catalog is the immutable table of built-in strategies for primitive,
// boxed, and platform value types. It is constructed once, injected into
// the engine, and looked up by exact type id; there is no hidden global
// state behind it.
type Catalog struct {
	byID map[typedesc.TypeID]strategy.Strategy
}

// NewCatalog builds the built-in strategy table.
func NewCatalog() *Catalog {
	byID := map[typedesc.TypeID]strategy.Strategy{
		registry.BoolID:    strategy.Bool{},
		registry.ByteID:    strategy.Byte{},
		registry.CharID:    strategy.Char{},
		registry.Int16ID:   strategy.Int16{},
		registry.Int32ID:   strategy.Int32{},
		registry.Int64ID:   strategy.Int64{},
		registry.Float32ID: strategy.Float32{},
		registry.Float64ID: strategy.Float64{},

		registry.TextID: strategy.Text{},
		registry.BlobID: strategy.Blob{},
	}

	boxed := func(id typedesc.TypeID, s strategy.Strategy) {
		byID[id] = strategy.Optional(s)
	}

	boxed(registry.BoxedBoolID,
		strategy.Boxed[bool](strategy.Bool{}, typedesc.RawOf(registry.BoolID)))
	boxed(registry.BoxedByteID,
		strategy.Boxed[byte](strategy.Byte{}, typedesc.RawOf(registry.ByteID)))
	boxed(registry.BoxedCharID,
		strategy.Boxed[uint16](strategy.Char{}, typedesc.RawOf(registry.CharID)))
	boxed(registry.BoxedInt16ID,
		strategy.Boxed[int16](strategy.Int16{}, typedesc.RawOf(registry.Int16ID)))
	boxed(registry.BoxedInt32ID,
		strategy.Boxed[int32](strategy.Int32{}, typedesc.RawOf(registry.Int32ID)))
	boxed(registry.BoxedInt64ID,
		strategy.Boxed[int64](strategy.Int64{}, typedesc.RawOf(registry.Int64ID)))
	boxed(registry.BoxedFloat32ID,
		strategy.Boxed[float32](strategy.Float32{}, typedesc.RawOf(registry.Float32ID)))
	boxed(registry.BoxedFloat64ID,
		strategy.Boxed[float64](strategy.Float64{}, typedesc.RawOf(registry.Float64ID)))

	return &Catalog{byID: byID}
}

// Lookup returns the built-in strategy for an exact type id.
func (c *Catalog) Lookup(id typedesc.TypeID) (strategy.Strategy, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.byID)
}
