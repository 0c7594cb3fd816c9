package registry

import "adapter-generator/typedesc"

// Platform package that hosts the well-known boxed, container, and protocol
// types. Primitive ids live in the empty package.
const platformPkg = "platform"

// Well-known type ids. These are the fixed vocabulary the resolution chain
// matches against; everything else comes from the registry.
var (
	ObjectRootID = typedesc.TypeID{Package: platformPkg, Name: "Object"}
	EnumBaseID   = typedesc.TypeID{Package: platformPkg, Name: "Enum"}

	ListID = typedesc.TypeID{Package: platformPkg, Name: "List"}
	SetID  = typedesc.TypeID{Package: platformPkg, Name: "Set"}
	MapID  = typedesc.TypeID{Package: platformPkg, Name: "Map"}

	SparseArrayID     = typedesc.TypeID{Package: platformPkg, Name: "SparseArray"}
	SparseBoolArrayID = typedesc.TypeID{Package: platformPkg, Name: "SparseBoolArray"}

	// StreamableID is the native self-describing serialization protocol.
	StreamableID = typedesc.TypeID{Package: platformPkg, Name: "Streamable"}
	// SerializableID is the opaque-blob fallback protocol.
	SerializableID = typedesc.TypeID{Package: platformPkg, Name: "Serializable"}
)

// Primitive type ids.
var (
	BoolID    = typedesc.TypeID{Name: "bool"}
	ByteID    = typedesc.TypeID{Name: "byte"}
	CharID    = typedesc.TypeID{Name: "char"}
	Int16ID   = typedesc.TypeID{Name: "int16"}
	Int32ID   = typedesc.TypeID{Name: "int32"}
	Int64ID   = typedesc.TypeID{Name: "int64"}
	Float32ID = typedesc.TypeID{Name: "float32"}
	Float64ID = typedesc.TypeID{Name: "float64"}
)

// Boxed counterparts and the platform value types.
var (
	BoxedBoolID    = typedesc.TypeID{Package: platformPkg, Name: "Bool"}
	BoxedByteID    = typedesc.TypeID{Package: platformPkg, Name: "Byte"}
	BoxedCharID    = typedesc.TypeID{Package: platformPkg, Name: "Char"}
	BoxedInt16ID   = typedesc.TypeID{Package: platformPkg, Name: "Int16"}
	BoxedInt32ID   = typedesc.TypeID{Package: platformPkg, Name: "Int32"}
	BoxedInt64ID   = typedesc.TypeID{Package: platformPkg, Name: "Int64"}
	BoxedFloat32ID = typedesc.TypeID{Package: platformPkg, Name: "Float32"}
	BoxedFloat64ID = typedesc.TypeID{Package: platformPkg, Name: "Float64"}

	TextID = typedesc.TypeID{Package: platformPkg, Name: "Text"}
	BlobID = typedesc.TypeID{Package: platformPkg, Name: "Blob"}
)

var primitiveIDs = map[typedesc.TypeID]struct{}{
	BoolID: {}, ByteID: {}, CharID: {}, Int16ID: {},
	Int32ID: {}, Int64ID: {}, Float32ID: {}, Float64ID: {},
}

// boxedToPrimitive maps each boxed id to its unboxed counterpart.
var boxedToPrimitive = map[typedesc.TypeID]typedesc.TypeID{
	BoxedBoolID:    BoolID,
	BoxedByteID:    ByteID,
	BoxedCharID:    CharID,
	BoxedInt16ID:   Int16ID,
	BoxedInt32ID:   Int32ID,
	BoxedInt64ID:   Int64ID,
	BoxedFloat32ID: Float32ID,
	BoxedFloat64ID: Float64ID,
}

// IsPrimitiveID returns true for the unboxed primitive ids.
func IsPrimitiveID(id typedesc.TypeID) bool {
	_, ok := primitiveIDs[id]
	return ok
}

// IsPrimitive returns true for a raw descriptor over a primitive id.
func IsPrimitive(t *typedesc.Type) bool {
	return t.IsRaw() && IsPrimitiveID(t.ID)
}

// BoxedOfPrimitive returns the boxed counterpart of a primitive id.
func BoxedOfPrimitive(id typedesc.TypeID) (typedesc.TypeID, bool) {
	for boxed, prim := range boxedToPrimitive {
		if prim == id {
			return boxed, true
		}
	}

	return typedesc.TypeID{}, false
}

// IsObjectRoot returns true for a raw descriptor over the object root id.
func IsObjectRoot(t *typedesc.Type) bool {
	return t.IsRaw() && t.ID == ObjectRootID
}
