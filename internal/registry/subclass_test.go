package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adapter-generator/internal/registry"
	"adapter-generator/typedesc"
)

func buildRegistry(t *testing.T) registry.Registry {
	t.Helper()

	parcelID := typedesc.TypeID{Package: "demo", Name: "Attachment"}
	noteID := typedesc.TypeID{Package: "demo", Name: "Note"}

	reg, err := registry.NewBuilder().
		AddEnum(typedesc.TypeID{Package: "demo", Name: "Color"}, "RED", "GREEN", "BLUE").
		AddClass(&registry.ClassMirror{
			ID:         parcelID,
			Interfaces: []typedesc.TypeID{registry.StreamableID},
		}).
		AddClass(&registry.ClassMirror{
			ID:    noteID,
			Super: &parcelID,
		}).
		Build()
	require.NoError(t, err)

	return reg
}

func TestIsSubclassOfIdentityAndPrimitives(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t)

	int32Type := typedesc.RawOf(registry.Int32ID)
	boxed := typedesc.RawOf(registry.BoxedInt32ID)

	sub, err := registry.IsSubclassOf(reg, int32Type, int32Type)
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = registry.IsSubclassOf(reg, int32Type, boxed)
	require.NoError(t, err)
	assert.False(t, sub)
}

func TestIsSubclassOfObjectRoot(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t)
	root := typedesc.RawOf(registry.ObjectRootID)
	text := typedesc.RawOf(registry.TextID)

	sub, err := registry.IsSubclassOf(reg, text, root)
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = registry.IsSubclassOf(reg, root, text)
	require.NoError(t, err)
	assert.False(t, sub)

	sub, err = registry.IsSubclassOf(reg, root, root)
	require.NoError(t, err)
	assert.True(t, sub)
}

func TestIsSubclassOfArrays(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t)

	// No covariant widening across element primitiveness.
	sub, err := registry.IsSubclassOf(reg,
		typedesc.ArrayOf(typedesc.RawOf(registry.Int32ID)),
		typedesc.ArrayOf(typedesc.RawOf(registry.BoxedInt32ID)))
	require.NoError(t, err)
	assert.False(t, sub)

	sub, err = registry.IsSubclassOf(reg,
		typedesc.ArrayOf(typedesc.RawOf(registry.TextID)),
		typedesc.ArrayOf(typedesc.RawOf(registry.ObjectRootID)))
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = registry.IsSubclassOf(reg,
		typedesc.ArrayOf(typedesc.RawOf(registry.TextID)),
		typedesc.RawOf(registry.TextID))
	require.NoError(t, err)
	assert.False(t, sub)
}

func TestIsSubclassOfHierarchyWalk(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t)

	enum := typedesc.RawOf(typedesc.TypeID{Package: "demo", Name: "Color"})
	sub, err := registry.IsSubclassOf(reg, enum, typedesc.RawOf(registry.EnumBaseID))
	require.NoError(t, err)
	assert.True(t, sub)

	// Interface satisfaction through the superclass chain.
	note := typedesc.RawOf(typedesc.TypeID{Package: "demo", Name: "Note"})
	sub, err = registry.IsSubclassOf(reg, note, typedesc.RawOf(registry.StreamableID))
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = registry.IsSubclassOf(reg, note, typedesc.RawOf(registry.SerializableID))
	require.NoError(t, err)
	assert.False(t, sub)

	// Unknown ids have no mirror and relate to nothing but the root.
	unknown := typedesc.RawOf(typedesc.TypeID{Package: "demo", Name: "Ghost"})
	sub, err = registry.IsSubclassOf(reg, unknown, typedesc.RawOf(registry.StreamableID))
	require.NoError(t, err)
	assert.False(t, sub)
}

func TestIsSubclassOfRejectsExecutable(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t)
	sig := typedesc.ExecutableOf(typedesc.TypeID{Package: "demo", Name: "close"})

	_, err := registry.IsSubclassOf(reg, sig, typedesc.RawOf(registry.ObjectRootID))
	var structural *registry.StructuralTypeError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, sig, structural.Type)

	_, err = registry.IsSubclassOf(reg, typedesc.RawOf(registry.TextID), sig)
	assert.ErrorAs(t, err, &structural)
}

func TestBuilderDuplicate(t *testing.T) {
	t.Parallel()

	id := typedesc.TypeID{Package: "demo", Name: "Dup"}
	_, err := registry.NewBuilder().
		AddClass(&registry.ClassMirror{ID: id}).
		AddClass(&registry.ClassMirror{ID: id}).
		Build()
	assert.Error(t, err)
}
