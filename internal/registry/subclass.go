package registry

import (
	"fmt"

	"adapter-generator/typedesc"
)

// StructuralTypeError reports a method-shaped descriptor entering a subclass
// test. It marks a defect in the caller, not in the declarations under
// resolution, and is never retried.
type StructuralTypeError struct {
	Type *typedesc.Type
}

func (e *StructuralTypeError) Error() string {
	return fmt.Sprintf("registry: executable type %s cannot enter a subclass test", e.Type)
}

// IsSubclassOf decides assignability of a to b over the mirrored hierarchy:
//
//   - identical descriptors are assignable
//   - a primitive on either side matches by identity only
//   - the object root is a subclass of nothing but itself, and everything
//     is a subclass of the object root
//   - arrays recurse on their element types; an array never matches a
//     non-array
//   - otherwise a's declared interfaces are walked, then its superclass
//
// Descriptors are finitely nested and superclass chains are finite, so the
// recursion terminates.
func IsSubclassOf(reg Registry, a, b *typedesc.Type) (bool, error) {
	if a.Kind == typedesc.KindExecutable || b.Kind == typedesc.KindExecutable {
		if a.Kind != typedesc.KindExecutable {
			a = b
		}

		return false, &StructuralTypeError{Type: a}
	}

	if a.Equal(b) {
		return true, nil
	}

	if IsPrimitive(a) || IsPrimitive(b) {
		// Primitives relate by identity only, and identity was ruled out above.
		return false, nil
	}

	if IsObjectRoot(a) {
		return IsObjectRoot(b), nil
	}

	if IsObjectRoot(b) {
		return true, nil
	}

	aArray := a.Kind == typedesc.KindArray
	bArray := b.Kind == typedesc.KindArray

	if aArray && bArray {
		return IsSubclassOf(reg, a.Elem, b.Elem)
	}

	if aArray != bArray {
		return false, nil
	}

	mirror, ok := reg.ClassMirrorOf(a.ID)
	if !ok {
		return false, nil
	}

	for _, iface := range mirror.Interfaces {
		sub, err := IsSubclassOf(reg, typedesc.RawOf(iface), b)
		if err != nil {
			return false, err
		}

		if sub {
			return true, nil
		}
	}

	if mirror.Super != nil {
		return IsSubclassOf(reg, typedesc.RawOf(*mirror.Super), b)
	}

	return false, nil
}
