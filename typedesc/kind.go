package typedesc

// Kind discriminates the variants of a type descriptor. Exactly one variant
// is active per descriptor.
type Kind int

const (
	KindUnknown Kind = iota
	// KindRaw - a type reference with no generic type arguments.
	KindRaw
	// KindArray - an array of a recursively described element type.
	KindArray
	// KindParameterized - a generic type with ordered type arguments.
	KindParameterized
	// KindTypeVariable - an unresolved type variable from a generic declaration.
	KindTypeVariable
	// KindInner - a member type nested inside an enclosing type.
	KindInner
	// KindUpperBounded - a wildcard bounded from above.
	KindUpperBounded
	// KindLowerBounded - a wildcard bounded from below.
	KindLowerBounded
	// KindExecutable - a method-shaped signature, not an object type.
	// It only appears in method mirrors and is rejected by subclass tests.
	KindExecutable

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindArray:
		return "array"
	case KindParameterized:
		return "parameterized"
	case KindTypeVariable:
		return "typevar"
	case KindInner:
		return "inner"
	case KindUpperBounded:
		return "upper"
	case KindLowerBounded:
		return "lower"
	case KindExecutable:
		return "executable"
	default:
		return "unknown"
	}
}
