package options

// FamilyEnum is a bitmask over the strategy families the resolution engine
// may hand out. A branch whose family is disabled falls through to the
// unsupported-property error instead of producing a strategy.
type FamilyEnum int

const (
	FamilyCatalog    FamilyEnum = 1 << iota // built-in primitives, boxed counterparts, text, blob
	FamilyEnumConst                         // enum ordinal serialization
	FamilyMap                               // generic two-argument map interface (structural stub)
	FamilyCollection                        // generic list and set interfaces
	FamilySparse                            // sparse integer- and boolean-keyed containers
	FamilyExternal                          // native-protocol and opaque-blob fallbacks
	FamilyArray                             // array shapes over a resolved element strategy

	FamilyAll  FamilyEnum = (1 << iota) - 1 // all families combined
	FamilyNone FamilyEnum = 0               // no families selected
)

// Has returns true if all families in f are enabled.
func (e FamilyEnum) Has(f FamilyEnum) bool {
	return e&f == f
}
