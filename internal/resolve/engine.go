// Package resolve contains the adapter resolution engine: the ordered
// fallback chain that derives one strategy per declared property, recursing
// through generic type arguments, and the built-in strategy catalog it
// consults first.
package resolve

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"adapter-generator/internal/registry"
	"adapter-generator/internal/rt"
	"adapter-generator/internal/schema"
	"adapter-generator/internal/strategy"
	"adapter-generator/options"
	"adapter-generator/typedesc"
)

// Config tunes one engine instance.
type Config struct {
	// Allowed gates the strategy families the engine may hand out.
	Allowed options.FamilyEnum
	// Logger receives per-branch resolution traces at debug level.
	Logger *zap.Logger
}

// DefaultConfig enables every family and logs nowhere.
func DefaultConfig() Config {
	return Config{Allowed: options.FamilyAll, Logger: zap.NewNop()}
}

// Engine resolves declared property types to strategies. It holds only
// immutable collaborators and is safe for concurrent use provided the
// registry is.
type Engine struct {
	catalog *Catalog
	reg     registry.Registry
	codecs  *rt.Codecs
	allowed options.FamilyEnum
	log     *zap.Logger
}

// NewEngine returns an engine over the given registry snapshot and codec
// table.
func NewEngine(catalog *Catalog, reg registry.Registry, codecs *rt.Codecs, cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		catalog: catalog,
		reg:     reg,
		codecs:  codecs,
		allowed: cfg.Allowed,
		log:     log,
	}
}

// Codecs returns the codec table the engine's strategies dispatch through.
func (e *Engine) Codecs() *rt.Codecs {
	return e.codecs
}

// Resolve derives the strategy for one declared property type. Branches are
// tried in fixed priority: catalog, enum, map, list/set, sparse containers,
// native protocol, array, opaque blob. Shape violations inside a matched
// branch yield InvalidDeclarationError; an exhausted chain yields
// UnsupportedPropertyTypeError. Both name the owning class and property and
// are fatal for that class.
func (e *Engine) Resolve(
	class *schema.ClassSpec, prop *schema.PropertySpec, desc *typedesc.Type,
) (strategy.Strategy, error) {
	switch desc.Kind {
	case typedesc.KindArray:
		return e.resolveArray(class, prop, desc)

	case typedesc.KindRaw, typedesc.KindParameterized:
		return e.resolveNamed(class, prop, desc)

	default:
		return nil, errors.WithStack(&UnsupportedPropertyTypeError{
			Class:    class.ID,
			Property: prop.Name,
			Type:     desc,
		})
	}
}

func (e *Engine) resolveNamed(
	class *schema.ClassSpec, prop *schema.PropertySpec, desc *typedesc.Type,
) (strategy.Strategy, error) {
	raw := typedesc.RawOf(desc.ID)

	// 1. Exact match in the built-in catalog.
	if desc.IsRaw() && e.allowed.Has(options.FamilyCatalog) {
		if s, ok := e.catalog.Lookup(desc.ID); ok {
			e.trace(class, prop, desc, "catalog")
			return s, nil
		}
	}

	// 2. Enum subclasses serialize their declaration-order index.
	isEnum, err := registry.IsSubclassOf(e.reg, raw, typedesc.RawOf(registry.EnumBaseID))
	if err != nil {
		return nil, err
	}

	if isEnum && e.allowed.Has(options.FamilyEnumConst) {
		mirror, ok := e.reg.ClassMirrorOf(desc.ID)
		if !ok || len(mirror.EnumConstants) == 0 {
			return nil, errors.WithStack(&InvalidDeclarationError{
				Class:    class.ID,
				Property: prop.Name,
				Reason:   "enum type " + desc.ID.String() + " mirrors no constants",
			})
		}

		e.trace(class, prop, desc, "enum")

		return strategy.Optional(strategy.Enum{
			Type:      desc.ID,
			Constants: mirror.EnumConstants,
		}), nil
	}

	// 3. The generic map interface: structurally resolvable, two arguments.
	if desc.ID == registry.MapID && e.allowed.Has(options.FamilyMap) {
		if desc.Kind != typedesc.KindParameterized || len(desc.Args) != 2 {
			return nil, e.invalid(class, prop, "map requires exactly 2 type arguments")
		}

		key, err := e.Resolve(class, prop, desc.Args[0])
		if err != nil {
			return nil, err
		}

		val, err := e.Resolve(class, prop, desc.Args[1])
		if err != nil {
			return nil, err
		}

		e.trace(class, prop, desc, "map")

		return strategy.Optional(strategy.Map{Key: key, Value: val}), nil
	}

	// 4. The generic list/set interfaces, bound to fixed concrete
	// implementations.
	if (desc.ID == registry.ListID || desc.ID == registry.SetID) &&
		e.allowed.Has(options.FamilyCollection) {
		if desc.Kind != typedesc.KindParameterized || len(desc.Args) != 1 {
			return nil, e.invalid(class, prop, desc.ID.Name+" requires exactly 1 type argument")
		}

		elem, err := e.Resolve(class, prop, desc.Args[0])
		if err != nil {
			return nil, err
		}

		kind := strategy.CollectionList
		if desc.ID == registry.SetID {
			kind = strategy.CollectionSet
		}

		e.trace(class, prop, desc, "collection")

		return strategy.Optional(strategy.Collection{
			Kind:     kind,
			Elem:     elem,
			ElemType: desc.Args[0],
		}), nil
	}

	// 5. The sparse integer-keyed container takes exactly one raw argument.
	if desc.ID == registry.SparseArrayID && e.allowed.Has(options.FamilySparse) {
		if desc.Kind != typedesc.KindParameterized || len(desc.Args) != 1 {
			return nil, e.invalid(class, prop, "sparse container requires exactly 1 type argument")
		}

		if !desc.Args[0].IsRaw() {
			return nil, e.invalid(class, prop,
				"sparse container requires a raw element type, have "+desc.Args[0].String())
		}

		// The strategy dispatches through the codec table, which only ever
		// holds class codecs, so the element must speak the native protocol.
		native, err := registry.IsSubclassOf(e.reg, desc.Args[0], typedesc.RawOf(registry.StreamableID))
		if err != nil {
			return nil, err
		}

		if !native {
			return nil, e.invalid(class, prop,
				"sparse container requires a native-protocol element, have "+desc.Args[0].String())
		}

		e.trace(class, prop, desc, "sparse")

		return strategy.Optional(strategy.SparseMap{
			Elem:   desc.Args[0].ID,
			Codecs: e.codecs,
		}), nil
	}

	// 6. The boolean-keyed sparse container has a dedicated strategy.
	if desc.ID == registry.SparseBoolArrayID && e.allowed.Has(options.FamilySparse) {
		e.trace(class, prop, desc, "sparsebool")
		return strategy.Optional(strategy.SparseBool{}), nil
	}

	// 7. The native self-describing protocol outranks the opaque fallback.
	native, err := registry.IsSubclassOf(e.reg, raw, typedesc.RawOf(registry.StreamableID))
	if err != nil {
		return nil, err
	}

	if native && e.allowed.Has(options.FamilyExternal) {
		e.trace(class, prop, desc, "native")
		return strategy.Native{Type: desc.ID, Codecs: e.codecs}, nil
	}

	// 9. The opaque-serializable protocol is the last fallback.
	opaque, err := registry.IsSubclassOf(e.reg, raw, typedesc.RawOf(registry.SerializableID))
	if err != nil {
		return nil, err
	}

	if opaque && e.allowed.Has(options.FamilyExternal) {
		e.trace(class, prop, desc, "opaque")
		return strategy.OpaqueBlob{}, nil
	}

	// 10. Nothing matched.
	return nil, errors.WithStack(&UnsupportedPropertyTypeError{
		Class:    class.ID,
		Property: prop.Name,
		Type:     desc,
	})
}

// 8. Arrays wrap the recursively resolved element strategy; the length is
// written and read explicitly.
func (e *Engine) resolveArray(
	class *schema.ClassSpec, prop *schema.PropertySpec, desc *typedesc.Type,
) (strategy.Strategy, error) {
	if !e.allowed.Has(options.FamilyArray) {
		return nil, errors.WithStack(&UnsupportedPropertyTypeError{
			Class:    class.ID,
			Property: prop.Name,
			Type:     desc,
		})
	}

	elem, err := e.Resolve(class, prop, desc.Elem)
	if err != nil {
		return nil, err
	}

	e.trace(class, prop, desc, "array")

	return strategy.Optional(strategy.Array{Elem: elem, ElemType: desc.Elem}), nil
}

func (e *Engine) invalid(
	class *schema.ClassSpec, prop *schema.PropertySpec, reason string,
) error {
	return errors.WithStack(&InvalidDeclarationError{
		Class:    class.ID,
		Property: prop.Name,
		Reason:   reason,
	})
}

func (e *Engine) trace(
	class *schema.ClassSpec, prop *schema.PropertySpec, desc *typedesc.Type, branch string,
) {
	e.log.Debug("resolved property",
		zap.Stringer("class", class.ID),
		zap.String("property", prop.Name),
		zap.Stringer("type", desc),
		zap.String("branch", branch),
	)
}
