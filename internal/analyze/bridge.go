package analyze

import (
	"go/types"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"adapter-generator/internal/diagnostic"
	"adapter-generator/internal/registry"
	"adapter-generator/internal/schema"
	"adapter-generator/typedesc"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analysis is the outcome of one bridge run: class specifications for every
// convertible exported struct, the registry entries they imply, and
// diagnostics for the structs that could not be converted.
type Analysis struct {
	Classes     []*schema.ClassSpec
	Registry    registry.Registry
	Diagnostics diagnostic.Diagnostics
}

// Class returns the class specification for the given id, if emitted.
func (a *Analysis) Class(id typedesc.TypeID) (*schema.ClassSpec, bool) {
	for _, c := range a.Classes {
		if c.ID == id {
			return c, true
		}
	}

	return nil, false
}

// Bridge converts Go packages into declared classes.
type Bridge struct {
	log *zap.Logger
}

// NewBridge returns a bridge logging through the given logger.
func NewBridge(log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}

	return &Bridge{log: log}
}

// Load loads the packages matching the patterns and analyzes them. Patterns
// are standard Go package patterns ("./...", "example.com/mod/pkg").
func (b *Bridge) Load(patterns ...string) (*Analysis, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode}, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "analyze: load packages")
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, errors.Newf("analyze: package %s: %s", pkg.PkgPath, e.Msg)
		}
	}

	return b.Analyze(pkgs)
}

// Analyze converts the exported struct declarations of loaded packages. A
// struct with any inconvertible exported field is reported and skipped as a
// whole; remaining structs still convert.
func (b *Bridge) Analyze(pkgs []*packages.Package) (*Analysis, error) {
	decls := collectStructs(pkgs)

	universe := make(map[*types.TypeName]typedesc.TypeID, len(decls))
	for _, d := range decls {
		universe[d.obj] = d.id
	}

	out := &Analysis{}
	builder := registry.NewBuilder()

	for _, d := range decls {
		spec, err := b.classOf(d, universe)
		if err != nil {
			var bad *unsupportedShapeError
			if !errors.As(err, &bad) {
				return nil, err
			}

			out.Diagnostics.AddError("unsupported-go-shape", bad.Error(), d.id.String(), bad.Field)
			b.log.Warn("skipped struct", zap.Stringer("type", d.id), zap.Error(bad))

			continue
		}

		builder.AddClass(&registry.ClassMirror{
			ID:         d.id,
			Interfaces: []typedesc.TypeID{registry.StreamableID},
			Fields:     fieldMirrors(spec),
		})
		out.Classes = append(out.Classes, spec)

		b.log.Debug("converted struct",
			zap.Stringer("type", d.id),
			zap.Int("properties", len(spec.Properties)),
		)
	}

	reg, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "analyze: registry")
	}

	out.Registry = reg

	return out, nil
}

// structDecl is one exported named struct found in the loaded packages.
type structDecl struct {
	id  typedesc.TypeID
	obj *types.TypeName
	st  *types.Struct
}

func collectStructs(pkgs []*packages.Package) []structDecl {
	var decls []structDecl

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()

		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !tn.Exported() || tn.IsAlias() {
				continue
			}

			st, ok := tn.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}

			decls = append(decls, structDecl{
				id:  typedesc.TypeID{Package: pkg.Name, Name: name},
				obj: tn,
				st:  st,
			})
		}
	}

	return decls
}

func (b *Bridge) classOf(d structDecl, universe map[*types.TypeName]typedesc.TypeID) (*schema.ClassSpec, error) {
	spec := &schema.ClassSpec{ID: d.id}

	for i := range d.st.NumFields() {
		field := d.st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		desc, err := descriptorOf(field.Type(), universe)
		if err != nil {
			return nil, errors.WithStack(&unsupportedShapeError{
				Field:  field.Name(),
				Reason: err.Error(),
			})
		}

		spec.Properties = append(spec.Properties, schema.PropertySpec{
			Name: field.Name(),
			Type: desc,
		})
	}

	return spec, nil
}

// descriptorOf maps one Go type to a declared type descriptor.
func descriptorOf(t types.Type, universe map[*types.TypeName]typedesc.TypeID) (*typedesc.Type, error) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return basicDescriptor(tt)

	case *types.Pointer:
		return pointerDescriptor(tt, universe)

	case *types.Slice:
		if elem, ok := types.Unalias(tt.Elem()).(*types.Basic); ok && elem.Kind() == types.Uint8 {
			return typedesc.RawOf(registry.BlobID), nil
		}

		elem, err := descriptorOf(tt.Elem(), universe)
		if err != nil {
			return nil, err
		}

		return typedesc.ArrayOf(elem), nil

	case *types.Map:
		key, err := descriptorOf(tt.Key(), universe)
		if err != nil {
			return nil, err
		}

		val, err := descriptorOf(tt.Elem(), universe)
		if err != nil {
			return nil, err
		}

		return typedesc.ParameterizedOf(registry.MapID, key, val), nil

	case *types.Named:
		return namedDescriptor(tt, universe)

	default:
		return nil, errors.Newf("unsupported type %s", t)
	}
}

func basicDescriptor(t *types.Basic) (*typedesc.Type, error) {
	switch t.Kind() {
	case types.Bool:
		return typedesc.RawOf(registry.BoolID), nil
	case types.Int8, types.Uint8:
		return typedesc.RawOf(registry.ByteID), nil
	case types.Int16:
		return typedesc.RawOf(registry.Int16ID), nil
	case types.Int32:
		// rune is a distinct basic type in the universe scope.
		if t.Name() == "rune" {
			return typedesc.RawOf(registry.CharID), nil
		}

		return typedesc.RawOf(registry.Int32ID), nil
	case types.Int64:
		return typedesc.RawOf(registry.Int64ID), nil
	case types.Float32:
		return typedesc.RawOf(registry.Float32ID), nil
	case types.Float64:
		return typedesc.RawOf(registry.Float64ID), nil
	case types.String:
		return typedesc.RawOf(registry.TextID), nil
	default:
		// int, uint, uintptr and friends have no fixed wire width.
		return nil, errors.Newf("basic type %s has no fixed-width mapping", t.Name())
	}
}

func pointerDescriptor(t *types.Pointer, universe map[*types.TypeName]typedesc.TypeID) (*typedesc.Type, error) {
	elem, err := descriptorOf(t.Elem(), universe)
	if err != nil {
		return nil, err
	}

	if elem.IsRaw() {
		if boxed, ok := registry.BoxedOfPrimitive(elem.ID); ok {
			return typedesc.RawOf(boxed), nil
		}

		// Class-typed and text/blob values are already nullable references.
		if !registry.IsPrimitiveID(elem.ID) {
			return elem, nil
		}
	}

	return nil, errors.Newf("unsupported pointer type *%s", t.Elem())
}

func namedDescriptor(t *types.Named, universe map[*types.TypeName]typedesc.TypeID) (*typedesc.Type, error) {
	if id, ok := universe[t.Obj()]; ok {
		return typedesc.RawOf(id), nil
	}

	// A named type over a basic kind degrades to the underlying primitive.
	if basic, ok := t.Underlying().(*types.Basic); ok {
		return basicDescriptor(basic)
	}

	return nil, errors.Newf("external type %s", t.Obj().Name())
}

func fieldMirrors(spec *schema.ClassSpec) []registry.FieldMirror {
	mirrors := make([]registry.FieldMirror, 0, len(spec.Properties))
	for _, p := range spec.Properties {
		mirrors = append(mirrors, registry.FieldMirror{Name: p.Name, Type: p.Type})
	}

	return mirrors
}

// unsupportedShapeError reports one field whose Go type has no declared-type
// mapping.
type unsupportedShapeError struct {
	Field  string
	Reason string
}

func (e *unsupportedShapeError) Error() string {
	return "field " + e.Field + ": " + e.Reason
}
