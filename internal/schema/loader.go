package schema

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"adapter-generator/internal/registry"
	"adapter-generator/typedesc"
)

// Schema is the parsed content of a schema file: the declared classes in
// file order plus the enum declarations needed to mirror them.
type Schema struct {
	Version string
	Classes []*ClassSpec

	enums      []enumDecl
	implements map[typedesc.TypeID][]typedesc.TypeID
}

type schemaFile struct {
	Version string      `yaml:"version"`
	Enums   []enumDecl  `yaml:"enums"`
	Classes []classDecl `yaml:"classes"`
}

type enumDecl struct {
	ID        string   `yaml:"id"`
	Constants []string `yaml:"constants"`
}

type classDecl struct {
	ID         string     `yaml:"id"`
	Implements []string   `yaml:"implements"`
	Properties []propDecl `yaml:"properties"`
}

type propDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var sf schemaFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema YAML")
	}

	if sf.Version == "" {
		sf.Version = "1"
	}

	s := &Schema{
		Version:    sf.Version,
		enums:      sf.Enums,
		implements: map[typedesc.TypeID][]typedesc.TypeID{},
	}

	for _, c := range sf.Classes {
		if c.ID == "" {
			return nil, errors.New("schema: class with empty id")
		}

		spec, err := parseClass(c)
		if err != nil {
			return nil, err
		}

		s.Classes = append(s.Classes, spec)
		s.implements[spec.ID] = lo.Map(c.Implements, func(name string, _ int) typedesc.TypeID {
			return ParseTypeID(name)
		})
	}

	return s, nil
}

func parseClass(c classDecl) (*ClassSpec, error) {
	id := ParseTypeID(c.ID)
	spec := &ClassSpec{ID: id}
	seen := map[string]struct{}{}

	for _, p := range c.Properties {
		if p.Name == "" {
			return nil, errors.Newf("schema: class %s has a property with no name", id)
		}

		if _, dup := seen[p.Name]; dup {
			return nil, errors.Newf("schema: class %s declares property %s twice", id, p.Name)
		}

		seen[p.Name] = struct{}{}

		t, err := ParseTypeExpr(p.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "schema: class %s property %s", id, p.Name)
		}

		spec.Properties = append(spec.Properties, PropertySpec{Name: p.Name, Type: t})
	}

	return spec, nil
}

// Registry builds the registry snapshot implied by the schema: one mirror
// per declared class (fields from properties, declared interfaces plus the
// native protocol every generated class speaks) and one per enum.
func (s *Schema) Registry() (registry.Registry, error) {
	b := registry.NewBuilder()

	for _, e := range s.enums {
		if len(e.Constants) == 0 {
			return nil, errors.Newf("schema: enum %s declares no constants", e.ID)
		}

		b.AddEnum(ParseTypeID(e.ID), e.Constants...)
	}

	for _, c := range s.Classes {
		ifaces := append([]typedesc.TypeID{registry.StreamableID}, s.implements[c.ID]...)

		b.AddClass(&registry.ClassMirror{
			ID:         c.ID,
			Interfaces: ifaces,
			Fields: lo.Map(c.Properties, func(p PropertySpec, _ int) registry.FieldMirror {
				return registry.FieldMirror{Name: p.Name, Type: p.Type}
			}),
		})
	}

	return b.Build()
}
