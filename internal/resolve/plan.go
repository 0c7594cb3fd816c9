package resolve

import (
	"github.com/cockroachdb/errors"

	"adapter-generator/internal/schema"
	"adapter-generator/internal/strategy"
)

// ResolvedProperty pairs a declared property with its derived strategy.
type ResolvedProperty struct {
	Spec     schema.PropertySpec
	Strategy strategy.Strategy
}

// ResolvedClass is the all-or-nothing result of resolving one class:
// strategies for every property in declaration order.
type ResolvedClass struct {
	Spec       *schema.ClassSpec
	Properties []ResolvedProperty
}

// ResolveClass resolves every property of the class. If any property fails,
// the class produces no output at all; the first failure is returned wrapped
// with the class identity.
func (e *Engine) ResolveClass(spec *schema.ClassSpec) (*ResolvedClass, error) {
	out := &ResolvedClass{
		Spec:       spec,
		Properties: make([]ResolvedProperty, 0, len(spec.Properties)),
	}

	for i := range spec.Properties {
		prop := &spec.Properties[i]

		s, err := e.Resolve(spec, prop, prop.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", spec.ID)
		}

		out.Properties = append(out.Properties, ResolvedProperty{Spec: *prop, Strategy: s})
	}

	return out, nil
}
