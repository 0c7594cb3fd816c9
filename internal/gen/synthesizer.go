package gen

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"adapter-generator/internal/diagnostic"
	"adapter-generator/internal/registry"
	"adapter-generator/internal/resolve"
	"adapter-generator/internal/schema"
	"adapter-generator/typedesc"
)

// Synthesizer turns resolved classes into registered codecs. Registration is
// what makes a class reachable through the native protocol: strategies for
// nested class-typed properties look the codec up by type id at run time, so
// mutually referential classes work as long as both get synthesized.
type Synthesizer struct {
	engine *resolve.Engine
	log    *zap.Logger
}

// NewSynthesizer wires a synthesizer over the resolution engine.
func NewSynthesizer(engine *resolve.Engine, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Synthesizer{engine: engine, log: log}
}

// Synthesize resolves one class and registers its codec in the engine's
// codec table. All-or-nothing: a class with any unresolvable property yields
// no codec and no registration.
func (s *Synthesizer) Synthesize(spec *schema.ClassSpec) (*ClassCodec, error) {
	resolved, err := s.engine.ResolveClass(spec)
	if err != nil {
		return nil, err
	}

	codec := &ClassCodec{spec: spec, props: resolved.Properties}
	s.engine.Codecs().Register(spec.ID, codec.asCodec())

	s.log.Debug("synthesized codec",
		zap.Stringer("class", spec.ID),
		zap.Int("properties", len(resolved.Properties)),
	)

	return codec, nil
}

// Result collects the outcome of a generation run: one codec per class that
// resolved, diagnostics for every class that did not.
type Result struct {
	Codecs      map[typedesc.TypeID]*ClassCodec
	Diagnostics diagnostic.Diagnostics
}

// GenerateAll synthesizes codecs for every class on a bounded worker pool.
// Classes are independent: a failing class is reported and skipped without
// affecting the rest. workers <= 0 means one worker per class.
func (s *Synthesizer) GenerateAll(classes []*schema.ClassSpec, workers int) (*Result, error) {
	if workers <= 0 {
		workers = max(len(classes), 1)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "gen: worker pool")
	}
	defer pool.Release()

	res := &Result{Codecs: make(map[typedesc.TypeID]*ClassCodec, len(classes))}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, spec := range classes {
		wg.Add(1)

		submitErr := pool.Submit(func() {
			defer wg.Done()

			codec, err := s.Synthesize(spec)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				res.Diagnostics.AddError(diagnoseCode(err), err.Error(), spec.ID.String(), diagnoseProperty(err))
				return
			}

			res.Codecs[spec.ID] = codec
		})
		if submitErr != nil {
			wg.Done()
			return nil, errors.Wrap(submitErr, "gen: submit")
		}
	}

	wg.Wait()

	s.log.Info("generation finished",
		zap.Int("classes", len(classes)),
		zap.Int("codecs", len(res.Codecs)),
		zap.Int("failures", len(res.Diagnostics.Errors)),
	)

	return res, nil
}

// ClassIDs lists the synthesized class ids in no particular order.
func (r *Result) ClassIDs() []typedesc.TypeID {
	return lo.Keys(r.Codecs)
}

func diagnoseCode(err error) string {
	var (
		unsupported *resolve.UnsupportedPropertyTypeError
		invalid     *resolve.InvalidDeclarationError
		structural  *registry.StructuralTypeError
	)

	switch {
	case errors.As(err, &unsupported):
		return "unsupported-property-type"
	case errors.As(err, &invalid):
		return "invalid-declaration"
	case errors.As(err, &structural):
		return "structural-type"
	default:
		return "resolve-failed"
	}
}

func diagnoseProperty(err error) string {
	var (
		unsupported *resolve.UnsupportedPropertyTypeError
		invalid     *resolve.InvalidDeclarationError
	)

	switch {
	case errors.As(err, &unsupported):
		return unsupported.Property
	case errors.As(err, &invalid):
		return invalid.Property
	default:
		return ""
	}
}
