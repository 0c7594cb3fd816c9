package schema

import (
	"strings"

	"github.com/cockroachdb/errors"

	"adapter-generator/internal/registry"
	"adapter-generator/typedesc"
)

// Short names the type-expression grammar resolves without qualification.
var shortNames = map[string]typedesc.TypeID{
	"bool":       registry.BoolID,
	"byte":       registry.ByteID,
	"char":       registry.CharID,
	"int16":      registry.Int16ID,
	"int32":      registry.Int32ID,
	"int64":      registry.Int64ID,
	"float32":    registry.Float32ID,
	"float64":    registry.Float64ID,
	"text":       registry.TextID,
	"blob":       registry.BlobID,
	"object":     registry.ObjectRootID,
	"list":       registry.ListID,
	"set":        registry.SetID,
	"map":        registry.MapID,
	"sparse":     registry.SparseArrayID,
	"sparsebool": registry.SparseBoolArrayID,
}

// boxedOfPrimitive maps a primitive id to the boxed id the `?` suffix
// denotes.
var boxedOfPrimitive = map[typedesc.TypeID]typedesc.TypeID{
	registry.BoolID:    registry.BoxedBoolID,
	registry.ByteID:    registry.BoxedByteID,
	registry.CharID:    registry.BoxedCharID,
	registry.Int16ID:   registry.BoxedInt16ID,
	registry.Int32ID:   registry.BoxedInt32ID,
	registry.Int64ID:   registry.BoxedInt64ID,
	registry.Float32ID: registry.BoxedFloat32ID,
	registry.Float64ID: registry.BoxedFloat64ID,
}

// ParseTypeExpr parses a declared type expression into a descriptor.
//
// Grammar:
//
//	type   := base suffix*
//	base   := name ( "<" type ( "," type )* ">" )?
//	suffix := "[]" (array) | "?" (boxed primitive)
//
// Names are the short names above or dot-qualified raw type ids.
func ParseTypeExpr(expr string) (*typedesc.Type, error) {
	p := &exprParser{src: expr}

	t, err := p.parseType()
	if err != nil {
		return nil, errors.Wrapf(err, "type expression %q", expr)
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return nil, errors.Newf("type expression %q: trailing input at offset %d", expr, p.pos)
	}

	return t, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *exprParser) parseType() (*typedesc.Type, error) {
	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()

		switch {
		case strings.HasPrefix(p.src[p.pos:], "[]"):
			p.pos += 2
			base = typedesc.ArrayOf(base)

		case p.peek() == '?':
			p.pos++

			boxed, ok := typedesc.TypeID{}, false
			if base.IsRaw() {
				boxed, ok = boxedOfPrimitive[base.ID]
			}

			if !ok {
				return nil, errors.Newf("'?' requires a primitive, have %s", base)
			}

			base = typedesc.RawOf(boxed)

		default:
			return base, nil
		}
	}
}

func (p *exprParser) parseBase() (*typedesc.Type, error) {
	p.skipSpace()

	name := p.scanName()
	if name == "" {
		return nil, errors.Newf("expected type name at offset %d", p.pos)
	}

	id, ok := shortNames[name]
	if !ok {
		id = ParseTypeID(name)
	}

	p.skipSpace()

	if p.peek() != '<' {
		return typedesc.RawOf(id), nil
	}

	p.pos++ // consume '<'

	var args []*typedesc.Type

	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
		p.skipSpace()

		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return typedesc.ParameterizedOf(id, args...), nil
		default:
			return nil, errors.Newf("expected ',' or '>' at offset %d", p.pos)
		}
	}
}

func (p *exprParser) scanName() string {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

func isNameByte(c byte) bool {
	return c == '.' || c == '_' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
