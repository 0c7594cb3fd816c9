package strategy

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"adapter-generator/internal/rt"
	"adapter-generator/typedesc"
	"adapter-generator/utils"
)

// RuntimeRangeError reports an enum index read off the channel that no
// longer exists in the local declaration. It signals the enum changed
// between write and read, which is only detectable at read time.
type RuntimeRangeError struct {
	Type    typedesc.TypeID
	Ordinal int32
	Size    int
}

func (e *RuntimeRangeError) Error() string {
	return fmt.Sprintf("strategy: ordinal %d out of range for enum %s with %d constants",
		e.Ordinal, e.Type, e.Size)
}

// Enum writes the declaration-order index of a constant and reads by
// indexing the type's ordered constant list. It holds only the immutable
// constant list captured at resolution time.
type Enum struct {
	Type      typedesc.TypeID
	Constants []string
}

func (s Enum) Read(ctx Context) (any, error) {
	ordinal, err := ctx.Ch.ReadInt32()
	if err != nil {
		return nil, err
	}

	if !utils.IsInRange(0, int(ordinal), len(s.Constants)-1) {
		return nil, errors.WithStack(&RuntimeRangeError{
			Type:    s.Type,
			Ordinal: ordinal,
			Size:    len(s.Constants),
		})
	}

	return rt.EnumValue{Type: s.Type, Ordinal: ordinal, Name: s.Constants[ordinal]}, nil
}

func (s Enum) Write(ctx Context, v any) error {
	ev, ok := v.(rt.EnumValue)
	if !ok {
		return badValue("enum", v)
	}

	return ctx.Ch.WriteInt32(ev.Ordinal)
}
