package token

import (
	"fmt"
)

// Generator produces a token value on demand.
type Generator interface {
	Generate() (Value, error)
}

// AdapterName returns the short name of a generator, used for metric labels
// and logging. Unknown implementations are named by their Go type.
func AdapterName(g Generator) string {
	switch g.(type) {
	case *Manual:
		return "manual"
	case *RandomBytes:
		return "random_bytes"
	case *RandomInt:
		return "random_int"
	case *ULID:
		return "ulid"
	case *UUID:
		return "uuid"
	case *NanoID:
		return "nanoid"
	case *KSUID:
		return "ksuid"
	case nil:
		return ""
	default:
		if n, ok := g.(interface{ AdapterName() string }); ok {
			return n.AdapterName()
		}
		return fmt.Sprintf("%T", g)
	}
}

// Describe renders a generator the way snapshots do: its String form when
// it has one, its adapter name otherwise.
func Describe(g Generator) string {
	if g == nil {
		return ""
	}
	if s, ok := g.(fmt.Stringer); ok {
		return s.String()
	}
	return AdapterName(g)
}

// Manual returns a caller supplied value, e.g. a JWT issued elsewhere.
type Manual struct {
	value string
}

// NewManual creates a Manual generator for value.
func NewManual(value string) *Manual {
	return &Manual{value: value}
}

// Generate returns the wrapped value unchanged.
func (g *Manual) Generate() (Value, error) {
	return StringValue(g.value), nil
}

func (g *Manual) String() string {
	return "manual"
}
