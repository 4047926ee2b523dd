package token

import (
	"crypto/rand"
	"io"

	"github.com/google/uuid"
)

// UUID generates random (version 4) UUIDs.
type UUID struct {
	reader io.Reader
}

// NewUUID creates a UUID generator. A nil reader selects crypto/rand.Reader.
func NewUUID(r io.Reader) *UUID {
	if r == nil {
		r = rand.Reader
	}
	return &UUID{reader: r}
}

// Generate returns a new UUID v4 in canonical form.
func (g *UUID) Generate() (Value, error) {
	id, err := uuid.NewRandomFromReader(g.reader)
	if err != nil {
		return Value{}, ErrGenerationFailure.WithDetails("uuid").WithCause(err)
	}
	return StringValue(id.String()), nil
}

func (g *UUID) String() string {
	return "uuid"
}
