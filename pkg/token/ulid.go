package token

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates lexicographically sortable identifiers (26 characters,
// Crockford base32).
type ULID struct {
	reader io.Reader
	now    func() time.Time
}

// ULIDOption configures a ULID generator.
type ULIDOption func(*ULID)

// WithULIDReader replaces crypto/rand.Reader as the entropy source.
func WithULIDReader(r io.Reader) ULIDOption {
	return func(g *ULID) {
		g.reader = r
	}
}

// WithULIDClock sets the clock used for the timestamp component.
func WithULIDClock(now func() time.Time) ULIDOption {
	return func(g *ULID) {
		g.now = now
	}
}

// NewULID creates a ULID generator.
func NewULID(opts ...ULIDOption) *ULID {
	g := &ULID{
		reader: rand.Reader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new ULID string.
func (g *ULID) Generate() (Value, error) {
	id, err := ulid.New(ulid.Timestamp(g.now()), g.reader)
	if err != nil {
		return Value{}, ErrGenerationFailure.WithDetails("ulid").WithCause(err)
	}
	return StringValue(id.String()), nil
}

func (g *ULID) String() string {
	return "ulid"
}
