package token

import (
	"github.com/segmentio/ksuid"
)

// KSUID generates K-sortable identifiers (27 characters, base62).
type KSUID struct{}

// NewKSUID creates a KSUID generator.
func NewKSUID() *KSUID {
	return &KSUID{}
}

// Generate returns a new KSUID.
func (g *KSUID) Generate() (Value, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return Value{}, ErrGenerationFailure.WithDetails("ksuid").WithCause(err)
	}
	return StringValue(id.String()), nil
}

func (g *KSUID) String() string {
	return "ksuid"
}
