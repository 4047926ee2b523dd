package token

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID generates NanoID identifiers with configurable size and alphabet.
type NanoID struct {
	size     int
	alphabet string
}

// NewNanoID creates a NanoID generator.
// size must be between 1 and 256. alphabet must have between 2 and 255 characters.
func NewNanoID(size int, alphabet string) (*NanoID, error) {
	if size < 1 || size > 256 {
		return nil, ErrInvalidInput.WithDetailsf("nanoid size must be between 1 and 256, got %d", size)
	}
	if n := len([]rune(alphabet)); n < 2 || n > 255 {
		return nil, ErrInvalidInput.WithDetailsf("nanoid alphabet must have between 2 and 255 characters, got %d", n)
	}
	return &NanoID{
		size:     size,
		alphabet: alphabet,
	}, nil
}

// Generate returns a new NanoID.
func (g *NanoID) Generate() (Value, error) {
	id, err := gonanoid.Generate(g.alphabet, g.size)
	if err != nil {
		return Value{}, ErrGenerationFailure.WithDetails("nanoid").WithCause(err)
	}
	return StringValue(id), nil
}

func (g *NanoID) String() string {
	return fmt.Sprintf("nanoid(size=%d)", g.size)
}
