package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// DefaultLength is the default token length in hex characters.
const DefaultLength = 32

// RandomBytes generates cryptographically secure random tokens suitable for
// salts, keys and initialization vectors.
//
// Length counts hex characters: length/2 random bytes are drawn. In raw mode
// the bytes are returned as is, otherwise lowercase hex encoded.
type RandomBytes struct {
	length  int
	asBytes bool
	reader  io.Reader
}

// RandomBytesOption configures a RandomBytes generator.
type RandomBytesOption func(*RandomBytes)

// WithLength sets the token length. It must be positive and even.
func WithLength(length int) RandomBytesOption {
	return func(g *RandomBytes) {
		g.length = length
	}
}

// AsBytes selects raw byte output instead of hex.
func AsBytes() RandomBytesOption {
	return func(g *RandomBytes) {
		g.asBytes = true
	}
}

// WithBytesReader replaces crypto/rand.Reader as the entropy source.
func WithBytesReader(r io.Reader) RandomBytesOption {
	return func(g *RandomBytes) {
		g.reader = r
	}
}

// NewRandomBytes creates a RandomBytes generator.
func NewRandomBytes(opts ...RandomBytesOption) (*RandomBytes, error) {
	g := &RandomBytes{
		length: DefaultLength,
		reader: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.length <= 0 {
		return nil, ErrInvalidInput.WithDetailsf("random bytes length must be positive, got %d", g.length)
	}
	if g.length%2 != 0 {
		return nil, ErrInvalidInput.WithDetailsf("random bytes length must be even, got %d", g.length)
	}
	if g.reader == nil {
		return nil, ErrInvalidInput.WithDetails("random bytes reader is nil")
	}

	return g, nil
}

// Length returns the configured length.
func (g *RandomBytes) Length() int {
	return g.length
}

// Raw reports whether raw bytes are returned.
func (g *RandomBytes) Raw() bool {
	return g.asBytes
}

// Generate draws length/2 random bytes.
func (g *RandomBytes) Generate() (Value, error) {
	buf := make([]byte, g.length/2)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return Value{}, ErrGenerationFailure.WithDetails("entropy source failed").WithCause(err)
	}

	if g.asBytes {
		return Value{data: buf, binary: true}, nil
	}
	return Value{data: []byte(hex.EncodeToString(buf))}, nil
}

func (g *RandomBytes) String() string {
	return fmt.Sprintf("random_bytes(length=%d, bytes=%t)", g.length, g.asBytes)
}
