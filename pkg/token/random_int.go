package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// RandomInt generates cryptographically random integers in [min, max],
// suitable for numeric codes such as SMS pins. The digit count follows from
// the range: (1000, 9999) yields four digit pins.
type RandomInt struct {
	min    int64
	max    int64
	reader io.Reader
}

// RandomIntOption configures a RandomInt generator.
type RandomIntOption func(*RandomInt)

// WithIntReader replaces crypto/rand.Reader as the entropy source.
func WithIntReader(r io.Reader) RandomIntOption {
	return func(g *RandomInt) {
		g.reader = r
	}
}

// NewRandomInt creates a RandomInt generator. Bounds are checked when
// generating, not here.
func NewRandomInt(min, max int64, opts ...RandomIntOption) *RandomInt {
	g := &RandomInt{
		min:    min,
		max:    max,
		reader: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Min returns the lower bound.
func (g *RandomInt) Min() int64 {
	return g.min
}

// Max returns the upper bound.
func (g *RandomInt) Max() int64 {
	return g.max
}

// GenerateInt draws a uniformly distributed integer from [min, max].
func (g *RandomInt) GenerateInt() (int64, error) {
	if g.min > g.max {
		return 0, ErrGenerationFailure.WithDetailsf("min %d is greater than max %d", g.min, g.max)
	}
	if g.reader == nil {
		return 0, ErrGenerationFailure.WithDetails("entropy source is nil")
	}

	span := new(big.Int).Sub(big.NewInt(g.max), big.NewInt(g.min))
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(g.reader, span)
	if err != nil {
		return 0, ErrGenerationFailure.WithDetails("entropy source failed").WithCause(err)
	}

	return n.Add(n, big.NewInt(g.min)).Int64(), nil
}

// Generate returns GenerateInt as a decimal string.
func (g *RandomInt) Generate() (Value, error) {
	n, err := g.GenerateInt()
	if err != nil {
		return Value{}, err
	}
	return StringValue(strconv.FormatInt(n, 10)), nil
}

func (g *RandomInt) String() string {
	return fmt.Sprintf("random_int(min=%d, max=%d)", g.min, g.max)
}
