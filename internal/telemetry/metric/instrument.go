package metric

import (
	"fmt"
	"time"

	"github.com/alt3/tokens-go/pkg/token"
)

// Instrumented wraps a generator and records its outcomes.
type Instrumented struct {
	next     token.Generator
	adapter  string
	registry *Registry
}

// Instrument wraps g so every Generate call is counted and timed in r.
// A nil r selects the global registry. Values and errors pass through unchanged.
func Instrument(g token.Generator, r *Registry) *Instrumented {
	if r == nil {
		r = Global()
	}
	return &Instrumented{
		next:     g,
		adapter:  token.AdapterName(g),
		registry: r,
	}
}

// Generate calls the wrapped generator.
func (i *Instrumented) Generate() (token.Value, error) {
	start := time.Now()
	v, err := i.next.Generate()
	i.registry.GenerationDuration.WithLabelValues(i.adapter).Observe(time.Since(start).Seconds())
	if err != nil {
		i.registry.GenerationFailures.WithLabelValues(i.adapter).Inc()
		return v, err
	}
	i.registry.TokensGenerated.WithLabelValues(i.adapter).Inc()
	return v, nil
}

// AdapterName reports the wrapped generator's name.
func (i *Instrumented) AdapterName() string {
	return i.adapter
}

func (i *Instrumented) String() string {
	if s, ok := i.next.(fmt.Stringer); ok {
		return s.String()
	}
	return i.adapter
}

// Unwrap returns the wrapped generator.
func (i *Instrumented) Unwrap() token.Generator {
	return i.next
}
