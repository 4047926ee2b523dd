// Package metric provides Prometheus metrics for token generation.
//
//   - prometheus.go: Registry, HTTP handler and text exposition
//   - instrument.go: Generator wrapper recording per-adapter metrics
//
// Metrics:
//
//   - tokens_generated_total{adapter}
//   - tokens_generation_failures_total{adapter}
//   - tokens_generation_duration_seconds{adapter}
package metric
