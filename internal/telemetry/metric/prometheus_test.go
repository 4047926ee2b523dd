package metric

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.TokensGenerated == nil || r.GenerationFailures == nil || r.GenerationDuration == nil {
		t.Fatal("NewRegistry left metrics unset")
	}

	r.TokensGenerated.WithLabelValues("manual").Inc()
	if got := testutil.ToFloat64(r.TokensGenerated.WithLabelValues("manual")); got != 1 {
		t.Errorf("tokens_generated_total = %v, want 1", got)
	}
}

func TestRegistries_AreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.TokensGenerated.WithLabelValues("uuid").Inc()

	if got := testutil.ToFloat64(b.TokensGenerated.WithLabelValues("uuid")); got != 0 {
		t.Errorf("second registry counter = %v, want 0", got)
	}
}

func TestGlobal(t *testing.T) {
	if Global() != Global() {
		t.Error("Global should return the same registry")
	}
}

func TestRegistry_WriteText(t *testing.T) {
	r := NewRegistry()
	r.TokensGenerated.WithLabelValues("random_bytes").Add(3)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# TYPE tokens_generated_total counter") {
		t.Errorf("missing TYPE line: %q", out)
	}
	if !strings.Contains(out, `tokens_generated_total{adapter="random_bytes"} 3`) {
		t.Errorf("missing sample: %q", out)
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.GenerationFailures.WithLabelValues("random_int").Inc()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `tokens_generation_failures_total{adapter="random_int"} 1`) {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}
