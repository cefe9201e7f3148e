package observability

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestNewLogger_JSONWithLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := newLogger(&buf, "json", "warn")
	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "kept" || line["service"] != "payment_gateway" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	newLogger(&bytes.Buffer{}, "console", "loud")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}

func TestProviderMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewProviderMetrics("test", reg)
	m.Observe("create_customer", "ok", 20*time.Millisecond)
	m.Observe("create_customer", "rejected", 5*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var calls float64
	for _, mf := range families {
		if mf.GetName() != "test_payment_provider_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			calls += metric.GetCounter().GetValue()
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 provider calls, got %v", calls)
	}

	again := NewProviderMetrics("test", reg)
	if again.Requests != m.Requests {
		t.Fatalf("expected already registered collector to be reused")
	}

	var nilMetrics *ProviderMetrics
	nilMetrics.Observe("noop", "ok", time.Millisecond)
}

func TestNewHTTPMetrics_Reregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := NewHTTPMetrics("test", reg)
	b := NewHTTPMetrics("test", reg)
	if a.ReqTotal != b.ReqTotal || a.InFlight != b.InFlight {
		t.Fatalf("expected collectors to be shared")
	}
}
