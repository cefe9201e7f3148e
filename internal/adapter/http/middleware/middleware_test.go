package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_gateway/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyReqID)) })

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != "req-123" || w.Header().Get(HeaderRequestID) != "req-123" {
			t.Fatalf("unexpected id: body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("assigns one when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if len(w.Header().Get(HeaderRequestID)) != 36 {
			t.Fatalf("expected uuid request id, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRequestLogger_ContextLoggerCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(base))
	r.GET("/items/:id", func(c *gin.Context) {
		log.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	req.Header.Set(HeaderRequestID, "req-9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	var inner, access map[string]any
	_ = json.Unmarshal([]byte(lines[0]), &inner)
	_ = json.Unmarshal([]byte(lines[1]), &access)

	if inner["request_id"] != "req-9" {
		t.Fatalf("handler log missing request id: %s", lines[0])
	}
	if access["route"] != "/items/:id" || access["status"] != float64(http.StatusNoContent) {
		t.Fatalf("unexpected access log: %s", lines[1])
	}
}

func TestMetrics_LabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := observability.NewHTTPMetrics("test", reg)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/retrieve/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/retrieve/a", "/retrieve/b", "/missing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "test_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			route := ""
			for _, l := range metric.GetLabel() {
				if l.GetName() == "route" {
					route = l.GetValue()
				}
			}
			counts[route] += metric.GetCounter().GetValue()
		}
	}
	if counts["/retrieve/:id"] != 2 || counts["unknown"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != `{"error":"An internal error occurred","code":"INTERNAL_ERROR"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if _, err := RateLimit("ten-per-minute"); err == nil {
		t.Fatalf("expected invalid format to fail")
	}

	mw, err := RateLimit("2-M")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}
}
