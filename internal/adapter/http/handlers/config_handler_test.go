package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestConfigHandler_GetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewConfigHandler("pk_test_123", t.TempDir())
	r := gin.New()
	r.GET("/config", h.GetConfig)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"publishableKey":"pk_test_123"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestConfigHandler_Index(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves index.html", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>checkout</html>"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		h := NewConfigHandler("pk", dir)
		r := gin.New()
		r.GET("/", h.Index)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "checkout") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		h := NewConfigHandler("pk", t.TempDir())
		r := gin.New()
		r.GET("/", h.Index)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
