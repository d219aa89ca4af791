package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/logger"
)

func TestNewRouter_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	svc := &mockStockService{stock: sampleStock()}
	r := NewRouter(NewHandler(svc))

	routes := map[string]bool{}
	for _, rt := range r.Routes() {
		routes[rt.Method+" "+rt.Path] = true
	}

	for _, want := range []string{
		"GET /api/stocks",
		"GET /api/stocks/random",
		"GET /api/stocks/symbols",
		"GET /api/polygon/stocks",
		"GET /swagger/*any",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestNewRouter_RequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	svc := &mockStockService{stock: sampleStock()}
	r := NewRouter(NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header not set")
	}
}
