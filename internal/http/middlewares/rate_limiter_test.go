package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(2, time.Minute))
	e.GET("/tasks", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests allowed, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited, got %d", codes[2])
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other clients must not be limited, got %d", rec.Code)
	}
}

func TestFixedWindows_ResetsAfterWindow(t *testing.T) {
	w := newFixedWindows(1, time.Minute)
	start := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

	if !w.allow("10.0.0.1", start) {
		t.Fatal("first request must pass")
	}
	if w.allow("10.0.0.1", start.Add(30*time.Second)) {
		t.Error("second request in the same window must be limited")
	}
	if !w.allow("10.0.0.1", start.Add(61*time.Second)) {
		t.Error("request in a new window must pass")
	}
}

func TestFixedWindows_DropsIdleClients(t *testing.T) {
	w := newFixedWindows(5, time.Minute)
	start := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		w.allow(ip, start)
	}
	if len(w.clients) != 3 {
		t.Fatalf("expected 3 tracked clients, got %d", len(w.clients))
	}

	w.allow("10.0.0.4", start.Add(2*time.Minute))
	if len(w.clients) != 1 {
		t.Errorf("expected idle clients dropped, got %d tracked", len(w.clients))
	}
	if _, ok := w.clients["10.0.0.4"]; !ok {
		t.Error("expected the new client to be tracked")
	}
}
