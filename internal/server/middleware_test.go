package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	})

	wrapped := LoggingMiddleware(inner)

	req := httptest.NewRequest("GET", "/check/example.com", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418 to pass through, got %d", w.Code)
	}

	if w.Body.String() != "body" {
		t.Errorf("Expected body to pass through, got %q", w.Body.String())
	}
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	wrapped := LoggingMiddleware(inner)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected implicit status 200, got %d", w.Code)
	}
}
