package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"prod-tracker/internal/httpserver"
	"prod-tracker/internal/middleware"
	"prod-tracker/pkg/log"
)

func TestNewValidates(t *testing.T) {
	if _, err := httpserver.New(nil, httpserver.Config{Port: 8080, Mode: "test"}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test"}); err == nil {
		t.Error("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	l := log.NewNop()
	srv, err := httpserver.New(l, httpserver.Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Middleware:  middleware.New(l, 0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/live", http.StatusOK},
		{"/ready", http.StatusServiceUnavailable},
		{"/metrics", http.StatusOK},
		{"/api/v1/forms/x", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.code {
				t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.code)
			}
		})
	}
}
