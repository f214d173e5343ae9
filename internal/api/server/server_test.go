package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-goblet/internal/api/middleware"
	"github.com/feral-file/ff-goblet/internal/api/rest"
	"github.com/feral-file/ff-goblet/internal/metrics"
)

func TestRouter_ServesHealthAndMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	s := New(Config{}, rest.NewHandler(false, nil, nil, nil), metrics.New(registry), registry)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `goblet_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_WithoutGatherer(t *testing.T) {
	s := New(Config{}, rest.NewHandler(false, nil, nil, nil), nil, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShutdown_NotStarted(t *testing.T) {
	s := New(Config{}, rest.NewHandler(false, nil, nil, nil), nil, nil)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestRouter_CORSOrigins(t *testing.T) {
	s := New(Config{CORSOrigins: []string{"https://feralfile.com"}}, rest.NewHandler(false, nil, nil, nil), nil, nil)
	router := s.Router()

	tests := []struct {
		origin  string
		allowed bool
	}{
		{origin: "https://feralfile.com", allowed: true},
		{origin: "https://evil.example", allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.allowed {
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Equal(t, http.StatusForbidden, w.Code)
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
