package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agent-router/internal/httpserver"
	"agent-router/internal/load"
	"agent-router/internal/registry"
	"agent-router/internal/router/usecase"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()

	reg := prometheus.NewRegistry()
	metrics, err := stats.NewMetrics(reg)
	require.NoError(t, err)

	tracker := stats.New(log.NewNop(), stats.Options{Metrics: metrics})
	uc := usecase.New(log.NewNop(), registry.New(), semantic.New(), load.NewStatic(), tracker, usecase.Config{})
	t.Cleanup(uc.Close)

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Logger:        log.NewNop(),
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		Gatherer:      reg,
		RouterUseCase: uc,
	})
	require.NoError(t, err)
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "agent-router", path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestReadiness(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	body := `{"name":"deploy_agent","intents":["deployment"],"domains":["devops"],"declared_load":0.2,"performance_score":0.9}`
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/router/agents", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"agents":1`)
}

func TestMetricsRoute(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/router/route", strings.NewReader(`{"content":"deploy"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "router_history_size")
}

func TestNewValidation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err, "router usecase is required")
}
