package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agent-router/internal/load"
	"agent-router/internal/middleware"
	"agent-router/internal/registry"
	routerHTTP "agent-router/internal/router/delivery/http"
	"agent-router/internal/router/usecase"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type server struct {
	engine  *gin.Engine
	tracker *stats.Tracker
}

func newServer(t *testing.T) server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.New()
	for _, p := range registry.DefaultProfiles() {
		_, err := reg.RegisterAgent(p.AgentName, p)
		require.NoError(t, err)
	}
	tracker := stats.New(log.NewNop(), stats.Options{})
	uc := usecase.New(log.NewNop(), reg, semantic.New(), load.NewStatic(), tracker, usecase.Config{})
	t.Cleanup(uc.Close)

	engine := gin.New()
	h := routerHTTP.New(log.NewNop(), uc)
	routerHTTP.RegisterRoutes(engine.Group("/api/v1/router"), h, middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 6000}))
	return server{engine: engine, tracker: tracker}
}

func (s server) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestRouteEndpoint(t *testing.T) {
	s := newServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/router/route", map[string]any{
		"id":      "req-1",
		"content": "design a rest api for an authentication service",
	})
	require.Equal(t, http.StatusOK, code)

	var out struct {
		RequestID     string  `json:"request_id"`
		TargetAgent   string  `json:"target_agent"`
		TargetService string  `json:"target_service"`
		Confidence    float64 `json:"confidence"`
		Strategy      string  `json:"strategy"`
		Outcome       string  `json:"outcome"`
		Features      struct {
			Intent string `json:"intent"`
			Domain string `json:"domain"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))

	assert.Equal(t, "req-1", out.RequestID)
	assert.Equal(t, "architect_agent", out.TargetAgent)
	assert.Equal(t, "agent_squad", out.TargetService)
	assert.Equal(t, "intelligent", out.Strategy)
	assert.Equal(t, "matched", out.Outcome)
	assert.Equal(t, "architecture", out.Features.Intent)
	assert.Equal(t, "api", out.Features.Domain)
}

func TestRouteEndpointValidation(t *testing.T) {
	s := newServer(t)

	code, _ := s.do(t, http.MethodPost, "/api/v1/router/route", map[string]any{
		"content":  "deploy it",
		"strategy": "round_robin",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPost, "/api/v1/router/route", map[string]any{
		"content":  "deploy it",
		"priority": 99,
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStatsAndHistoryEndpoints(t *testing.T) {
	s := newServer(t)

	for _, strategy := range []string{"", "hybrid", "load_balanced"} {
		code, _ := s.do(t, http.MethodPost, "/api/v1/router/route", map[string]any{
			"content":  "deploy docker images to kubernetes",
			"strategy": strategy,
		})
		require.Equal(t, http.StatusOK, code)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.tracker.Flush(ctx))

	code, env := s.do(t, http.MethodGet, "/api/v1/router/stats", nil)
	require.Equal(t, http.StatusOK, code)
	var st struct {
		TotalRequests    uint64 `json:"total_requests"`
		SuccessfulRoutes uint64 `json:"successful_routes"`
		RegisteredAgents int    `json:"registered_agents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, uint64(3), st.TotalRequests)
	assert.Equal(t, uint64(3), st.SuccessfulRoutes)
	assert.Equal(t, 6, st.RegisteredAgents)

	code, env = s.do(t, http.MethodGet, "/api/v1/router/history?limit=2", nil)
	require.Equal(t, http.StatusOK, code)
	var hist struct {
		Items []struct {
			TargetAgent string `json:"target_agent"`
			Strategy    string `json:"strategy"`
		} `json:"items"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	assert.Equal(t, 2, hist.Count)
	assert.Equal(t, "load_balanced", hist.Items[0].Strategy)
	assert.Equal(t, "hybrid", hist.Items[1].Strategy)
}

func TestAgentEndpoints(t *testing.T) {
	s := newServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/router/agents", map[string]any{
		"name":              "docs_agent",
		"intents":           []string{"development"},
		"domains":           []string{"web"},
		"capabilities":      []string{"documentation"},
		"declared_load":     0.2,
		"performance_score": 0.8,
	})
	require.Equal(t, http.StatusOK, code)
	var reg struct {
		Name    string `json:"name"`
		Created bool   `json:"created"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.True(t, reg.Created)

	code, env = s.do(t, http.MethodGet, "/api/v1/router/agents", nil)
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 7, list.Count)

	code, _ = s.do(t, http.MethodPost, "/api/v1/router/agents", map[string]any{
		"name":              "bad_agent",
		"performance_score": 1.5,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodDelete, "/api/v1/router/agents/docs_agent", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodDelete, "/api/v1/router/agents/docs_agent", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, env.ErrorCode)
}

func TestServiceEndpoint(t *testing.T) {
	s := newServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/router/services", map[string]any{
		"name":     "agent_squad",
		"endpoint": "http://squad:8080",
	})
	require.Equal(t, http.StatusOK, code)
	var reg struct {
		Created bool `json:"created"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.True(t, reg.Created)

	code, _ = s.do(t, http.MethodPost, "/api/v1/router/services", map[string]any{"endpoint": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
}
