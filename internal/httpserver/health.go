package httpserver

import (
	"net/http"

	"agent-router/pkg/response"

	pkgErrors "agent-router/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "agent-router"
)

var errNoAgents = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no agents registered")

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Agents  int    `json:"agents,omitempty"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the router process is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthResp{Status: "healthy", Service: ServiceName, Version: HealthVersion})
}

// readyCheck reports ready once at least one agent can receive routes.
// @Summary Readiness Check
// @Description Ready when the capability registry holds at least one agent
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Router is ready"
// @Failure 503 {object} response.Resp "No agents registered"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	snap := srv.routerUC.Stats(c.Request.Context())
	if snap.RegisteredAgents == 0 {
		response.Error(c, errNoAgents)
		return
	}
	response.OK(c, healthResp{Status: "ready", Service: ServiceName, Version: HealthVersion, Agents: snap.RegisteredAgents})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the router process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthResp{Status: "alive", Service: ServiceName, Version: HealthVersion})
}
