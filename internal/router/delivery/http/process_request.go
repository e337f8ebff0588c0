package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/internal/router"
)

// processRouteReq binds the route request body and resolves its strategy.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, router.Strategy, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, router.StrategyDefault, err
	}
	strategy, err := req.validate()
	return req, strategy, err
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAgentReq(c *gin.Context) (agentReq, error) {
	var req agentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processServiceReq(c *gin.Context) (serviceReq, error) {
	var req serviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
