package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/pkg/response"
)

// Route godoc
// @Summary     Route a request
// @Description Picks the agent best suited to handle the request content. Never fails for a well-formed body; a low confidence signals the fallback route.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Request to route"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request - malformed body or unknown strategy"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/router/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, strategy, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput(), strategy)
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Stats godoc
// @Summary     Routing statistics
// @Tags        Router
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/router/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, h.newStatsResp(h.uc.Stats(c.Request.Context())))
}

// History godoc
// @Summary     Recent routing decisions
// @Description Most recent first.
// @Tags        Router
// @Produce     json
// @Param       limit query int false "Max records (default: 50, max: 1000)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/router/history [GET]
func (h *handler) History(c *gin.Context) {
	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(h.uc.History(c.Request.Context(), req.limit())))
}

// ListAgents godoc
// @Summary     List registered agents
// @Tags        Agents
// @Produce     json
// @Success     200 {object} listAgentsResp
// @Router      /api/v1/router/agents [GET]
func (h *handler) ListAgents(c *gin.Context) {
	response.OK(c, h.newListAgentsResp(h.uc.Agents(c.Request.Context())))
}

// RegisterAgent godoc
// @Summary     Register or replace an agent
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Capability profile"
// @Success     200  {object} registerResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Invalid profile"
// @Router      /api/v1/router/agents [POST]
func (h *handler) RegisterAgent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAgentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.RegisterAgent(ctx, req.Name, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.RegisterAgent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, registerResp{Name: req.Name, Created: created})
}

// DeregisterAgent godoc
// @Summary     Remove an agent
// @Tags        Agents
// @Produce     json
// @Param       name path string true "Agent name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/router/agents/{name} [DELETE]
func (h *handler) DeregisterAgent(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	if name == "" {
		response.Error(c, errNameRequired)
		return
	}

	if err := h.uc.DeregisterAgent(ctx, name); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// RegisterService godoc
// @Summary     Register or replace a service
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body serviceReq true "Service info"
// @Success     200  {object} registerResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/router/services [POST]
func (h *handler) RegisterService(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processServiceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.RegisterService(ctx, req.Name, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.RegisterService: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, registerResp{Name: req.Name, Created: created})
}
