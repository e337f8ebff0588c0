package httpserver

import (
	"context"

	routerHTTP "agent-router/internal/router/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupRouterDomain wires the router handler and registers /api/v1/router/*.
func (srv HTTPServer) setupRouterDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := routerHTTP.New(srv.l, srv.routerUC)
	routerHTTP.RegisterRoutes(api.Group("/router"), h, srv.mw)

	srv.l.Infof(ctx, "Router domain registered")
	return nil
}
