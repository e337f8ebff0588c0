package http

import (
	"agent-router/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Only /route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/route", mw.RateLimit(), h.Route)
	rg.GET("/stats", h.Stats)
	rg.GET("/history", h.History)

	agents := rg.Group("/agents")
	{
		agents.GET("", h.ListAgents)
		agents.POST("", h.RegisterAgent)
		agents.DELETE("/:name", h.DeregisterAgent)
	}

	rg.POST("/services", h.RegisterService)
}
