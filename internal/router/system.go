package router

import (
	"github.com/deppfellow/usersvc/internal/handler"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API:
//  1. /status for load balancers and monitors
//  2. /metrics for Prometheus
//  3. /docs and /static for the OpenAPI UI and document
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	r.StaticFS("/static", handler.StaticFiles)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
