// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/usersvc/internal/handler"
	"github.com/deppfellow/usersvc/internal/middleware"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain,
// the system routes and the versioned API.
//
// Order matters:
//   - metrics wrap everything so they see the status actually written
//   - the request ID and New Relic transaction exist before the request
//     logger is built
//   - rate limiting runs last so rejected requests are still logged
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		s.Metrics.Middleware(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)

	v1 := router.Group("/api/v1")
	registerUserRoutes(v1, h)

	return router
}

func registerUserRoutes(g *echo.Group, h *handler.Handlers) {
	users := g.Group("/users")
	users.POST("", h.User.CreateUser())
	users.GET("/:id", h.User.GetUser())
}
