package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/usersvc/internal/config"
	"github.com/deppfellow/usersvc/internal/middleware"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/labstack/echo/v4"
)

// pingFunc checks one dependency.
type pingFunc func(ctx context.Context) error

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks map[string]pingFunc
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	checks := make(map[string]pingFunc)
	if s.DB != nil {
		checks[config.HealthCheckDatabase] = s.DB.Pool.Ping
	}
	if s.Redis != nil {
		checks[config.HealthCheckRedis] = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
	}
}

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth runs every configured check, each bounded by the configured
// timeout. It returns 200 when all pass and 503 when any fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}

	for _, name := range []string{config.HealthCheckDatabase, config.HealthCheckRedis} {
		if !obs.HealthCheckEnabled(name) {
			continue
		}

		result := h.runCheck(c.Request().Context(), name, obs.HealthChecks.Timeout)
		response.Checks[name] = result

		if result.Status != "healthy" {
			response.Status = "unhealthy"
			logger.Error().
				Str("check", name).
				Str("error", result.Error).
				Str("response_time", result.ResponseTime).
				Msg("health check failed")
			h.recordFailure(name, result)
			continue
		}

		logger.Debug().
			Str("check", name).
			Str("response_time", result.ResponseTime).
			Msg("health check passed")
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(parent context.Context, name string, timeout time.Duration) CheckResult {
	ping, ok := h.checks[name]
	if !ok {
		return CheckResult{Status: "unhealthy", ResponseTime: "0s", Error: name + " not configured"}
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	result := CheckResult{Status: "healthy", ResponseTime: time.Since(checkStart).String()}
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
	}
	return result
}

// recordFailure records a HealthCheckError custom event in New Relic.
func (h *HealthHandler) recordFailure(name string, result CheckResult) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    name,
		"operation":     "health_check",
		"error_type":    name + "_unhealthy",
		"response_time": result.ResponseTime,
		"error_message": result.Error,
	})
}
