package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/usersvc/internal/config"
	"github.com/deppfellow/usersvc/internal/handler"
	"github.com/deppfellow/usersvc/internal/metrics"
	"github.com/deppfellow/usersvc/internal/model/user"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/deppfellow/usersvc/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubUsers struct{}

func (stubUsers) Create(context.Context, *user.CreateUserRequest) (*user.User, error) {
	return nil, sqlerr.New(sqlerr.UniqueViolation, "duplicate key")
}

func (stubUsers) Get(context.Context, *user.GetUserRequest) (*user.User, error) {
	return nil, sqlerr.New(sqlerr.RecordNotFound, "no rows")
}

func newTestRouter(t *testing.T) (*echo.Echo, *server.Server) {
	t.Helper()

	logger := zerolog.Nop()
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Checks = nil

	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          1000,
			},
			Observability: obs,
		},
		Logger:  &logger,
		Metrics: metrics.New(metrics.DefaultOptions()),
	}

	h := &handler.Handlers{
		Health:  handler.NewHealthHandler(s),
		OpenAPI: handler.NewOpenAPIHandler(s),
		User:    handler.NewUserHandler(s, stubUsers{}),
	}

	return NewRouter(s, h), s
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	e, _ := newTestRouter(t)

	tests := []struct {
		method, path, body string
		wantStatus         int
	}{
		{http.MethodGet, "/status", "", http.StatusOK},
		{http.MethodGet, "/docs", "", http.StatusOK},
		{http.MethodGet, "/static/openapi.json", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/users/8c6e4a1e-8f6b-4c57-9d3a-2b1f0e7c9a11", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/users/42", "", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/users", `{"name":"Ada","email":"ada@example.com","password":"Engine#1843","passwordConfirm":"Engine#1843"}`, http.StatusBadRequest},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Header().Get(echo.HeaderXRequestID) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestRouter_ErrorBody(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, http.MethodPost, "/api/v1/users",
		`{"name":"Ada","email":"ada@example.com","password":"Engine#1843","passwordConfirm":"Engine#1843"}`)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"statusCode": float64(http.StatusBadRequest),
		"message":    "Prisma Client unique constraint violation.",
	}
	if len(body) != len(want) || body["statusCode"] != want["statusCode"] || body["message"] != want["message"] {
		t.Errorf("body = %v, want %v", body, want)
	}
}

func TestRouter_MetricsRecordWrittenStatus(t *testing.T) {
	e, _ := newTestRouter(t)

	serve(e, http.MethodGet, "/api/v1/users/42", "")
	rec := serve(e, http.MethodGet, "/metrics", "")

	out := rec.Body.String()
	for _, want := range []string{
		`usersvc_http_requests_total{method="GET",path="/api/v1/users/:id",status="400"} 1`,
		"usersvc_http_requests_in_flight",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
