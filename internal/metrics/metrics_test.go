package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_RecordsWrittenStatus(t *testing.T) {
	c := New(DefaultOptions())

	e := echo.New()
	e.Use(c.Middleware())
	e.GET("/ok", func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) })
	e.GET("/teapot", func(ctx echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })

	for _, path := range []string{"/ok", "/teapot", "/teapot"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodGet, "/ok", "204")); got != 1 {
		t.Errorf("/ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")); got != 2 {
		t.Errorf("/teapot count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsInFlight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
}

func TestObserveDatabaseError(t *testing.T) {
	c := New(DefaultOptions())

	c.ObserveDatabaseError("P2002", http.StatusConflict)
	c.ObserveDatabaseError("P2002", http.StatusConflict)

	if got := testutil.ToFloat64(c.dbErrorsTotal.WithLabelValues("P2002", "409")); got != 2 {
		t.Errorf("count = %v, want 2", got)
	}
}

func TestHandler_ExposesRegistry(t *testing.T) {
	c := New(DefaultOptions())
	c.ObserveDatabaseError("P2006", http.StatusNotFound)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(rec.Body.String(), `usersvc_database_errors_translated_total{code="P2006",status="404"} 1`) {
		t.Errorf("metric not exposed:\n%s", rec.Body.String())
	}
}
