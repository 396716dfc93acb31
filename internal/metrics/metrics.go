// Package metrics exposes Prometheus collectors for the HTTP layer and
// for database errors after they have been translated.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the collector.
type Options struct {
	// Namespace prefixes every metric name.
	Namespace string

	// DurationBuckets are the request duration histogram buckets, in seconds.
	DurationBuckets []float64
}

// DefaultOptions returns the options used by the server.
func DefaultOptions() Options {
	return Options{
		Namespace:       "usersvc",
		DurationBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}
}

// Collector holds the Prometheus collectors and the registry they live in.
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	dbErrorsTotal    *prometheus.CounterVec
	registry         *prometheus.Registry
}

// New registers all collectors on a fresh registry.
func New(opts Options) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: opts.Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency distribution",
				Buckets:   opts.DurationBuckets,
			},
			[]string{"method", "path"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: opts.Namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being served",
			},
		),
		dbErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "database",
				Name:      "errors_translated_total",
				Help:      "Database errors translated into HTTP responses, by code and status",
			},
			[]string{"code", "status"},
		),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.requestsInFlight,
		c.dbErrorsTotal,
	)

	return c
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveDatabaseError counts one translated database error.
func (c *Collector) ObserveDatabaseError(code string, status int) {
	c.dbErrorsTotal.WithLabelValues(code, strconv.Itoa(status)).Inc()
}

// Middleware records request count, latency and in-flight requests.
//
// Errors returned by the chain are handed to the echo error handler here,
// so the recorded status is the one actually written to the client.
// It must be registered before any middleware that relies on seeing
// the returned error.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			c.requestsInFlight.Inc()
			defer c.requestsInFlight.Dec()

			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}

			status := ctx.Response().Status
			c.requestsTotal.WithLabelValues(ctx.Request().Method, path, strconv.Itoa(status)).Inc()
			c.requestDuration.WithLabelValues(ctx.Request().Method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
