package rest

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	articlesServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_articles_served_total",
			Help: "Total number of article detail pages served",
		},
	)
)

// metricsMiddleware records request counts and latency, labelled by the
// route pattern rather than the raw URL to keep cardinality bounded.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}

		httpRequestsTotal.WithLabelValues(
			c.Request().Method, path, strconv.Itoa(c.Response().Status),
		).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request().Method, path,
		).Observe(time.Since(start).Seconds())

		return err
	}
}
