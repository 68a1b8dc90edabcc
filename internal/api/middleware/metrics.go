// Package middleware provides Echo middleware for card-price-tracker.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dimedrop/card-price-tracker/internal/metrics"
)

// probeGauges maps health probe paths to their up/down gauge. Probes and
// the scrape endpoint itself stay out of the request histogram and counter
// so high-frequency operational traffic does not drown the API series.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records per-route request counts
// and latency. Health probes update their gauges instead; /metrics is
// ignored entirely.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if gauge, ok := probeGauges[path]; ok {
				err := next(c)
				setProbeGauge(gauge, c.Response().Status)
				return err
			}
			if path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(elapsed)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// routePath prefers the registered route pattern over the raw URL so
// parameterized routes share one label value.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		gauge.Set(1)
		return
	}
	gauge.Set(0)
}
