// Package handlers implements HTTP handlers for the card-price-tracker API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dimedrop/card-price-tracker/internal/store"
)

// HealthHandler serves the liveness and readiness probes. These stay on
// plain echo routes, outside the versioned API surface.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

type probeStatus struct {
	Status string `json:"status"`
}

// Healthz reports that the process is up.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, probeStatus{Status: "ok"})
}

// Readyz reports whether the store is reachable: 200 when a ping
// succeeds, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, probeStatus{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, probeStatus{Status: "ready"})
}
