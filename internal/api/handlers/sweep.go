package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/cache"
)

// SweepHandler provides the manual cache sweep endpoint.
type SweepHandler struct {
	cache *cache.PriceCache
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(c *cache.PriceCache) *SweepHandler {
	return &SweepHandler{cache: c}
}

// SweepOutput is the response for a cache sweep.
type SweepOutput struct {
	Body struct {
		Deleted int `json:"deleted" doc:"Number of expired entries removed"`
	}
}

// Sweep removes expired price cache entries immediately.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	deleted, err := h.cache.SweepExpired(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("cache sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.Deleted = deleted
	return resp, nil
}

// RegisterSweepRoutes registers the cache sweep endpoint with the Huma API.
func RegisterSweepRoutes(api huma.API, h *SweepHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "sweep-cache",
		Method:      http.MethodPost,
		Path:        "/api/v1/cache/sweep",
		Summary:     "Sweep expired cache entries",
		Description: "Deletes price cache entries past their expiry and reports how many were removed.",
		Tags:        []string{"cache"},
	}, h.Sweep)
}
