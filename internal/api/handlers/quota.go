package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/quota"
)

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	limiter *quota.DailyLimiter
	nowFunc func() time.Time
}

// QuotaHandlerOption configures a QuotaHandler.
type QuotaHandlerOption func(*QuotaHandler)

// WithQuotaNowFunc overrides the time source for tests.
func WithQuotaNowFunc(now func() time.Time) QuotaHandlerOption {
	return func(h *QuotaHandler) {
		h.nowFunc = now
	}
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(l *quota.DailyLimiter, opts ...QuotaHandlerOption) *QuotaHandler {
	h := &QuotaHandler{limiter: l, nowFunc: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int       `json:"daily_limit" example:"4800"                 doc:"Configured daily API call limit"`
		DailyUsed  int       `json:"daily_used"  example:"142"                  doc:"API calls used so far today (UTC)"`
		Remaining  int       `json:"remaining"   example:"4658"                 doc:"API calls remaining today"`
		ResetAt    time.Time `json:"reset_at"    example:"2025-10-02T00:00:00Z" doc:"Next UTC midnight, when the counter resets"`
	}
}

// GetQuota returns the current eBay API quota status.
func (h *QuotaHandler) GetQuota(ctx context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.limiter == nil {
		return resp, nil
	}

	used, limit, err := h.limiter.Usage(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("reading quota: " + err.Error())
	}

	remaining := max(limit-used, 0)

	now := h.nowFunc().UTC()
	resp.Body.DailyLimit = limit
	resp.Body.DailyUsed = used
	resp.Body.Remaining = remaining
	resp.Body.ResetAt = now.Truncate(24 * time.Hour).Add(24 * time.Hour)

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns today's API call usage, remaining budget, and the UTC reset time.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
