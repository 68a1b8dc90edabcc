package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/pricing"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// PricesHandler handles card price lookup endpoints.
type PricesHandler struct {
	prices *pricing.Service
}

// NewPricesHandler creates a new PricesHandler.
func NewPricesHandler(svc *pricing.Service) *PricesHandler {
	return &PricesHandler{prices: svc}
}

// GetPricesInput is the input for a price lookup.
type GetPricesInput struct {
	Card string `path:"card" minLength:"3" maxLength:"200" doc:"Basketball card search query, e.g. 'Wembanyama Prizm'" example:"Wembanyama Prizm"`
}

// GetPricesOutput is the response for a price lookup.
type GetPricesOutput struct {
	Body struct {
		Items     []domain.PriceItem `json:"items"      doc:"Individual observed prices"`
		AvgPrice  float64            `json:"avg_price"  doc:"Average price, rounded to cents"`
		High      float64            `json:"high"       doc:"Highest observed price"`
		Low       float64            `json:"low"        doc:"Lowest observed price"`
		Count     int                `json:"count"      doc:"Number of observed prices"`
		Source    domain.PriceSource `json:"source"     doc:"Where the prices came from" enum:"ebay,synthetic"`
		Cached    bool               `json:"cached"     doc:"Whether the result was served from cache"`
		CacheDate time.Time          `json:"cache_date" doc:"When the underlying data was fetched"`
	}
}

// GetPrices looks up prices for a card query.
func (h *PricesHandler) GetPrices(
	ctx context.Context,
	input *GetPricesInput,
) (*GetPricesOutput, error) {
	report, err := h.prices.GetPrices(ctx, input.Card)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrQueryTooShort):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, pricing.ErrRateLimited):
			return nil, huma.Error429TooManyRequests(err.Error())
		default:
			return nil, huma.Error500InternalServerError("price lookup failed: " + err.Error())
		}
	}

	resp := &GetPricesOutput{}
	resp.Body.Items = report.Items
	resp.Body.AvgPrice = report.AvgPrice
	resp.Body.High = report.High
	resp.Body.Low = report.Low
	resp.Body.Count = report.Count
	resp.Body.Source = report.Source
	resp.Body.Cached = report.Cached
	resp.Body.CacheDate = report.CacheDate

	return resp, nil
}

// ListListingsInput is the input for a live listings lookup.
type ListListingsInput struct {
	Card  string `query:"card"  minLength:"3" maxLength:"200" doc:"Card name to search listings for" example:"Wembanyama Prizm"`
	Limit int    `query:"limit" minimum:"1"   maximum:"100"   doc:"Number of listings (default 20)"`
}

// ListListingsOutput is the response for a live listings lookup.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Count    int              `json:"count"`
	}
}

// ListListings returns current marketplace listings for a card.
func (h *PricesHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	listings, err := h.prices.GetLiveListings(ctx, input.Card, limit)
	if err != nil {
		if errors.Is(err, pricing.ErrQueryTooShort) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("listing lookup failed: " + err.Error())
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Count = len(listings)

	return resp, nil
}

// RegisterPriceRoutes registers price endpoints with the Huma API.
func RegisterPriceRoutes(api huma.API, h *PricesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-prices",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices/{card}",
		Summary:     "Get card prices",
		Description: "Returns observed prices for a card query, served from cache when fresh.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusTooManyRequests},
	}, h.GetPrices)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List live listings",
		Description: "Returns current marketplace listings for a card.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.ListListings)
}
