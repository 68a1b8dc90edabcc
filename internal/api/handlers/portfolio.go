package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/portfolio"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// PortfolioHandler handles portfolio CRUD and valuation endpoints.
type PortfolioHandler struct {
	portfolio *portfolio.Service
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(svc *portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{portfolio: svc}
}

// --- Input/Output types ---

// AddPortfolioItemInput is the input for adding a holding.
type AddPortfolioItemInput struct {
	Body struct {
		CardName     string     `json:"card_name"               minLength:"1" maxLength:"200" doc:"Card name" example:"Wembanyama Prizm"`
		BuyPrice     float64    `json:"buy_price"               minimum:"0.01"                doc:"Purchase price per card"`
		Quantity     int        `json:"quantity"                minimum:"1"                   doc:"Number of copies"`
		Condition    string     `json:"condition,omitempty"     maxLength:"50"                doc:"Grade or condition" example:"PSA 10"`
		PurchaseDate *time.Time `json:"purchase_date,omitempty"                               doc:"When the card was bought"`
		Notes        string     `json:"notes,omitempty"         maxLength:"500"               doc:"Free-form notes"`
	}
}

// PortfolioItemOutput is the response for a single holding.
type PortfolioItemOutput struct {
	Body domain.PortfolioItem
}

// ListPortfolioOutput is the response for listing holdings.
type ListPortfolioOutput struct {
	Body struct {
		Items []domain.PortfolioItem `json:"items"`
		Count int                    `json:"count"`
	}
}

// PortfolioItemIDInput identifies a holding by ID.
type PortfolioItemIDInput struct {
	ID int64 `path:"id" doc:"Portfolio item ID"`
}

// PortfolioValuationOutput is the response for the valuation endpoint.
type PortfolioValuationOutput struct {
	Body portfolio.Report
}

// --- Handlers ---

// AddItem adds a new holding to the portfolio.
func (h *PortfolioHandler) AddItem(
	ctx context.Context,
	input *AddPortfolioItemInput,
) (*PortfolioItemOutput, error) {
	item := &domain.PortfolioItem{
		CardName:     input.Body.CardName,
		BuyPrice:     input.Body.BuyPrice,
		Quantity:     input.Body.Quantity,
		Condition:    input.Body.Condition,
		PurchaseDate: input.Body.PurchaseDate,
		Notes:        input.Body.Notes,
	}

	if err := h.portfolio.Add(ctx, item); err != nil {
		switch {
		case errors.Is(err, portfolio.ErrInvalidCardName),
			errors.Is(err, portfolio.ErrInvalidBuyPrice),
			errors.Is(err, portfolio.ErrInvalidQuantity):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("adding portfolio item: " + err.Error())
		}
	}

	return &PortfolioItemOutput{Body: *item}, nil
}

// GetItem returns a single holding by ID.
func (h *PortfolioHandler) GetItem(
	ctx context.Context,
	input *PortfolioItemIDInput,
) (*PortfolioItemOutput, error) {
	item, err := h.portfolio.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("portfolio item not found")
		}
		return nil, huma.Error500InternalServerError("getting portfolio item: " + err.Error())
	}

	return &PortfolioItemOutput{Body: *item}, nil
}

// ListItems returns all holdings.
func (h *PortfolioHandler) ListItems(
	ctx context.Context,
	_ *struct{},
) (*ListPortfolioOutput, error) {
	items, err := h.portfolio.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing portfolio: " + err.Error())
	}

	if items == nil {
		items = []domain.PortfolioItem{}
	}

	resp := &ListPortfolioOutput{}
	resp.Body.Items = items
	resp.Body.Count = len(items)

	return resp, nil
}

// DeleteItem removes a holding by ID.
func (h *PortfolioHandler) DeleteItem(
	ctx context.Context,
	input *PortfolioItemIDInput,
) (*struct{}, error) {
	if err := h.portfolio.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("portfolio item not found")
		}
		return nil, huma.Error500InternalServerError("deleting portfolio item: " + err.Error())
	}

	return &struct{}{}, nil
}

// GetValuation prices the whole portfolio against the current market.
func (h *PortfolioHandler) GetValuation(
	ctx context.Context,
	_ *struct{},
) (*PortfolioValuationOutput, error) {
	report, err := h.portfolio.Valuation(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("valuing portfolio: " + err.Error())
	}

	return &PortfolioValuationOutput{Body: *report}, nil
}

// RegisterPortfolioRoutes registers portfolio endpoints with the Huma API.
func RegisterPortfolioRoutes(api huma.API, h *PortfolioHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-portfolio-item",
		Method:        http.MethodPost,
		Path:          "/api/v1/portfolio",
		Summary:       "Add a portfolio holding",
		Tags:          []string{"portfolio"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.AddItem)

	huma.Register(api, huma.Operation{
		OperationID: "list-portfolio",
		Method:      http.MethodGet,
		Path:        "/api/v1/portfolio",
		Summary:     "List portfolio holdings",
		Tags:        []string{"portfolio"},
	}, h.ListItems)

	// The static valuation path registers ahead of the {id} routes so it
	// never resolves as a path parameter.
	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio-valuation",
		Method:      http.MethodGet,
		Path:        "/api/v1/portfolio/valuation",
		Summary:     "Value the portfolio",
		Description: "Prices every holding against the current market and aggregates profit/loss.",
		Tags:        []string{"portfolio"},
	}, h.GetValuation)

	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/portfolio/{id}",
		Summary:     "Get a portfolio holding",
		Tags:        []string{"portfolio"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-portfolio-item",
		Method:        http.MethodDelete,
		Path:          "/api/v1/portfolio/{id}",
		Summary:       "Delete a portfolio holding",
		Tags:          []string{"portfolio"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteItem)
}
