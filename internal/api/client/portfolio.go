package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/portfolio"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// portfolioRequest contains only the fields the API accepts for create.
type portfolioRequest struct {
	CardName     string     `json:"card_name"`
	BuyPrice     float64    `json:"buy_price"`
	Quantity     int        `json:"quantity"`
	Condition    string     `json:"condition,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// portfolioListResponse is the wire shape of the portfolio list endpoint.
type portfolioListResponse struct {
	Items []domain.PortfolioItem `json:"items"`
	Count int                    `json:"count"`
}

// AddPortfolioItem adds a holding to the portfolio.
func (c *Client) AddPortfolioItem(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	var created domain.PortfolioItem
	req := portfolioRequest{
		CardName:     item.CardName,
		BuyPrice:     item.BuyPrice,
		Quantity:     item.Quantity,
		Condition:    item.Condition,
		PurchaseDate: item.PurchaseDate,
		Notes:        item.Notes,
	}
	if err := c.post(ctx, "/api/v1/portfolio", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetPortfolioItem returns a single holding by ID.
func (c *Client) GetPortfolioItem(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	if err := c.get(ctx, fmt.Sprintf("/api/v1/portfolio/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListPortfolio returns all holdings.
func (c *Client) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var resp portfolioListResponse
	if err := c.get(ctx, "/api/v1/portfolio", &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// DeletePortfolioItem removes a holding by ID.
func (c *Client) DeletePortfolioItem(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/portfolio/%d", id), nil)
}

// GetValuation prices the whole portfolio against the current market.
func (c *Client) GetValuation(ctx context.Context) (*portfolio.Report, error) {
	var report portfolio.Report
	if err := c.get(ctx, "/api/v1/portfolio/valuation", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
