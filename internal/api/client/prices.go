package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// GetPrices looks up prices for a card query.
func (c *Client) GetPrices(ctx context.Context, card string) (*domain.PriceReport, error) {
	var report domain.PriceReport
	if err := c.get(ctx, "/api/v1/prices/"+url.PathEscape(card), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// listingsResponse is the wire shape of the listings endpoint.
type listingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Count    int              `json:"count"`
}

// ListListings returns current marketplace listings for a card.
func (c *Client) ListListings(ctx context.Context, card string, limit int) ([]domain.Listing, error) {
	q := url.Values{}
	q.Set("card", card)
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	var resp listingsResponse
	if err := c.get(ctx, "/api/v1/listings?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Listings, nil
}

// QuotaStatus is today's eBay API budget as reported by the server.
type QuotaStatus struct {
	DailyLimit int       `json:"daily_limit"`
	DailyUsed  int       `json:"daily_used"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// GetQuota returns the current eBay API quota status.
func (c *Client) GetQuota(ctx context.Context) (*QuotaStatus, error) {
	var status QuotaStatus
	if err := c.get(ctx, "/api/v1/quota", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetSentiment analyzes collector sentiment for a card.
func (c *Client) GetSentiment(ctx context.Context, card string) (*domain.SentimentReport, error) {
	var report domain.SentimentReport
	if err := c.get(ctx, "/api/v1/sentiment/"+url.PathEscape(card), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SweepCache removes expired price cache entries and returns how many
// were deleted.
func (c *Client) SweepCache(ctx context.Context) (int, error) {
	var resp struct {
		Deleted int `json:"deleted"`
	}
	if err := c.post(ctx, "/api/v1/cache/sweep", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}
