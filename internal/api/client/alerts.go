package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// alertRequest contains only the fields the API accepts for create/update.
type alertRequest struct {
	CardName    string                `json:"card_name"`
	TargetPrice float64               `json:"target_price"`
	Direction   domain.AlertDirection `json:"direction"`
	Active      bool                  `json:"active"`
}

// alertListResponse is the wire shape of the alert list endpoint.
type alertListResponse struct {
	Alerts []domain.Alert `json:"alerts"`
	Count  int            `json:"count"`
}

// CreateAlert creates a new price alert.
func (c *Client) CreateAlert(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	var created domain.Alert
	req := alertRequest{
		CardName:    a.CardName,
		TargetPrice: a.TargetPrice,
		Direction:   a.Direction,
		Active:      a.Active,
	}
	if err := c.post(ctx, "/api/v1/alerts", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetAlert returns a single alert by ID.
func (c *Client) GetAlert(ctx context.Context, id int64) (*domain.Alert, error) {
	var a domain.Alert
	if err := c.get(ctx, fmt.Sprintf("/api/v1/alerts/%d", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAlerts returns alerts, optionally only armed ones.
func (c *Client) ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	path := "/api/v1/alerts"
	if activeOnly {
		q := url.Values{}
		q.Set("active", "true")
		path += "?" + q.Encode()
	}

	var resp alertListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

// UpdateAlert replaces an alert's target, direction, and armed state.
func (c *Client) UpdateAlert(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	var updated domain.Alert
	req := alertRequest{
		CardName:    a.CardName,
		TargetPrice: a.TargetPrice,
		Direction:   a.Direction,
		Active:      a.Active,
	}
	if err := c.put(ctx, fmt.Sprintf("/api/v1/alerts/%d", a.ID), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAlert removes an alert by ID.
func (c *Client) DeleteAlert(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/alerts/%d", id), nil)
}
