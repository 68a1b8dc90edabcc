package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// AlertsHandler handles price alert CRUD endpoints.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// --- Input/Output types ---

// AlertRequestBody is the writable portion of an alert.
type AlertRequestBody struct {
	CardName    string  `json:"card_name"    minLength:"1" maxLength:"200"  doc:"Card name to watch" example:"Wembanyama Prizm"`
	TargetPrice float64 `json:"target_price" minimum:"0.01"                 doc:"Trigger price"`
	Direction   string  `json:"direction"    enum:"above,below"             doc:"Trigger when the price crosses above or below the target"`
	Active      bool    `json:"active"                                      doc:"Whether the alert is armed"`
}

// CreateAlertInput is the input for creating an alert.
type CreateAlertInput struct {
	Body AlertRequestBody
}

// AlertOutput is the response for a single alert.
type AlertOutput struct {
	Body domain.Alert
}

// ListAlertsInput is the input for listing alerts.
type ListAlertsInput struct {
	Active bool `query:"active" doc:"Only return armed alerts"`
}

// ListAlertsOutput is the response for listing alerts.
type ListAlertsOutput struct {
	Body struct {
		Alerts []domain.Alert `json:"alerts"`
		Count  int            `json:"count"`
	}
}

// AlertIDInput identifies an alert by ID.
type AlertIDInput struct {
	ID int64 `path:"id" doc:"Alert ID"`
}

// UpdateAlertInput is the input for updating an alert.
type UpdateAlertInput struct {
	ID   int64 `path:"id" doc:"Alert ID"`
	Body AlertRequestBody
}

// --- Handlers ---

// CreateAlert creates a new price alert.
func (h *AlertsHandler) CreateAlert(
	ctx context.Context,
	input *CreateAlertInput,
) (*AlertOutput, error) {
	a := &domain.Alert{
		CardName:    input.Body.CardName,
		TargetPrice: input.Body.TargetPrice,
		Direction:   domain.AlertDirection(input.Body.Direction),
		Active:      input.Body.Active,
	}
	if !a.Direction.Valid() {
		return nil, huma.Error422UnprocessableEntity("direction must be 'above' or 'below'")
	}

	if err := h.store.CreateAlert(ctx, a); err != nil {
		return nil, huma.Error500InternalServerError("creating alert: " + err.Error())
	}

	return &AlertOutput{Body: *a}, nil
}

// GetAlert returns a single alert by ID.
func (h *AlertsHandler) GetAlert(
	ctx context.Context,
	input *AlertIDInput,
) (*AlertOutput, error) {
	a, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("getting alert: " + err.Error())
	}

	return &AlertOutput{Body: *a}, nil
}

// ListAlerts returns alerts, optionally filtered to armed ones.
func (h *AlertsHandler) ListAlerts(
	ctx context.Context,
	input *ListAlertsInput,
) (*ListAlertsOutput, error) {
	alerts, err := h.store.ListAlerts(ctx, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing alerts: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Alerts = alerts
	resp.Body.Count = len(alerts)

	return resp, nil
}

// UpdateAlert replaces an alert's target, direction, and armed state.
// Re-arming a triggered alert is done here by setting active back to true.
func (h *AlertsHandler) UpdateAlert(
	ctx context.Context,
	input *UpdateAlertInput,
) (*AlertOutput, error) {
	a := &domain.Alert{
		ID:          input.ID,
		CardName:    input.Body.CardName,
		TargetPrice: input.Body.TargetPrice,
		Direction:   domain.AlertDirection(input.Body.Direction),
		Active:      input.Body.Active,
	}
	if !a.Direction.Valid() {
		return nil, huma.Error422UnprocessableEntity("direction must be 'above' or 'below'")
	}

	if err := h.store.UpdateAlert(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("updating alert: " + err.Error())
	}

	updated, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("reloading alert: " + err.Error())
	}

	return &AlertOutput{Body: *updated}, nil
}

// DeleteAlert removes an alert by ID.
func (h *AlertsHandler) DeleteAlert(
	ctx context.Context,
	input *AlertIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteAlert(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("deleting alert: " + err.Error())
	}

	return &struct{}{}, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create a price alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.CreateAlert)

	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List price alerts",
		Tags:        []string{"alerts"},
	}, h.ListAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Get a price alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAlert)

	huma.Register(api, huma.Operation{
		OperationID: "update-alert",
		Method:      http.MethodPut,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Update a price alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.UpdateAlert)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-alert",
		Method:        http.MethodDelete,
		Path:          "/api/v1/alerts/{id}",
		Summary:       "Delete a price alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteAlert)
}
