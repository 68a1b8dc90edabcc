package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/api/handlers"
	"github.com/dimedrop/card-price-tracker/internal/store"
	storeMocks "github.com/dimedrop/card-price-tracker/internal/store/mocks"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func TestAlertsHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid alert",
			body: map[string]any{
				"card_name":    "Wembanyama Prizm",
				"target_price": 150.0,
				"direction":    "below",
				"active":       true,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateAlert(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
						return a.CardName == "Wembanyama Prizm" &&
							a.Direction == domain.AlertBelow &&
							a.Active
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"Wembanyama Prizm"`,
		},
		{
			name: "missing card name returns 422",
			body: map[string]any{
				"target_price": 150.0,
				"direction":    "below",
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property card_name to be present`,
		},
		{
			name: "invalid direction returns 422",
			body: map[string]any{
				"card_name":    "Test Card",
				"target_price": 150.0,
				"direction":    "sideways",
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "",
		},
		{
			name: "store error",
			body: map[string]any{
				"card_name":    "Test Card",
				"target_price": 150.0,
				"direction":    "above",
				"active":       true,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateAlert(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating alert",
		},
		{
			name:       "invalid JSON",
			body:       strings.NewReader(`{invalid}`),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAlertsHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, h)

			resp := api.Post("/api/v1/alerts", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAlertsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "7",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetAlert(mock.Anything, int64(7)).
					Return(&domain.Alert{
						ID:          7,
						CardName:    "Wembanyama Prizm",
						TargetPrice: 150,
						Direction:   domain.AlertBelow,
						Active:      true,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Wembanyama Prizm"`,
		},
		{
			name: "not found",
			id:   "99",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetAlert(mock.Anything, int64(99)).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `alert not found`,
		},
		{
			name: "store error",
			id:   "7",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetAlert(mock.Anything, int64(7)).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "getting alert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAlertsHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, h)

			resp := api.Get("/api/v1/alerts/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns alerts",
			path: "/api/v1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, false).
					Return([]domain.Alert{
						{ID: 1, CardName: "Wembanyama Prizm", Direction: domain.AlertBelow},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"count":1`,
		},
		{
			name: "active only filter",
			path: "/api/v1/alerts?active=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, true).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alerts":[]`,
		},
		{
			name: "store error",
			path: "/api/v1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, false).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing alerts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAlertsHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertsHandler_Update(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		UpdateAlert(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
			return a.ID == 7 && a.TargetPrice == 200 && a.Active
		})).
		Return(nil).
		Once()
	ms.EXPECT().
		GetAlert(mock.Anything, int64(7)).
		Return(&domain.Alert{
			ID:          7,
			CardName:    "Wembanyama Prizm",
			TargetPrice: 200,
			Direction:   domain.AlertAbove,
			Active:      true,
		}, nil).
		Once()

	h := handlers.NewAlertsHandler(ms)

	_, api := humatest.New(t)
	handlers.RegisterAlertRoutes(api, h)

	resp := api.Put("/api/v1/alerts/7", map[string]any{
		"card_name":    "Wembanyama Prizm",
		"target_price": 200.0,
		"direction":    "above",
		"active":       true,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"target_price":200`)
}

func TestAlertsHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		UpdateAlert(mock.Anything, mock.Anything).
		Return(store.ErrNotFound).
		Once()

	h := handlers.NewAlertsHandler(ms)

	_, api := humatest.New(t)
	handlers.RegisterAlertRoutes(api, h)

	resp := api.Put("/api/v1/alerts/99", map[string]any{
		"card_name":    "Missing",
		"target_price": 10.0,
		"direction":    "below",
		"active":       false,
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "alert not found")
}

func TestAlertsHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "success",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteAlert(mock.Anything, int64(7)).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteAlert(mock.Anything, int64(7)).
					Return(store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteAlert(mock.Anything, int64(7)).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAlertsHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, h)

			resp := api.Delete("/api/v1/alerts/7")
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
