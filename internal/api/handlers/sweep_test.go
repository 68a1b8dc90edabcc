package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/api/handlers"
	"github.com/dimedrop/card-price-tracker/internal/cache"
	storeMocks "github.com/dimedrop/card-price-tracker/internal/store/mocks"
)

func TestSweep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "deletes expired entries",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteExpiredPrices(mock.Anything, mock.Anything).
					Return(5, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"deleted":5`,
		},
		{
			name: "nothing to delete",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteExpiredPrices(mock.Anything, mock.Anything).
					Return(0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"deleted":0`,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					DeleteExpiredPrices(mock.Anything, mock.Anything).
					Return(0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "cache sweep failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			priceCache, err := cache.New(ms)
			require.NoError(t, err)

			h := handlers.NewSweepHandler(priceCache)

			_, api := humatest.New(t)
			handlers.RegisterSweepRoutes(api, h)

			resp := api.Post("/api/v1/cache/sweep")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
