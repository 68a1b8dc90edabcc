package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/api/handlers"
	"github.com/dimedrop/card-price-tracker/internal/quota"
	storeMocks "github.com/dimedrop/card-price-tracker/internal/store/mocks"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		limit      int
		wantStatus int
		wantBody   []string
	}{
		{
			name: "fresh counter",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetCallCount(mock.Anything, "ebay", mock.Anything).
					Return(0, nil).
					Once()
			},
			limit:      4800,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"daily_limit":4800`, `"daily_used":0`, `"remaining":4800`},
		},
		{
			name: "counter with usage",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetCallCount(mock.Anything, "ebay", mock.Anything).
					Return(142, nil).
					Once()
			},
			limit:      4800,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"daily_used":142`, `"remaining":4658`},
		},
		{
			name: "counter over limit clamps remaining to zero",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetCallCount(mock.Anything, "ebay", mock.Anything).
					Return(150, nil).
					Once()
			},
			limit:      100,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"daily_used":150`, `"remaining":0`},
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetCallCount(mock.Anything, "ebay", mock.Anything).
					Return(0, errors.New("db error")).
					Once()
			},
			limit:      4800,
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"reading quota"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			limiter := quota.NewDailyLimiter(ms, "ebay", quota.WithLimit(tt.limit))
			h := handlers.NewQuotaHandler(limiter)

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, h)

			resp := api.Get("/api/v1/quota")
			require.Equal(t, tt.wantStatus, resp.Code)

			body := resp.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestGetQuota_NilLimiterReturnsZeroes(t *testing.T) {
	t.Parallel()

	h := handlers.NewQuotaHandler(nil)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"daily_limit":0`)
}

func TestGetQuota_ResetAtNextUTCMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetCallCount(mock.Anything, "ebay", mock.Anything).
		Return(10, nil).
		Once()

	limiter := quota.NewDailyLimiter(ms, "ebay")
	h := handlers.NewQuotaHandler(limiter,
		handlers.WithQuotaNowFunc(func() time.Time { return now }),
	)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "2025-06-16T00:00:00Z")
}
