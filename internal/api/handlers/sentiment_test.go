package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/api/handlers"
	"github.com/dimedrop/card-price-tracker/internal/sentiment"
)

// erroringSamples is a SampleSource whose fetch always fails.
type erroringSamples struct{}

func (erroringSamples) Samples(_ context.Context, _ string) ([]sentiment.Sample, error) {
	return nil, errors.New("feed unavailable")
}

func TestGetSentiment_BuiltinSamples(t *testing.T) {
	t.Parallel()

	h := handlers.NewSentimentHandler(sentiment.NewAnalyzer())

	_, api := humatest.New(t)
	handlers.RegisterSentimentRoutes(api, h)

	resp := api.Get("/api/v1/sentiment/Wembanyama")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"card_name":"Wembanyama"`)
	assert.Contains(t, body, `"label":"positive"`)
	assert.Contains(t, body, `"sample_size":3`)
	assert.Contains(t, body, `"flip_score":23`)
}

func TestGetSentiment_SourceError(t *testing.T) {
	t.Parallel()

	analyzer := sentiment.NewAnalyzer(
		sentiment.WithSampleSource(erroringSamples{}),
	)
	h := handlers.NewSentimentHandler(analyzer)

	_, api := humatest.New(t)
	handlers.RegisterSentimentRoutes(api, h)

	resp := api.Get("/api/v1/sentiment/Wembanyama")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "sentiment analysis failed")
}

func TestGetSentiment_CardTooShort(t *testing.T) {
	t.Parallel()

	h := handlers.NewSentimentHandler(sentiment.NewAnalyzer())

	_, api := humatest.New(t)
	handlers.RegisterSentimentRoutes(api, h)

	resp := api.Get("/api/v1/sentiment/ab")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
