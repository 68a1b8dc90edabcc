package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dimedrop/card-price-tracker/internal/sentiment"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// SentimentHandler handles the hype analysis endpoint.
type SentimentHandler struct {
	analyzer *sentiment.Analyzer
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(a *sentiment.Analyzer) *SentimentHandler {
	return &SentimentHandler{analyzer: a}
}

// GetSentimentInput is the input for a sentiment lookup.
type GetSentimentInput struct {
	Card string `path:"card" minLength:"3" maxLength:"200" doc:"Card name to analyze" example:"Wembanyama Prizm"`
}

// GetSentimentOutput is the response for a sentiment lookup.
type GetSentimentOutput struct {
	Body domain.SentimentReport
}

// GetSentiment analyzes collector sentiment for a card.
func (h *SentimentHandler) GetSentiment(
	ctx context.Context,
	input *GetSentimentInput,
) (*GetSentimentOutput, error) {
	report, err := h.analyzer.Analyze(ctx, input.Card)
	if err != nil {
		return nil, huma.Error500InternalServerError("sentiment analysis failed: " + err.Error())
	}

	return &GetSentimentOutput{Body: *report}, nil
}

// RegisterSentimentRoutes registers the sentiment endpoint with the Huma API.
func RegisterSentimentRoutes(api huma.API, h *SentimentHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-sentiment",
		Method:      http.MethodGet,
		Path:        "/api/v1/sentiment/{card}",
		Summary:     "Analyze card sentiment",
		Description: "Scores collector hype for a card and derives the 0-100 flip score.",
		Tags:        []string{"sentiment"},
	}, h.GetSentiment)
}
