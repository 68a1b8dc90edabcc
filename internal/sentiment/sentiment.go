// Package sentiment scores collector hype for a card and derives the flip
// score, a 0-100 indicator of resale momentum. Scoring is a keyword
// lexicon over discussion samples; with no external feeds configured the
// analyzer runs on deterministic sample text so results are reproducible.
package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// Sample is one unit of discussion text about a card.
type Sample struct {
	Text   string
	Source string
}

// SampleSource supplies discussion samples for a card.
type SampleSource interface {
	Samples(ctx context.Context, cardName string) ([]Sample, error)
}

// lexicon maps sentiment-bearing terms to weights in [-1, 1].
var lexicon = map[string]float64{
	"hot":         0.8,
	"fire":        0.8,
	"grail":       0.9,
	"gem":         0.7,
	"mint":        0.5,
	"undervalued": 0.9,
	"steal":       0.7,
	"rising":      0.6,
	"breakout":    0.7,
	"rookie":      0.3,
	"invest":      0.5,
	"buy":         0.4,
	"picked":      0.4,
	"love":        0.6,
	"great":       0.6,
	"analysis":    0.1,

	"overpriced": -0.8,
	"crash":      -0.9,
	"crashing":   -0.9,
	"dump":       -0.7,
	"dumping":    -0.7,
	"fake":       -0.9,
	"scam":       -0.9,
	"falling":    -0.6,
	"cooling":    -0.5,
	"avoid":      -0.7,
	"sell":       -0.3,
	"injury":     -0.8,
	"injured":    -0.8,
}

// Analyzer scores card sentiment from discussion samples.
type Analyzer struct {
	source  SampleSource
	nowFunc func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSampleSource replaces the built-in deterministic sample source.
func WithSampleSource(src SampleSource) Option {
	return func(a *Analyzer) {
		a.source = src
	}
}

// WithNowFunc overrides the time source for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.nowFunc = now
	}
}

// NewAnalyzer creates an Analyzer. Without options it uses the built-in
// sample source.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		source:  builtinSamples{},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces a sentiment report for the card.
func (a *Analyzer) Analyze(ctx context.Context, cardName string) (*domain.SentimentReport, error) {
	samples, err := a.source.Samples(ctx, cardName)
	if err != nil {
		return nil, fmt.Errorf("fetching sentiment samples: %w", err)
	}

	var sum float64
	for _, s := range samples {
		sum += ScoreText(s.Text)
	}

	var avg float64
	if len(samples) > 0 {
		avg = sum / float64(len(samples))
	}

	return &domain.SentimentReport{
		CardName:   cardName,
		Score:      math.Round(avg*1000) / 1000,
		Label:      label(avg),
		FlipScore:  flipScore(avg, len(samples)),
		SampleSize: len(samples),
		AnalyzedAt: a.nowFunc(),
	}, nil
}

// ScoreText scores a single text in [-1, 1] by averaging the lexicon
// weights of the sentiment-bearing words it contains. Text with no
// scored words is neutral.
func ScoreText(text string) float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var sum float64
	var hits int
	for _, w := range words {
		if weight, ok := lexicon[w]; ok {
			sum += weight
			hits++
		}
	}

	if hits == 0 {
		return 0
	}
	return clamp(sum/float64(hits), -1, 1)
}

// flipScore maps average sentiment to the 0-100 flip score, discounted by
// sample confidence (10 samples reach full confidence).
func flipScore(avg float64, sampleSize int) int {
	base := (avg + 1) * 50
	confidence := math.Min(float64(sampleSize)/10, 1.0)
	return int(clamp(base*confidence, 0, 100))
}

func label(score float64) string {
	switch {
	case score >= 0.2:
		return "positive"
	case score <= -0.2:
		return "negative"
	default:
		return "neutral"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// builtinSamples is the deterministic sample source used when no external
// discussion feed is configured.
type builtinSamples struct{}

func (builtinSamples) Samples(_ context.Context, cardName string) ([]Sample, error) {
	return []Sample{
		{Text: fmt.Sprintf("Hot take on %s, this rookie is a grail", cardName), Source: "sample"},
		{Text: fmt.Sprintf("%s market analysis, prices rising all month", cardName), Source: "sample"},
		{Text: fmt.Sprintf("Just picked up %s, gem mint and undervalued", cardName), Source: "sample"},
	}, nil
}
