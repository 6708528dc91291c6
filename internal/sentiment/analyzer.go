// Package sentiment classifies brand copy into tone buckets using a
// lexicon-based polarity analyzer.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

const (
	ToneTitlePositive = "Positive"
	ToneTitleNeutral  = "Neutral"
	ToneTitleNegative = "Negative"

	AlignmentGood    = "Good"
	AlignmentImprove = "Needs Improvement"
	AlignmentUnknown = "Unknown"
)

// positiveThreshold and negativeThreshold bound the Neutral tone bucket.
const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// Result is the outcome of analyzing one block of text. Polarity is in
// [-1,1] rounded to two decimals; Confidence is abs(Polarity)*100 rounded to
// one decimal.
type Result struct {
	Polarity   float64 `json:"polarity"`
	Confidence float64 `json:"confidence"`
	Tone       string  `json:"tone"`
	Alignment  string  `json:"alignment"`
}

// Analyzer wraps the VADER intensity analyzer. The zero value is not usable;
// construct with NewAnalyzer.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds an analyzer with the default VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores the text. Empty or unanalyzable input returns the neutral
// zero result with Unknown alignment rather than an error.
func (a *Analyzer) Analyze(text string) Result {
	if a == nil || a.vader == nil || strings.TrimSpace(text) == "" {
		return Result{Tone: ToneTitleNeutral, Alignment: AlignmentUnknown}
	}

	scores := a.vader.PolarityScores(text)
	polarity := round(scores.Compound, 2)

	tone := ToneTitleNeutral
	switch {
	case polarity > positiveThreshold:
		tone = ToneTitlePositive
	case polarity < negativeThreshold:
		tone = ToneTitleNegative
	}

	alignment := AlignmentImprove
	if polarity > 0 {
		alignment = AlignmentGood
	}

	return Result{
		Polarity:   polarity,
		Confidence: round(math.Abs(polarity)*100, 1),
		Tone:       tone,
		Alignment:  alignment,
	}
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
