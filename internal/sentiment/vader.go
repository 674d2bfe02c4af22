// Package sentiment holds alternative sentiment engines for the scorer.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Vader scores tokens with the VADER valence lexicon and maps the compound
// score from [-1,1] onto the scorer's [0,1] scale.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader builds a Vader engine. The analyzer loads its lexicon once.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements scoring.SentimentScorer.
func (v *Vader) Score(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0.5
	}
	compound := v.analyzer.PolarityScores(strings.Join(tokens, " ")).Compound
	return (compound + 1) / 2
}

// Compound returns the raw VADER compound score of text.
func (v *Vader) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
