// Package scoring is the deterministic lexical scorer behind quote analysis.
//
// A quote is tokenized once and every sub-scorer (sentiment, spiritual and
// material axes, keywords, themes, emotions) runs independently over the same
// tokens. All functions are pure and the lexicons are read-only, so a Scorer is
// safe for concurrent use.
package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks a request rejected before scoring.
var ErrInvalidInput = errors.New("invalid input")

// Options tunes a Scorer.
type Options struct {
	// Sensitivity scales the lexicon sentiment step. Must be positive.
	Sensitivity float64
	// TrimPunctuation strips leading and trailing punctuation from tokens.
	TrimPunctuation bool
	// Sentiment overrides the lexicon sentiment engine when set.
	Sentiment SentimentScorer
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{Sensitivity: DefaultSensitivity}
}

// Request is one quote to analyze.
type Request struct {
	Quote    string   `json:"quote"`
	Religion Religion `json:"religion,omitempty"`
}

// Result is the structured assessment of a quote.
type Result struct {
	Sentiment       float64  `json:"sentiment" yaml:"sentiment"`
	SentimentLabel  string   `json:"sentimentLabel" yaml:"sentimentLabel"`
	SpiritualScore  float64  `json:"spiritualScore" yaml:"spiritualScore"`
	MaterialScore   float64  `json:"materialScore" yaml:"materialScore"`
	Quadrant        Quadrant `json:"quadrant" yaml:"quadrant"`
	Themes          []string `json:"themes" yaml:"themes"`
	Emotions        []string `json:"emotions" yaml:"emotions"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Scorer computes Results.
type Scorer struct {
	trimPunct bool
	sentiment SentimentScorer
}

// New builds a Scorer from opts.
func New(opts Options) (*Scorer, error) {
	s := &Scorer{trimPunct: opts.TrimPunctuation, sentiment: opts.Sentiment}
	if s.sentiment == nil {
		if !(opts.Sensitivity > 0) {
			return nil, fmt.Errorf("sensitivity must be positive, got %v", opts.Sensitivity)
		}
		s.sentiment = LexiconSentiment{Sensitivity: opts.Sensitivity}
	}
	return s, nil
}

// Validate checks req without scoring it.
func Validate(req Request) error {
	if strings.TrimSpace(req.Quote) == "" {
		return fmt.Errorf("%w: quote is required", ErrInvalidInput)
	}
	return nil
}

// Analyze validates req and scores its quote.
func (s *Scorer) Analyze(req Request) (Result, error) {
	if err := Validate(req); err != nil {
		return Result{}, err
	}
	return s.Score(req.Quote), nil
}

// Score runs every sub-scorer over text. It never fails.
func (s *Scorer) Score(text string) Result {
	tokens := Tokenize(text, s.trimPunct)

	sentiment := clamp01(s.sentiment.Score(tokens))
	spiritual := SpiritualScore(tokens)
	material := MaterialScore(tokens)
	quadrant := DeriveQuadrant(spiritual, material, sentiment)

	return Result{
		Sentiment:       sentiment,
		SentimentLabel:  SentimentLabel(sentiment),
		SpiritualScore:  spiritual,
		MaterialScore:   material,
		Quadrant:        quadrant,
		Themes:          Themes(tokens),
		Emotions:        Emotions(tokens),
		Keywords:        Keywords(tokens),
		Recommendations: Recommendations(quadrant.Label),
	}
}
