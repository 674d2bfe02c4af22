package scoring

import "math"

const (
	// SentimentBaseline is the score of a text with no polarity words.
	SentimentBaseline = 0.5
	// DefaultSensitivity scales the per-word sentiment step.
	DefaultSensitivity = 0.7

	sentimentStep = 0.1
)

// SentimentScorer turns a token sequence into a sentiment value in [0,1].
type SentimentScorer interface {
	Score(tokens []string) float64
}

// LexiconSentiment is the bag-of-words polarity scorer. Every positive word adds
// 0.1*Sensitivity to the baseline and every negative word subtracts it.
type LexiconSentiment struct {
	Sensitivity float64
}

// Score implements SentimentScorer.
func (s LexiconSentiment) Score(tokens []string) float64 {
	return ScoreSentiment(tokens, s.Sensitivity)
}

// ScoreSentiment applies the lexicon polarity rule and clamps the result to [0,1].
func ScoreSentiment(tokens []string, sensitivity float64) float64 {
	net := positiveLexicon.Count(tokens) - negativeLexicon.Count(tokens)
	if net == 0 {
		return SentimentBaseline
	}
	return clamp01(SentimentBaseline + float64(net)*sentimentStep*sensitivity)
}

// SentimentPercent maps a [0,1] sentiment onto a 0-100 display percentage.
func SentimentPercent(sentiment float64) int {
	return int(math.Round(clamp01(sentiment) * 100))
}

// SentimentLabel names a [0,1] sentiment using polarity thresholds on 2s-1.
func SentimentLabel(sentiment float64) string {
	p := 2*clamp01(sentiment) - 1
	switch {
	case p > 0.3:
		return "Very Positive"
	case p > 0:
		return "Positive"
	case p > -0.3:
		return "Neutral"
	default:
		return "Reflective"
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return SentimentBaseline
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
