package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quotient-backend/internal/scoring"
)

var _ scoring.SentimentScorer = (*Vader)(nil)

func TestVaderScore(t *testing.T) {
	v := NewVader()

	assert.Equal(t, 0.5, v.Score(nil))
	assert.Greater(t, v.Score([]string{"i", "love", "this", "wonderful", "day"}), 0.5)
	assert.Less(t, v.Score([]string{"i", "hate", "this", "terrible", "pain"}), 0.5)

	for _, tokens := range [][]string{{"love", "love", "love"}, {"hate", "hate", "hate"}} {
		s := v.Score(tokens)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
