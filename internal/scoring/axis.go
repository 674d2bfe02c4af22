package scoring

import "math"

const (
	axisStep      = 0.2
	spiritualBase = 0.3
	materialBase  = 0.1
)

// SpiritualScore returns min(1, 0.2*hits + 0.3) over the spiritual lexicon.
func SpiritualScore(tokens []string) float64 {
	return axisScore(spiritualLexicon.Count(tokens), spiritualBase)
}

// MaterialScore returns min(1, 0.2*hits + 0.1) over the material lexicon.
func MaterialScore(tokens []string) float64 {
	return axisScore(materialLexicon.Count(tokens), materialBase)
}

func axisScore(hits int, floor float64) float64 {
	if hits == 0 {
		return floor
	}
	return math.Min(1, float64(hits)*axisStep+floor)
}
