package scoring

var baseRecommendations = []string{
	"Reflect on this quote during quiet meditation or prayer.",
	"Journal about how this message applies to your current life.",
	"Share this wisdom with others who might benefit from it.",
}

var quadrantRecommendations = map[string]string{
	QuadrantSpiritualPositive: "Carry this uplifting message into a daily practice of gratitude.",
	QuadrantMaterialPositive:  "Consider how this worldly encouragement can serve a deeper purpose.",
	QuadrantSpiritualNegative: "Sit with the difficulty this passage names and seek guidance from your tradition.",
	QuadrantContemplative:     "Return to this passage over several days and notice what changes.",
}

// Recommendations returns the three standing guidance lines followed by one
// line specific to the quadrant label.
func Recommendations(quadrant string) []string {
	out := make([]string, 0, len(baseRecommendations)+1)
	out = append(out, baseRecommendations...)
	if extra, ok := quadrantRecommendations[quadrant]; ok {
		out = append(out, extra)
	}
	return out
}
