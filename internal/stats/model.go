package stats

import "time"

// Counter dimensions.
const (
	DimensionTotal     = "total"
	DimensionReligion  = "religion"
	DimensionQuadrant  = "quadrant"
	DimensionSentiment = "sentiment"

	totalLabel = "all"
)

// Event is the aggregate footprint of one analysis. It carries labels only,
// never the analyzed text.
type Event struct {
	Religion       string
	Quadrant       string
	SentimentLabel string
}

func (e Event) counters() [][2]string {
	return [][2]string{
		{DimensionTotal, totalLabel},
		{DimensionReligion, e.Religion},
		{DimensionQuadrant, e.Quadrant},
		{DimensionSentiment, e.SentimentLabel},
	}
}

// Stats is a snapshot of all counters.
type Stats struct {
	Total       int64            `json:"total"`
	ByReligion  map[string]int64 `json:"byReligion"`
	ByQuadrant  map[string]int64 `json:"byQuadrant"`
	BySentiment map[string]int64 `json:"bySentiment"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

func newStats() Stats {
	return Stats{
		ByReligion:  map[string]int64{},
		ByQuadrant:  map[string]int64{},
		BySentiment: map[string]int64{},
		GeneratedAt: time.Now().UTC(),
	}
}

func (s *Stats) add(dimension, label string, n int64) {
	switch dimension {
	case DimensionTotal:
		s.Total += n
	case DimensionReligion:
		s.ByReligion[label] += n
	case DimensionQuadrant:
		s.ByQuadrant[label] += n
	case DimensionSentiment:
		s.BySentiment[label] += n
	}
}
