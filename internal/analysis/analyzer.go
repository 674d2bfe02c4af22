package analysis

import (
	"context"
	"time"

	"quotient-backend/internal/scoring"
)

// Analyzer turns a quote into a scoring.Result.
type Analyzer interface {
	Analyze(ctx context.Context, req scoring.Request) (scoring.Result, error)
}

// Analysis sources reported in logs and the CLI.
const (
	SourceLocal    = "local"
	SourceUpstream = "upstream"
)

// LocalAnalyzer scores in process.
type LocalAnalyzer struct {
	Scorer *scoring.Scorer
	// Delay simulates processing latency. Zero disables it.
	Delay time.Duration
}

// NewLocalAnalyzer wraps scorer.
func NewLocalAnalyzer(scorer *scoring.Scorer, delay time.Duration) *LocalAnalyzer {
	return &LocalAnalyzer{Scorer: scorer, Delay: delay}
}

func (a *LocalAnalyzer) Analyze(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	if err := scoring.Validate(req); err != nil {
		return scoring.Result{}, err
	}
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return scoring.Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return scoring.Result{}, err
	}
	return a.Scorer.Analyze(req)
}
