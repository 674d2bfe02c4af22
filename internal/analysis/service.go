package analysis

import (
	"context"
	"errors"
	"time"

	"quotient-backend/internal/scoring"
	"quotient-backend/internal/shared/metrics"
	"quotient-backend/internal/shared/telemetry"
	"quotient-backend/internal/stats"
)

// Service runs analyses and records their aggregate footprint.
type Service struct {
	Analyzer Analyzer
	Stats    *stats.Service
	Source   string
}

// NewService constructs a Service. statsSvc may be nil.
func NewService(analyzer Analyzer, statsSvc *stats.Service, source string) *Service {
	if source == "" {
		source = SourceLocal
	}
	return &Service{Analyzer: analyzer, Stats: statsSvc, Source: source}
}

// Analyze validates req, delegates to the Analyzer and updates metrics and stats.
// Stats failures are logged and never fail the analysis.
func (s *Service) Analyze(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	if err := scoring.Validate(req); err != nil {
		metrics.IncInvalid()
		return scoring.Result{}, err
	}
	if req.Religion == "" {
		req.Religion = scoring.ReligionOther
	}

	start := time.Now()
	result, err := s.Analyzer.Analyze(ctx, req)
	if err != nil {
		var upstreamErr *UpstreamError
		switch {
		case errors.Is(err, scoring.ErrInvalidInput):
			metrics.IncInvalid()
		case errors.As(err, &upstreamErr):
			metrics.IncUpstreamFailure()
			telemetry.Warn("analysis.upstream_failed", map[string]any{
				"status": upstreamErr.StatusCode(),
				"error":  err,
			})
		}
		return scoring.Result{}, err
	}
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncAnalysis(result.Quadrant.Label)

	if s.Stats != nil {
		event := stats.Event{
			Religion:       string(req.Religion),
			Quadrant:       result.Quadrant.Label,
			SentimentLabel: result.SentimentLabel,
		}
		if err := s.Stats.Record(context.WithoutCancel(ctx), event); err != nil {
			telemetry.Warn("analysis.stats_record_failed", map[string]any{
				"religion": event.Religion,
				"error":    err,
			})
		}
	}
	return result, nil
}
