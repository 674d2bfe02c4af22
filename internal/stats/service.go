package stats

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidEvent indicates an event missing one of its labels.
var ErrInvalidEvent = errors.New("invalid stats event")

type store interface {
	Record(ctx context.Context, e Event) error
	Snapshot(ctx context.Context) (Stats, error)
	Reset(ctx context.Context) error
}

// Service manages aggregate analysis counters via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Record counts one analysis.
func (s *Service) Record(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.Religion) == "" || strings.TrimSpace(e.Quadrant) == "" || strings.TrimSpace(e.SentimentLabel) == "" {
		return ErrInvalidEvent
	}
	return s.store.Record(ctx, e)
}

// Snapshot returns current counters.
func (s *Service) Snapshot(ctx context.Context) (Stats, error) {
	return s.store.Snapshot(ctx)
}

// Reset clears all counters.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}
