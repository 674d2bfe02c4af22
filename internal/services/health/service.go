package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Status is the health payload.
type Status struct {
	OK         bool   `json:"ok"`
	Analyzer   string `json:"analyzer"`
	StatsStore string `json:"statsStore"`
	Database   string `json:"database,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB       *sql.DB
	Analyzer string
}

// NewService constructs a new health service. db may be nil.
func NewService(db *sql.DB, analyzer string) *Service {
	return &Service{DB: db, Analyzer: analyzer}
}

// Status reports liveness. A failing database ping degrades OK but the
// in-process scorer keeps serving.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Analyzer: s.Analyzer, StatsStore: "memory"}
	if s.DB == nil {
		return st
	}
	st.StatsStore = "postgres"

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		st.OK = false
		st.Database = "unreachable"
		return st
	}
	st.Database = "ok"
	return st
}
