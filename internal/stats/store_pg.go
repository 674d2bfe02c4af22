package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed stats store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Record(ctx context.Context, e Event) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin stats tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	for _, c := range e.counters() {
		if _, err = tx.ExecContext(ctx, `
INSERT INTO analysis_counters (dimension, label, count, updated_at)
VALUES ($1, $2, 1, $3)
ON CONFLICT (dimension, label) DO UPDATE SET count = analysis_counters.count + 1, updated_at = EXCLUDED.updated_at`,
			c[0], c[1], now); err != nil {
			return fmt.Errorf("increment %s/%s: %w", c[0], c[1], err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit stats tx: %w", err)
	}
	return nil
}

func (s *pgStore) Snapshot(ctx context.Context) (Stats, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT dimension, label, count FROM analysis_counters`)
	if err != nil {
		return Stats{}, fmt.Errorf("query counters: %w", err)
	}
	defer rows.Close()

	out := newStats()
	for rows.Next() {
		var (
			dimension, label string
			n                int64
		)
		if err := rows.Scan(&dimension, &label, &n); err != nil {
			return Stats{}, fmt.Errorf("scan counter: %w", err)
		}
		out.add(dimension, label, n)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate counters: %w", err)
	}
	return out, nil
}

func (s *pgStore) Reset(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM analysis_counters`); err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}
	return nil
}
