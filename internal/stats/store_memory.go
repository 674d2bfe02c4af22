package stats

import (
	"context"
	"sync"
	"time"
)

type counterKey struct {
	dimension string
	label     string
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[counterKey]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[counterKey]int64)}
}

func (s *memoryStore) Record(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range e.counters() {
		s.data[counterKey{dimension: c[0], label: c[1]}]++
	}
	return nil
}

func (s *memoryStore) Snapshot(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	out := newStats()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, n := range s.data {
		out.add(k.dimension, k.label, n)
	}
	out.GeneratedAt = time.Now().UTC()
	return out, nil
}

func (s *memoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data = make(map[counterKey]int64)
	s.mu.Unlock()
	return nil
}
