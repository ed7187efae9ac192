package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	reports map[string]store.Report
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{reports: make(map[string]store.Report)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveReport inserts or replaces a report, keyed by ID.
func (s *Store) SaveReport(ctx context.Context, r store.Report) error {
	if r.ID == "" {
		return fmt.Errorf("save report: empty id: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = r
	return nil
}

// GetReport returns a report by ID.
func (s *Store) GetReport(ctx context.Context, id string) (store.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	return r, ok, nil
}

// ListReports returns up to k reports of the given kind, newest first.
func (s *Store) ListReports(ctx context.Context, kind string, k int) ([]store.Report, error) {
	if k <= 0 {
		k = store.DefaultListLimit
	}

	s.mu.RLock()
	out := make([]store.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if kind != "" && r.Kind != kind {
			continue
		}
		out = append(out, r)
	}
	s.mu.RUnlock()

	// ULIDs sort by creation time.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}
