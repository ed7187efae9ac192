package store

import (
	"context"
	"time"
)

// DefaultListLimit caps ListReports when no limit is given.
const DefaultListLimit = 10

// Store persists topic diversity reports.
type Store interface {
	Close() error

	// SaveReport inserts or replaces a report, keyed by ID.
	SaveReport(ctx context.Context, r Report) error
	// GetReport returns the report with the given ID.
	GetReport(ctx context.Context, id string) (Report, bool, error)
	// ListReports returns up to k reports, newest first. An empty kind
	// matches every kind.
	ListReports(ctx context.Context, kind string, k int) ([]Report, error)
}

// Report is one scored topic model.
type Report struct {
	ID          string
	Label       string
	Kind        string
	TopN        int
	TotalWords  int
	UniqueWords int
	Score       float64
	CreatedAt   time.Time
}
