package report

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store"
)

// Builder turns scoring results into storable reports
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build creates a report for res stamped at now
func (b *Builder) Build(label string, res diversity.Result, now time.Time) store.Report {
	b.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	return store.Report{
		ID:          id,
		Label:       label,
		Kind:        res.Kind.String(),
		TopN:        res.TopN,
		TotalWords:  res.Total,
		UniqueWords: res.Unique,
		Score:       res.Score,
		CreatedAt:   now,
	}
}
