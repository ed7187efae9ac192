// Package topicdiv merges raw tabular datasets into a cached file and scores
// trained topic models by topic diversity.
package topicdiv

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cognicore/topicdiv/internal/logging"
	"github.com/cognicore/topicdiv/pkg/topicdiv/config"
	"github.com/cognicore/topicdiv/pkg/topicdiv/dataset"
	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/report"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store/memstore"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store/sqlite"
)

// DefaultTopN is the number of words per topic scored when none is given.
const DefaultTopN = 10

// Engine is the facade over the dataset cache, the scorer and report storage.
type Engine struct {
	store   store.Store
	cache   *dataset.Cache
	builder *report.Builder
	logger  zerolog.Logger
	topN    int
	kind    string
	now     func() time.Time
}

// Options configures an Engine. Zero values select in-memory storage, a
// default dataset cache, the global logger and LDA as the default kind.
type Options struct {
	Store  store.Store
	Cache  *dataset.Cache
	Logger *zerolog.Logger
	TopN   int
	// Kind is used when a request leaves its kind empty.
	Kind string
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	st := opts.Store
	if st == nil {
		st = memstore.New()
	}
	cache := opts.Cache
	if cache == nil {
		cache = dataset.New(dataset.Options{Logger: &logger})
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	kind := opts.Kind
	if kind == "" {
		kind = diversity.KindLDA.String()
	}
	return &Engine{
		store:   st,
		cache:   cache,
		builder: report.New(),
		logger:  logger,
		topN:    topN,
		kind:    kind,
		now:     time.Now,
	}
}

// Open builds an Engine from configuration. Reports go to SQLite when
// cfg.StorePath is set.
func Open(ctx context.Context, cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, false)

	var st store.Store = memstore.New()
	if cfg.StorePath != "" {
		var err error
		st, err = sqlite.OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open report store: %w", err)
		}
	}

	return New(Options{
		Store:  st,
		Cache:  dataset.New(dataset.Options{Extension: cfg.Extension, Logger: &logger}),
		Logger: &logger,
		TopN:   cfg.TopN,
		Kind:   cfg.ModelKind,
	}), nil
}

// Close cleanly shuts down the Engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// LoadDataset returns the merged dataset cached at processedPath, building it
// from rawDir on first use.
func (e *Engine) LoadDataset(rawDir, processedPath string) (*dataset.Dataset, error) {
	return e.cache.LoadOrMerge(rawDir, processedPath)
}

// Diversity scores model. A non-positive topN or an empty kind selects the
// engine default.
func (e *Engine) Diversity(model any, topN int, kind string, vocabulary []string) (float64, error) {
	res, err := diversity.Evaluate(model, e.resolveTopN(topN), e.resolveKind(kind), vocabulary)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// EvalRequest describes one model to score and record.
type EvalRequest struct {
	Label      string
	Model      any
	Kind       string
	TopN       int
	Vocabulary []string
}

// Evaluate scores a model and stores the resulting report.
func (e *Engine) Evaluate(ctx context.Context, req EvalRequest) (store.Report, error) {
	res, err := diversity.Evaluate(req.Model, e.resolveTopN(req.TopN), e.resolveKind(req.Kind), req.Vocabulary)
	if err != nil {
		return store.Report{}, err
	}

	r := e.builder.Build(req.Label, res, e.now())
	if err := e.store.SaveReport(ctx, r); err != nil {
		return store.Report{}, fmt.Errorf("save report: %w", err)
	}

	e.logger.Info().
		Str("id", r.ID).
		Str("label", r.Label).
		Str("kind", r.Kind).
		Int("top_n", r.TopN).
		Int("words", r.TotalWords).
		Float64("score", r.Score).
		Msg("scored topic model")
	return r, nil
}

// Reports lists stored reports, newest first. An empty kind lists all.
func (e *Engine) Reports(ctx context.Context, kind string, k int) ([]store.Report, error) {
	if kind != "" {
		parsed, err := diversity.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		kind = parsed.String()
	}
	return e.store.ListReports(ctx, kind, k)
}

// Report returns a stored report by ID.
func (e *Engine) Report(ctx context.Context, id string) (store.Report, bool, error) {
	return e.store.GetReport(ctx, id)
}

func (e *Engine) resolveTopN(topN int) int {
	if topN <= 0 {
		return e.topN
	}
	return topN
}

func (e *Engine) resolveKind(kind string) string {
	if kind == "" {
		return e.kind
	}
	return kind
}
