package topicdiv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/topicdiv/pkg/topicdiv/config"
	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
	"github.com/cognicore/topicdiv/pkg/topicdiv/models/export"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	nop := zerolog.Nop()
	e := New(Options{Logger: &nop})
	t.Cleanup(func() { e.Close() })
	return e
}

func ldaModel() export.WordTopics {
	return export.WordTopics{
		{ID: 0, Words: []diversity.WeightedWord{{Word: "cat", Weight: 0.5}, {Word: "dog", Weight: 0.3}, {Word: "cat", Weight: 0.2}}},
		{ID: 1, Words: []diversity.WeightedWord{{Word: "bird", Weight: 0.5}, {Word: "dog", Weight: 0.3}, {Word: "fish", Weight: 0.2}}},
	}
}

func TestEngineDiversity(t *testing.T) {
	e := newTestEngine(t)

	score, err := e.Diversity(ldaModel(), 3, "lda", nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6.0, score, 1e-12)

	// Default top-N keeps every word of these short topics.
	score, err = e.Diversity(ldaModel(), 0, "lda", nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6.0, score, 1e-12)

	_, err = e.Diversity(ldaModel(), 3, "foo", nil)
	assert.ErrorIs(t, err, internalerr.ErrUnsupportedModelKind)
}

func TestEngineEvaluateStoresReport(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	fixed := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	r, err := e.Evaluate(ctx, EvalRequest{Label: "tweets", Model: ldaModel(), Kind: "LDA", TopN: 2})
	require.NoError(t, err)
	assert.Equal(t, "lda", r.Kind)
	assert.Equal(t, 4, r.TotalWords)
	assert.Equal(t, 3, r.UniqueWords)
	assert.InDelta(t, 0.75, r.Score, 1e-12)
	assert.Equal(t, fixed, r.CreatedAt)

	got, ok, err := e.Report(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, got)

	reports, err := e.Reports(ctx, "Lda", 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	_, err = e.Reports(ctx, "foo", 0)
	assert.ErrorIs(t, err, internalerr.ErrUnsupportedModelKind)
}

func TestEngineEvaluateFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.Evaluate(ctx, EvalRequest{Model: export.Matrix{}, Kind: "nmf"})
	assert.ErrorIs(t, err, internalerr.ErrInvalidArgument)

	reports, err := e.Reports(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestEngineLoadDataset(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw")
	require.NoError(t, os.MkdirAll(raw, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(raw, "a.csv"), []byte("id,text\n1,a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(raw, "b.csv"), []byte("id,text\n2,b\n"), 0o644))

	e := newTestEngine(t)
	ds, err := e.LoadDataset(raw, filepath.Join(dir, "processed", "merged.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	_, err = e.LoadDataset(filepath.Join(dir, "empty"), filepath.Join(dir, "other.csv"))
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

func TestOpenWithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.StorePath = filepath.Join(t.TempDir(), "reports.db")
	cfg.LogLevel = "disabled"

	e, err := Open(ctx, cfg)
	require.NoError(t, err)
	r, err := e.Evaluate(ctx, EvalRequest{Label: "first", Model: ldaModel(), Kind: "lda"})
	require.NoError(t, err)
	require.NoError(t, e.Close())

	e, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer e.Close()
	got, ok, err := e.Report(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", got.Label)
	assert.Equal(t, 10, got.TopN)
}

func TestEngineDefaultKind(t *testing.T) {
	ctx := context.Background()
	nop := zerolog.Nop()
	e := New(Options{Logger: &nop, Kind: "bertopic"})
	defer e.Close()

	table := export.WordTopics{
		{ID: -1, Words: []diversity.WeightedWord{{Word: "noise", Weight: 0.9}}},
		{ID: 0, Words: []diversity.WeightedWord{{Word: "rain", Weight: 0.5}, {Word: "snow", Weight: 0.4}}},
	}
	r, err := e.Evaluate(ctx, EvalRequest{Label: "weather", Model: table})
	require.NoError(t, err)
	assert.Equal(t, "bertopic", r.Kind)
	assert.Equal(t, 2, r.TotalWords)

	score, err := newTestEngine(t).Diversity(ldaModel(), 3, "", nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6.0, score, 1e-12)
}

func TestOpenUsesConfiguredKind(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.ModelKind = "top2vec"
	cfg.LogLevel = "disabled"

	e, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer e.Close()

	r, err := e.Evaluate(ctx, EvalRequest{Model: export.Phrases{{"deep learning", "graph"}}, TopN: 2})
	require.NoError(t, err)
	assert.Equal(t, "top2vec", r.Kind)
	assert.Equal(t, 3, r.TotalWords)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TopN = 0
	_, err := Open(context.Background(), cfg)
	assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
}
