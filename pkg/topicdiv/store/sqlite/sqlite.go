package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
	"github.com/cognicore/topicdiv/pkg/topicdiv/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	label TEXT,
	kind TEXT NOT NULL,
	top_n INTEGER NOT NULL,
	total_words INTEGER NOT NULL,
	unique_words INTEGER NOT NULL,
	score REAL NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS reports_kind ON reports(kind, id);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveReport inserts or updates a report
func (s *sqliteStore) SaveReport(ctx context.Context, r store.Report) error {
	if r.ID == "" {
		return fmt.Errorf("save report: empty id: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO reports (id, label, kind, top_n, total_words, unique_words, score, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	label=excluded.label,
	kind=excluded.kind,
	top_n=excluded.top_n,
	total_words=excluded.total_words,
	unique_words=excluded.unique_words,
	score=excluded.score,
	created_at=excluded.created_at;
`, r.ID, r.Label, r.Kind, r.TopN, r.TotalWords, r.UniqueWords, r.Score, r.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetReport retrieves a report by ID
func (s *sqliteStore) GetReport(ctx context.Context, id string) (store.Report, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, label, kind, top_n, total_words, unique_words, score, created_at
FROM reports
WHERE id = ?;
`, id)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Report{}, false, nil
	}
	if err != nil {
		return store.Report{}, false, err
	}
	return r, true, nil
}

// ListReports retrieves the newest reports, optionally filtered by kind
func (s *sqliteStore) ListReports(ctx context.Context, kind string, k int) ([]store.Report, error) {
	if k <= 0 {
		k = store.DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, label, kind, top_n, total_words, unique_words, score, created_at
FROM reports
WHERE ? = '' OR kind = ?
ORDER BY id DESC
LIMIT ?;
`, kind, kind, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []store.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (store.Report, error) {
	var r store.Report
	var label sql.NullString
	var createdAt string
	if err := row.Scan(&r.ID, &label, &r.Kind, &r.TopN, &r.TotalWords, &r.UniqueWords, &r.Score, &createdAt); err != nil {
		return store.Report{}, err
	}
	r.Label = label.String
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Report{}, err
	}
	r.CreatedAt = ts
	return r, nil
}
