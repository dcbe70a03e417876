// Package archive keeps a local history of validated extraction runs in
// SQLite, one row per processed document.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mvelkova/docextract/constants"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id          TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	title       TEXT NOT NULL,
	status      TEXT NOT NULL,
	record_json BLOB NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extraction_run_created ON extraction_run (created_at DESC);
`

// Run is one archived extraction.
type Run struct {
	ID         uuid.UUID
	SourcePath string
	Title      string
	Status     constants.RunStatus
	RecordJSON []byte
	CreatedAt  time.Time
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the archive database and ensures the schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	logger.Debug("archive.open.ok", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts one archived run.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO extraction_run (id, source_path, title, status, record_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.SourcePath,
		run.Title,
		string(run.Status),
		run.RecordJSON,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	s.logger.Info("archive.save.ok",
		"run_id", run.ID,
		"source", run.SourcePath,
		"status", string(run.Status),
	)
	return nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := `SELECT id, source_path, title, status, record_json, created_at
	      FROM extraction_run ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("archive.list.rows_close_error", "error", cerr)
		}
	}()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			id, st    string
			createdAt string
		)
		if err := rows.Scan(&id, &r.SourcePath, &r.Title, &st, &r.RecordJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		r.Status = constants.RunStatus(st)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
