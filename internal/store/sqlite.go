package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements RunStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based run journal.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Runs table, one row per completed filter/combine run
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		mode TEXT NOT NULL,
		folder TEXT NOT NULL,
		newest_file TEXT NOT NULL,
		file_count INTEGER NOT NULL,
		original_count INTEGER NOT NULL,
		removed_count INTEGER NOT NULL,
		result_count INTEGER NOT NULL,
		output_path TEXT NOT NULL,
		source_deleted INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun inserts one completed run.
func (s *SQLiteStore) RecordRun(ctx context.Context, rec *RunRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (timestamp, mode, folder, newest_file, file_count,
			original_count, removed_count, result_count, output_path, source_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp, rec.Mode, rec.Folder, rec.NewestFile, rec.FileCount,
		rec.OriginalCount, rec.RemovedCount, rec.ResultCount, rec.OutputPath,
		boolToInt(rec.SourceDeleted),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, mode, folder, newest_file, file_count,
			original_count, removed_count, result_count, output_path, source_deleted
		FROM runs
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var deleted int
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Mode, &rec.Folder,
			&rec.NewestFile, &rec.FileCount, &rec.OriginalCount, &rec.RemovedCount,
			&rec.ResultCount, &rec.OutputPath, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.SourceDeleted = deleted != 0
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
