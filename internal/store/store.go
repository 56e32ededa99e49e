// Package store provides run-journal persistence interfaces and implementations.
package store

import (
	"context"
	"time"
)

// RunRecord is one completed run as recorded in the journal.
type RunRecord struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Mode          string    `json:"mode"`
	Folder        string    `json:"folder"`
	NewestFile    string    `json:"newest_file"`
	FileCount     int       `json:"file_count"`
	OriginalCount int       `json:"original_count"`
	RemovedCount  int       `json:"removed_count"`
	ResultCount   int       `json:"result_count"`
	OutputPath    string    `json:"output_path"`
	SourceDeleted bool      `json:"source_deleted"`
}

// RunStore defines the interface for run-journal persistence.
type RunStore interface {
	RecordRun(ctx context.Context, rec *RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}
