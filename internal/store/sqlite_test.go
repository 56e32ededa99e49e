package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	records := []RunRecord{
		{Timestamp: base, Mode: "filter", Folder: "/lists", NewestFile: "/lists/a.csv",
			FileCount: 3, OriginalCount: 10, RemovedCount: 4, ResultCount: 6,
			OutputPath: "/lists/a_filtered.txt", SourceDeleted: true},
		{Timestamp: base.Add(10 * time.Minute), Mode: "combine", Folder: "/lists",
			NewestFile: "/lists/b.csv", FileCount: 2, OriginalCount: 8, ResultCount: 8,
			OutputPath: "/lists/b_combined.txt"},
	}

	for i := range records {
		if err := s.RecordRun(ctx, &records[i]); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
		if records[i].ID == 0 {
			t.Error("RecordRun should backfill the row ID")
		}
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first
	if runs[0].Mode != "combine" || runs[1].Mode != "filter" {
		t.Errorf("order = %s,%s, want combine,filter", runs[0].Mode, runs[1].Mode)
	}

	got := runs[1]
	want := records[0]
	if got.Folder != want.Folder || got.NewestFile != want.NewestFile ||
		got.FileCount != want.FileCount || got.OriginalCount != want.OriginalCount ||
		got.RemovedCount != want.RemovedCount || got.ResultCount != want.ResultCount ||
		got.OutputPath != want.OutputPath || got.SourceDeleted != want.SourceDeleted {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestListRunsHonorsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		rec := RunRecord{
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			Mode:       "filter",
			Folder:     "/lists",
			NewestFile: "/lists/x.csv",
			OutputPath: "/lists/x_filtered.txt",
		}
		if err := s.RecordRun(ctx, &rec); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}

	runs, err = s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns default limit: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("default limit returned %d runs, want all 5", len(runs))
	}
}
