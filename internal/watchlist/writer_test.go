package watchlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriterWritesCommaJoinedLine(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")

	w := NewWriter()
	if err := w.Write(dest, []string{"NASDAQ:AAPL", "NASDAQ:MSFT"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "NASDAQ:AAPL,NASDAQ:MSFT" {
		t.Errorf("content = %q, want comma-joined line", data)
	}
}

func TestWriterReplacesExistingAtomically(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dest, []byte("stale content"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter()
	if err := w.Write(dest, []string{"NASDAQ:GOOGL"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "NASDAQ:GOOGL" {
		t.Errorf("content = %q, want replaced", data)
	}

	// No temp files may survive
	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestWriterFailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	// Destination directory does not exist, so CreateTemp fails
	dest := filepath.Join(dir, "missing", "out.txt")

	w := NewWriter()
	if err := w.Write(dest, []string{"NASDAQ:AAPL"}); err == nil {
		t.Fatal("expected write failure")
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("destination should not exist after failed write")
	}
}

func TestOutputPathNaming(t *testing.T) {
	tests := []struct {
		newest string
		mode   Mode
		want   string
	}{
		{"/data/newest.csv", ModeFilter, "/data/newest_filtered.txt"},
		{"/data/newest.csv", ModeCombine, "/data/newest_combined.txt"},
		{"/data/ADR list.txt", ModeFilter, "/data/ADR list_filtered.txt"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.newest, tt.mode); got != tt.want {
			t.Errorf("OutputPath(%q, %s) = %q, want %q", tt.newest, tt.mode, got, tt.want)
		}
	}
}

func TestDeleteSourceUsesRemoveHook(t *testing.T) {
	var removed []string
	w := &Writer{Remove: func(path string) error {
		removed = append(removed, path)
		return nil
	}}

	if err := w.DeleteSource("/data/newest.csv"); err != nil {
		t.Fatalf("DeleteSource: %v", err)
	}
	if len(removed) != 1 || removed[0] != "/data/newest.csv" {
		t.Errorf("removed = %v, want the source path", removed)
	}
}
