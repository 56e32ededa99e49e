package watchlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "watchlist-filter/internal/errors"
)

// Mode selects the set operation of a run.
type Mode string

const (
	ModeFilter  Mode = "filter"
	ModeCombine Mode = "combine"
)

// ImportString renders the single comma-joined line used both as the
// output file content and as the pasteable import string.
func ImportString(symbols []string) string {
	return strings.Join(symbols, ",")
}

// OutputPath derives the default destination beside the newest input:
// <stem>_filtered.txt or <stem>_combined.txt.
func OutputPath(newestPath string, mode Mode) string {
	stem := strings.TrimSuffix(filepath.Base(newestPath), filepath.Ext(newestPath))
	name := stem + "_filtered.txt"
	if mode == ModeCombine {
		name = stem + "_combined.txt"
	}
	return filepath.Join(filepath.Dir(newestPath), name)
}

// Writer persists symbol lists without ever leaving the destination
// half-written: content goes to a temp file in the destination
// directory first and is renamed into place.
type Writer struct {
	// Remove deletes a path. Replaceable in tests to observe or stub
	// the filter-mode source deletion.
	Remove func(string) error
}

// NewWriter creates a Writer backed by the real filesystem.
func NewWriter() *Writer {
	return &Writer{Remove: os.Remove}
}

// Write serializes the symbols to dest via write-temp-then-rename.
// On any failure the temp file is removed and dest is untouched.
func (w *Writer) Write(dest string, symbols []string) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return apperrors.NewRunError("write", dest, fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(ImportString(symbols)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.NewRunError("write", dest, fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.NewRunError("write", dest, fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRunError("write", dest, fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err))
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRunError("write", dest, fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err))
	}

	return nil
}

// DeleteSource removes a consumed source file through the stubbable
// Remove hook.
func (w *Writer) DeleteSource(path string) error {
	if err := w.Remove(path); err != nil {
		return apperrors.NewRunError("delete", path, fmt.Errorf("%w: %v", apperrors.ErrDeleteFailed, err))
	}
	return nil
}
