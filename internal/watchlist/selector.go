package watchlist

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "watchlist-filter/internal/errors"
)

// FileInfo identifies one candidate watchlist file on disk.
type FileInfo struct {
	Path    string
	ModTime time.Time
}

// File is one watchlist file read into memory.
type File struct {
	Path    string
	ModTime time.Time
	Symbols []string
}

// isWatchlistPath accepts only .csv/.txt files, case-insensitive.
func isWatchlistPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return true
	}
	return false
}

// ListFiles enumerates the watchlist files directly inside folder,
// optionally pre-filtered by a glob pattern and a recency window of
// days (0 disables the window). The result is sorted newest-first by
// modification time; equal timestamps order by ascending path so the
// selection is reproducible. Selecting zero candidates is an error.
func ListFiles(folder, pattern string, days int) ([]FileInfo, error) {
	var paths []string

	if pattern != "" {
		matches, err := filepath.Glob(filepath.Join(folder, pattern))
		if err != nil {
			return nil, apperrors.NewRunError("select", folder, err)
		}
		paths = matches
	} else {
		entries, err := os.ReadDir(folder)
		if err != nil {
			return nil, apperrors.NewRunError("select", folder, err)
		}
		for _, e := range entries {
			paths = append(paths, filepath.Join(folder, e.Name()))
		}
	}

	var cutoff time.Time
	if days > 0 {
		cutoff = time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	}

	var files []FileInfo
	for _, p := range paths {
		if !isWatchlistPath(p) {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if days > 0 && info.ModTime().Before(cutoff) {
			continue
		}
		files = append(files, FileInfo{Path: p, ModTime: info.ModTime()})
	}

	if len(files) == 0 {
		return nil, apperrors.NewSelectionError(folder, pattern, days)
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// ReadAll reads and parses every listed file, preserving order.
// Any unreadable file aborts the whole run; silently skipping one
// would make the filter result wrong.
func ReadAll(infos []FileInfo) ([]File, error) {
	files := make([]File, 0, len(infos))
	for _, info := range infos {
		symbols, err := ReadSymbols(info.Path)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: info.Path, ModTime: info.ModTime, Symbols: symbols})
	}
	return files, nil
}
