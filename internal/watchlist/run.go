package watchlist

import (
	"time"
)

// Options configures one run.
type Options struct {
	Folder     string
	Pattern    string // glob pre-filter, empty matches all .csv/.txt
	Days       int    // recency window in days, 0 disables
	Mode       Mode
	KeepLatest bool   // filter mode: skip deleting the newest source
	OutputPath string // override the derived destination path
}

// Result summarizes a completed run for display and journaling.
type Result struct {
	Mode          Mode      `json:"mode"`
	Folder        string    `json:"folder"`
	NewestFile    string    `json:"newest_file"`
	NewestTime    time.Time `json:"newest_mtime"`
	FileCount     int       `json:"file_count"`
	Original      int       `json:"original_count"`
	Removed       int       `json:"removed_count"`
	Symbols       []string  `json:"symbols"`
	ImportString  string    `json:"import_string"`
	OutputPath    string    `json:"output_path"`
	SourceDeleted bool      `json:"source_deleted"`
}

// Run executes one full pass over a folder:
// select files, parse them all, compute the symbol set, write the
// output, and in filter mode delete the consumed source unless
// KeepLatest is set. A failure at any stage leaves no partial output.
func Run(opts Options, w *Writer) (*Result, error) {
	infos, err := ListFiles(opts.Folder, opts.Pattern, opts.Days)
	if err != nil {
		return nil, err
	}

	files, err := ReadAll(infos)
	if err != nil {
		return nil, err
	}

	// ListFiles sorts newest first
	newest := files[0]

	res := &Result{
		Mode:       opts.Mode,
		Folder:     opts.Folder,
		NewestFile: newest.Path,
		NewestTime: newest.ModTime,
		FileCount:  len(files),
	}

	var symbols []string
	switch opts.Mode {
	case ModeCombine:
		oldestFirst := make([]File, len(files))
		for i, f := range files {
			oldestFirst[len(files)-1-i] = f
		}
		var stats CombineStats
		symbols, stats = Combine(oldestFirst)
		res.Original = stats.Unique
	default:
		var stats FilterStats
		symbols, stats = Filter(newest, files[1:])
		res.Original = stats.Original
		res.Removed = stats.Removed
	}

	res.Symbols = symbols
	res.ImportString = ImportString(symbols)

	dest := opts.OutputPath
	if dest == "" {
		dest = OutputPath(newest.Path, opts.Mode)
	}
	if err := w.Write(dest, symbols); err != nil {
		return nil, err
	}
	res.OutputPath = dest

	if opts.Mode == ModeFilter && !opts.KeepLatest {
		if err := w.DeleteSource(newest.Path); err != nil {
			return nil, err
		}
		res.SourceDeleted = true
	}

	return res, nil
}
