package watchlist

// FilterStats reports the symbol counts of a filter run.
type FilterStats struct {
	Original  int
	Removed   int
	Remaining int
}

// Filter removes from the newest file any symbol already present in the
// older reference files, preserving the newest file's original order.
func Filter(newest File, older []File) ([]string, FilterStats) {
	reference := NewSymbolSet()
	for _, f := range older {
		reference.AddAll(f.Symbols)
	}

	result := []string{}
	for _, sym := range newest.Symbols {
		if !reference.Contains(sym) {
			result = append(result, sym)
		}
	}

	return result, FilterStats{
		Original:  len(newest.Symbols),
		Removed:   len(newest.Symbols) - len(result),
		Remaining: len(result),
	}
}

// CombineStats reports the file and symbol counts of a combine run.
type CombineStats struct {
	Files  int
	Unique int
}

// Combine unions the symbols of all files, processed in the given
// order, into one list where each symbol appears once at the position
// of its first occurrence across the whole sequence. Callers pass
// files oldest first so first-seen order follows file age.
func Combine(files []File) ([]string, CombineStats) {
	set := NewSymbolSet()
	for _, f := range files {
		set.AddAll(f.Symbols)
	}
	return set.Symbols(), CombineStats{Files: len(files), Unique: set.Len()}
}
