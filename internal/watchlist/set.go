package watchlist

// SymbolSet is a set of symbols that also records first-seen order.
// Combine mode needs the order a plain map cannot keep.
type SymbolSet struct {
	seen  map[string]struct{}
	order []string
}

// NewSymbolSet creates an empty SymbolSet.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{seen: make(map[string]struct{})}
}

// Add inserts a symbol, returning true if it was not present before.
func (s *SymbolSet) Add(symbol string) bool {
	if _, ok := s.seen[symbol]; ok {
		return false
	}
	s.seen[symbol] = struct{}{}
	s.order = append(s.order, symbol)
	return true
}

// AddAll inserts every symbol in order.
func (s *SymbolSet) AddAll(symbols []string) {
	for _, sym := range symbols {
		s.Add(sym)
	}
}

// Contains reports whether the symbol is in the set.
func (s *SymbolSet) Contains(symbol string) bool {
	_, ok := s.seen[symbol]
	return ok
}

// Len returns the number of distinct symbols.
func (s *SymbolSet) Len() int {
	return len(s.order)
}

// Symbols returns the symbols in first-seen order.
func (s *SymbolSet) Symbols() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
