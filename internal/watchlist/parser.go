// Package watchlist implements the watchlist symbol-set pipeline:
// parsing symbol files, selecting the newest one in a folder, and
// computing filtered or combined symbol lists.
package watchlist

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/dimchansky/utfbom"

	apperrors "watchlist-filter/internal/errors"
)

// Block comments may span lines, so they are stripped before any
// line-oriented handling.
var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// ParseSymbols extracts the ordered symbol tokens from raw watchlist text.
//
// Tokens are separated by commas and/or newlines. Lines whose trimmed
// content starts with "#", "###" or "//" contribute nothing, as do
// C-style block comments. Within a file the first occurrence of a
// symbol wins; later repeats are dropped.
func ParseSymbols(text string) []string {
	text = blockCommentRe.ReplaceAllString(text, "")

	seen := make(map[string]struct{})
	symbols := []string{}

	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			continue
		}
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" || isComment(tok) {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			symbols = append(symbols, tok)
		}
	}

	return symbols
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// isComment reports whether a trimmed line or token is a line comment.
// The "#" prefix also covers "###".
func isComment(s string) bool {
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "//")
}

// ReadSymbols reads one watchlist file and parses its symbols.
// A UTF-8 BOM, common in files exported from Windows tools, is skipped.
func ReadSymbols(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewRunError("parse", path, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err))
	}
	defer f.Close()

	data, err := io.ReadAll(utfbom.SkipOnly(f))
	if err != nil {
		return nil, apperrors.NewRunError("parse", path, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err))
	}

	return ParseSymbols(string(data)), nil
}
