package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Banner timestamp format, matching what charting tools show for file
// modification times.
const timestampFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders a modification time for the banner.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampFormat)
}

// formatDays renders the recency window for config display.
func formatDays(days int) string {
	if days <= 0 {
		return "(disabled)"
	}
	return fmt.Sprintf("%d days", days)
}

// printBanner prints the run banner: tool title and the folder line.
func printBanner(output *Output, folder string) {
	if output.IsJSON() {
		return
	}
	title := "Watchlist Filter"
	if output.colorEnabled {
		title = color.New(color.Bold).Sprint(title)
	}
	output.Printf("%s v%s\n", title, Version)
	output.Printf("Folder: %s\n", folder)
}

// printImportString prints the one-line import string block.
func printImportString(output *Output, header, importString string) {
	output.Println()
	if output.colorEnabled {
		output.Println(color.New(color.FgCyan).Sprintf("=== %s ===", header))
	} else {
		output.Printf("=== %s ===\n", header)
	}
	output.Println(importString)
}
