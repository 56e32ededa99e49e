package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"watchlist-filter/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Output:  config.OutputConfig{PrintImport: true},
		Journal: config.JournalConfig{Enabled: false},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(testConfig(), zerolog.Nop())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeAged(t *testing.T, dir, name, content string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFilterCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, dir, "older.csv", "NASDAQ:AAPL,NASDAQ:MSFT", 5*time.Minute)
	newest := writeAged(t, dir, "newest.csv", "NASDAQ:MSFT,NASDAQ:GOOGL", time.Minute)

	out, err := runCommand(t, "filter", dir, "--keep-latest")
	if err != nil {
		t.Fatalf("filter command: %v\n%s", err, out)
	}

	if !strings.Contains(out, "ONE-LINE IMPORT STRING") {
		t.Errorf("stdout missing import string header:\n%s", out)
	}
	if !strings.Contains(out, "NASDAQ:GOOGL") {
		t.Errorf("stdout missing filtered symbols:\n%s", out)
	}
	if !strings.Contains(out, "Newest file: newest.csv") {
		t.Errorf("stdout missing newest-file banner line:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "newest_filtered.txt"))
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if string(data) != "NASDAQ:GOOGL" {
		t.Errorf("output file = %q, want %q", data, "NASDAQ:GOOGL")
	}

	if _, err := os.Stat(newest); err != nil {
		t.Errorf("--keep-latest should preserve the source: %v", err)
	}
}

func TestFilterCommandNoPrint(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, dir, "only.csv", "NASDAQ:AAPL", time.Minute)

	out, err := runCommand(t, "filter", dir, "--keep-latest", "--no-print")
	if err != nil {
		t.Fatalf("filter command: %v", err)
	}
	if strings.Contains(out, "ONE-LINE IMPORT STRING") {
		t.Errorf("--no-print should suppress the import string block:\n%s", out)
	}
}

func TestCombineCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, dir, "older.csv", "NASDAQ:AAPL,NASDAQ:MSFT", 5*time.Minute)
	writeAged(t, dir, "newest.csv", "NASDAQ:MSFT,NASDAQ:GOOGL", time.Minute)

	out, err := runCommand(t, "combine", dir)
	if err != nil {
		t.Fatalf("combine command: %v\n%s", err, out)
	}

	if !strings.Contains(out, "ONE-LINE IMPORT STRING (COMBINED)") {
		t.Errorf("stdout missing combined header:\n%s", out)
	}
	if !strings.Contains(out, "NASDAQ:AAPL,NASDAQ:MSFT,NASDAQ:GOOGL") {
		t.Errorf("stdout missing combined symbols:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "newest_combined.txt"))
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if string(data) != "NASDAQ:AAPL,NASDAQ:MSFT,NASDAQ:GOOGL" {
		t.Errorf("output file = %q", data)
	}

	// Combine never deletes sources
	for _, name := range []string{"older.csv", "newest.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("source %s should survive combine: %v", name, err)
		}
	}
}

func TestFilterCommandFailsWithoutCandidates(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "filter", dir)
	if err == nil {
		t.Fatalf("expected failure for empty folder, got:\n%s", out)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed run must not write output, found %v", entries)
	}
}

func TestFilterCommandJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, dir, "only.csv", "NASDAQ:AAPL", time.Minute)

	out, err := runCommand(t, "filter", dir, "--keep-latest", "--json")
	if err != nil {
		t.Fatalf("filter --json: %v", err)
	}
	if !strings.Contains(out, `"mode": "filter"`) || !strings.Contains(out, `"import_string": "NASDAQ:AAPL"`) {
		t.Errorf("unexpected JSON output:\n%s", out)
	}
	if strings.Contains(out, "Watchlist Filter v") {
		t.Errorf("banner must be suppressed in JSON mode:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version command: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output missing %s:\n%s", Version, out)
	}
}
