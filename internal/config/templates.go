package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Watchlist Filter Configuration

[files]
# Glob pattern to pre-filter candidate files (e.g. "ADR*.csv").
# Empty matches every .csv/.txt file in the folder.
pattern = ""
# Only consider files modified within the last N days. 0 disables the window.
days = 0

[output]
# Print the one-line import string after a run
print_import = true
# Filter mode: keep the newest source file instead of deleting it
keep_latest = false

[journal]
# Record completed runs in a local SQLite journal ("watchlist history")
enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Echo logs to the terminal (stderr)
console = false
# Write logs to a rotating file
file = true
# Rotation: max file size in MB, number of backups, max age in days
max_size = 10
max_backups = 3
max_age = 30
`

// createTemplateConfig writes a commented config.toml so users have
// something to edit on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
