// Package config provides configuration management for the watchlist tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "watchlist-filter/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Files   FilesConfig   `mapstructure:"files"`
	Output  OutputConfig  `mapstructure:"output"`
	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FilesConfig holds default file-selection settings.
type FilesConfig struct {
	Pattern string `mapstructure:"pattern"` // glob pattern, empty means all .csv/.txt
	Days    int    `mapstructure:"days"`    // recency window in days, 0 disables
}

// OutputConfig holds default output behavior.
type OutputConfig struct {
	PrintImport bool `mapstructure:"print_import"` // print the one-line import string
	KeepLatest  bool `mapstructure:"keep_latest"`  // filter mode: keep the newest source file
}

// JournalConfig holds run-journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`    // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`     // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/watchlist-filter"
	}
	return filepath.Join(home, ".config", "watchlist-filter")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template and carry on with defaults
			if terr := createTemplateConfig(configDir); terr != nil {
				return terr
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("files.pattern", "")
	v.SetDefault("files.days", 0)
	v.SetDefault("output.print_import", true)
	v.SetDefault("output.keep_latest", false)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(configDir, "watchlist.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "watchlist.log"))
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WATCHLIST_PATTERN"); v != "" {
		cfg.Files.Pattern = v
	}
	if v := os.Getenv("WATCHLIST_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Files.Days = days
		}
	}
	if v := os.Getenv("WATCHLIST_JOURNAL"); v != "" {
		cfg.Journal.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("WATCHLIST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Files.Days < 0 {
		return apperrors.NewValidationError("files.days", c.Files.Days, "must be zero or positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewValidationError("logging.level", c.Logging.Level, "must be one of debug, info, warn, error")
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return apperrors.NewValidationError("journal.path", c.Journal.Path, "required when journal is enabled")
	}
	return nil
}
