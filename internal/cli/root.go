// Package cli provides the command-line interface for the watchlist tool.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"watchlist-filter/internal/config"
	"watchlist-filter/internal/logging"
	"watchlist-filter/internal/store"
)

// Version information
const (
	Version = "1.2.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.RunStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize the run journal; journal failures never block a run
	if cfg.Journal.Enabled {
		runStore, err := store.NewSQLiteStore(cfg.Journal.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize run journal, history will be unavailable")
		} else {
			app.Store = runStore
			logger.Debug().Str("path", cfg.Journal.Path).Msg("Run journal initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist Filter - de-duplicate market watchlist exports",
		Long: `Watchlist Filter works on a folder of .csv/.txt symbol lists exported
from a charting tool.

'filter' strips from the newest file every symbol already present in
older files; 'combine' unions all files into one de-duplicated list in
first-seen order. Both print a one-line import string for pasting back
into the charting tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/watchlist-filter)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addRunCommands(rootCmd, app)
	addHistoryCommands(rootCmd, app)
	addCoreCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Watchlist Filter v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("File Selection")
	output.Printf("  Pattern:      %s\n", orDefault(cfg.Files.Pattern, "(all .csv/.txt)"))
	output.Printf("  Days Window:  %s\n", formatDays(cfg.Files.Days))
	output.Println()

	output.Bold("Output")
	output.Printf("  Print Import: %v\n", cfg.Output.PrintImport)
	output.Printf("  Keep Latest:  %v\n", cfg.Output.KeepLatest)
	output.Println()

	output.Bold("Journal")
	output.Printf("  Enabled:      %v\n", cfg.Journal.Enabled)
	output.Printf("  Path:         %s\n", cfg.Journal.Path)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:        %s\n", cfg.Logging.Level)
	output.Printf("  Console:      %v\n", cfg.Logging.Console)
	output.Printf("  File:         %v\n", cfg.Logging.File)

	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
