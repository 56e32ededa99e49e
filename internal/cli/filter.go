package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"watchlist-filter/internal/logging"
	"watchlist-filter/internal/store"
	"watchlist-filter/internal/watchlist"
)

// addRunCommands adds the filter and combine run commands.
func addRunCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newFilterCmd(app))
	rootCmd.AddCommand(newCombineCmd(app))
}

func newFilterCmd(app *App) *cobra.Command {
	var (
		pattern    string
		days       int
		noPrint    bool
		keepLatest bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "filter [folder]",
		Short: "Strip symbols already seen in older watchlists from the newest one",
		Long: `Filter finds the newest .csv/.txt watchlist in the folder and removes
from it every symbol already present in the older files, preserving the
newest file's original order. The result is written beside the newest
file as <stem>_filtered.txt and the consumed source file is deleted
unless --keep-latest is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			folder, err := resolveFolder(args)
			if err != nil {
				return err
			}

			printBanner(output, folder)

			opts := watchlist.Options{
				Folder:     folder,
				Pattern:    pattern,
				Days:       days,
				Mode:       watchlist.ModeFilter,
				KeepLatest: keepLatest,
				OutputPath: outputPath,
			}

			res, err := watchlist.Run(opts, watchlist.NewWriter())
			if err != nil {
				app.Logger.Error().Err(err).Str("folder", folder).Msg("Filter run failed")
				return err
			}

			logging.LogRun(app.Logger, string(res.Mode), res.Folder, res.NewestFile,
				res.OutputPath, res.FileCount, len(res.Symbols))
			if res.SourceDeleted {
				logging.LogDelete(app.Logger, res.NewestFile)
			}
			recordRun(app, res)

			if output.IsJSON() {
				return output.JSON(res)
			}
			renderFilterResult(output, res, noPrint)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", app.Config.Files.Pattern, "glob pattern to pre-filter files (e.g. 'ADR*.csv')")
	cmd.Flags().IntVar(&days, "days", app.Config.Files.Days, "only consider files modified within last N days")
	cmd.Flags().BoolVar(&noPrint, "no-print", !app.Config.Output.PrintImport, "do not print the one-line import string")
	cmd.Flags().BoolVar(&keepLatest, "keep-latest", app.Config.Output.KeepLatest, "keep the newest source file instead of deleting it")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the result to this path instead of the default")

	return cmd
}

func resolveFolder(args []string) (string, error) {
	folder := "."
	if len(args) > 0 {
		folder = args[0]
	}
	return filepath.Abs(folder)
}

func renderFilterResult(output *Output, res *watchlist.Result, noPrint bool) {
	output.Printf("Newest file: %s (modified %s)\n",
		filepath.Base(res.NewestFile), FormatTimestamp(res.NewestTime))

	if res.FileCount == 1 {
		output.Println("No older files to compare; will normalize and output anyway.")
	} else {
		output.Printf("Original: %d • Removed (found in older files): %d • Remaining: %d\n",
			res.Original, res.Removed, len(res.Symbols))
	}

	output.Printf("Written: %s\n", res.OutputPath)
	if res.SourceDeleted {
		output.Dim("Deleted source: %s", filepath.Base(res.NewestFile))
	}

	if !noPrint {
		printImportString(output, "ONE-LINE IMPORT STRING", res.ImportString)
	}
}

// recordRun journals a completed run; journal failures only warn.
func recordRun(app *App, res *watchlist.Result) {
	if app.Store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := &store.RunRecord{
		Timestamp:     time.Now(),
		Mode:          string(res.Mode),
		Folder:        res.Folder,
		NewestFile:    res.NewestFile,
		FileCount:     res.FileCount,
		OriginalCount: res.Original,
		RemovedCount:  res.Removed,
		ResultCount:   len(res.Symbols),
		OutputPath:    res.OutputPath,
		SourceDeleted: res.SourceDeleted,
	}
	if err := app.Store.RecordRun(ctx, rec); err != nil {
		app.Logger.Warn().Err(err).Msg("Failed to record run in journal")
	}
}
