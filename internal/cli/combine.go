package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"watchlist-filter/internal/logging"
	"watchlist-filter/internal/watchlist"
)

func newCombineCmd(app *App) *cobra.Command {
	var (
		pattern    string
		days       int
		noPrint    bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "combine [folder]",
		Short: "Union all watchlists into one de-duplicated list",
		Long: `Combine unions the symbols of every .csv/.txt watchlist in the folder,
processed oldest to newest, into one list where each symbol appears once
at its first occurrence. The result is written beside the newest file as
<stem>_combined.txt. No source file is ever deleted.`,
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
				Mode:       watchlist.ModeCombine,
				OutputPath: outputPath,
			}

			res, err := watchlist.Run(opts, watchlist.NewWriter())
			if err != nil {
				app.Logger.Error().Err(err).Str("folder", folder).Msg("Combine run failed")
				return err
			}

			logging.LogRun(app.Logger, string(res.Mode), res.Folder, res.NewestFile,
				res.OutputPath, res.FileCount, len(res.Symbols))
			recordRun(app, res)

			if output.IsJSON() {
				return output.JSON(res)
			}
			renderCombineResult(output, res, noPrint)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", app.Config.Files.Pattern, "glob pattern to pre-filter files (e.g. 'ADR*.csv')")
	cmd.Flags().IntVar(&days, "days", app.Config.Files.Days, "only consider files modified within last N days")
	cmd.Flags().BoolVar(&noPrint, "no-print", !app.Config.Output.PrintImport, "do not print the one-line import string")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the result to this path instead of the default")

	return cmd
}

func renderCombineResult(output *Output, res *watchlist.Result, noPrint bool) {
	output.Printf("Newest file: %s (modified %s)\n",
		filepath.Base(res.NewestFile), FormatTimestamp(res.NewestTime))
	output.Printf("Files: %d • Unique symbols: %d\n", res.FileCount, len(res.Symbols))
	output.Printf("Written: %s\n", res.OutputPath)

	if !noPrint {
		printImportString(output, "ONE-LINE IMPORT STRING (COMBINED)", res.ImportString)
	}
}
