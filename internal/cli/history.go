package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// addHistoryCommands adds the run-journal commands.
func addHistoryCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newHistoryCmd(app))
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent filter/combine runs",
		Long:  "List runs recorded in the local journal, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if app.Store == nil {
				output.Warning("Run journal is not available. Enable it in config.toml ([journal] enabled = true).")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			runs, err := app.Store.ListRuns(ctx, limit)
			if err != nil {
				output.Error("Failed to read run journal: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(runs)
			}

			if len(runs) == 0 {
				output.Info("No runs recorded yet.")
				return nil
			}

			output.Bold("Recent Runs")
			for _, r := range runs {
				output.Printf("%s  %-7s  %-24s  files=%d  symbols=%d",
					r.Timestamp.Format("2006-01-02 15:04"), r.Mode,
					filepath.Base(r.NewestFile), r.FileCount, r.ResultCount)
				if r.Mode == "filter" {
					output.Printf("  removed=%d", r.RemovedCount)
				}
				output.Println()
				output.Dim("  -> %s", r.OutputPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")

	return cmd
}
