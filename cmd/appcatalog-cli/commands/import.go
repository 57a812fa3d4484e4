// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/appcatalog/importer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <csv file>",
		Short: "Clean a scraped Play Store csv and load it into the database",
		Long: `Reads the csv (optionally xz compressed), drops exact duplicates and rows missing
App Name, App Id, Category or Developer Id, coerces the remaining values and loads
developers, categories, apps and their category links.

In skip mode apps that already exist are left untouched, so the import can be
repeated. In always mode an existing app id aborts the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeFlag, _ := cmd.Flags().GetString("mode")
			batchSize, _ := cmd.Flags().GetInt("batchSize")
			dryRun, _ := cmd.Flags().GetBool("dryRun")
			rejectedPath, _ := cmd.Flags().GetString("rejected")
			noProgress, _ := cmd.Flags().GetBool("noProgress")
			skipMigrate, _ := cmd.Flags().GetBool("skipMigrate")

			mode, err := importer.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			if batchSize <= 0 || batchSize > importer.MaxBatchSize {
				return fmt.Errorf("batch size must be between 1 and %d", importer.MaxBatchSize)
			}

			header, raw, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}
			normalized := importer.Normalize(raw)
			slog.Info("normalized csv", "records", normalized.Total, "rows", len(normalized.Rows), "duplicates", normalized.Duplicates, "rejected", len(normalized.Rejected))

			if rejectedPath != "" {
				if err := importer.WriteRejectedFile(rejectedPath, header, normalized.Rejected); err != nil {
					return errors.Wrap(err, "could not write rejected rows")
				}
			}

			opts := importer.Options{
				Mode:         mode,
				BatchSize:    batchSize,
				DryRun:       dryRun,
				ShowProgress: !noProgress,
			}

			var summary importer.Summary
			if dryRun {
				summary, err = importer.NewImporter(nil, nil, nil).Load(cmd.Context(), normalized, opts)
				if err != nil {
					return err
				}
				return printSummary(cmd.OutOrStdout(), summary)
			}

			err = runWithDatabase(cmd.Context(), 2*time.Hour, func(ctx context.Context, deps databaseDeps) error {
				if !skipMigrate {
					if err := migrateDB(deps.DB); err != nil {
						return err
					}
				}
				summary, err = importer.NewImporter(deps.AppRepository, deps.DeveloperRepository, deps.CategoryRepository).Load(ctx, normalized, opts)
				return err
			})
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), summary)
		},
	}

	importCmd.Flags().String("mode", string(importer.ModeSkip), "What to do with apps that already exist. Options: skip, always")
	importCmd.Flags().Int("batchSize", importer.DefaultBatchSize, "Number of apps inserted per transaction")
	importCmd.Flags().Bool("dryRun", false, "Only clean the csv and print what would be imported")
	importCmd.Flags().String("rejected", "", "Write the rejected rows with the reason to this csv file")
	importCmd.Flags().Bool("noProgress", false, "Do not render a progress bar")
	importCmd.Flags().Bool("skipMigrate", false, "Do not run the schema migrations before the import")
	return importCmd
}

func printSummary(w io.Writer, summary importer.Summary) error {
	if runtimeConfig.Output != outputTable {
		return printStructured(w, summary)
	}
	tw := table.NewWriter()
	tw.AppendRows([]table.Row{
		{"Rows read", formatCount(int64(summary.RowsRead))},
		{"Duplicates dropped", formatCount(int64(summary.Duplicates))},
		{"Rows rejected", formatCount(int64(summary.Rejected))},
		{"Developers", formatCount(int64(summary.Developers))},
		{"Categories", formatCount(int64(summary.Categories))},
		{"Apps inserted", formatCount(summary.AppsInserted)},
		{"Apps skipped", formatCount(summary.AppsSkipped)},
		{"Category links", formatCount(int64(summary.CategoryLinks))},
		{"Dry run", summary.DryRun},
		{"Duration", summary.Duration.Round(time.Millisecond)},
	})
	fmt.Fprintln(w, tw.Render())
	return nil
}
