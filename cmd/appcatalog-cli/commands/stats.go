package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Aggregates over the whole catalog",
	}
	stats.AddCommand(&cobra.Command{
		Use:   "ratings",
		Short: "Average rating and number of apps per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			ratings, err := withSpinner("loading ratings", func() ([]dtos.CategoryRatingDTO, error) {
				return client.RatingsByCategory(cmd.Context())
			})
			if err != nil {
				return err
			}
			if runtimeConfig.Output != outputTable {
				return printStructured(cmd.OutOrStdout(), ratings)
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"Category", "Average rating", "Apps"})
			var apps int64
			for _, r := range ratings {
				tw.AppendRow(table.Row{r.Category, fmt.Sprintf("%.2f", r.AverageRating), formatCount(r.AppCount)})
				apps += r.AppCount
			}
			tw.AppendFooter(table.Row{"", "", formatCount(apps)})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
			})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	})
	return stats
}
