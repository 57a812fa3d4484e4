package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/appcatalog/importer"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <csv file>",
		Short: "Print the columns of a csv with their inferred type and missing values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, rows, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}
			profile := importer.ProfileRows(header, rows)
			if runtimeConfig.Output != outputTable {
				return printStructured(cmd.OutOrStdout(), profile)
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"#", "Column", "Missing", "Type"})
			for i, c := range profile.Columns {
				tw.AppendRow(table.Row{i, c.Name, formatCount(int64(c.Missing)), c.Type})
			}
			tw.AppendFooter(table.Row{"", "Records", formatCount(int64(profile.TotalRecords)), ""})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}
}
