package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/l3montree-dev/appcatalog/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(cmd.Context(), 5*time.Minute, func(_ context.Context, deps databaseDeps) error {
				if err := migrateDB(deps.DB); err != nil {
					return err
				}
				version, dirty, err := database.GetMigrationVersionWithDB(deps.DB)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
}
