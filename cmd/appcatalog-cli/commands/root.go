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
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".appcatalog"

// set via ldflags during build
var version = "dev"

func NewRootCommand() *cobra.Command {
	var cfgFile string
	v := viper.New()

	root := &cobra.Command{
		SilenceUsage:      true,
		Use:               "appcatalog-cli",
		Short:             "Manage and browse the app catalog",
		Version:           version,
		DisableAutoGenTag: true,
		Long: `Manage and browse the app catalog

The database commands (migrate, import) read the POSTGRES_* environment variables.
The browsing commands (apps, stats) talk to a running api. Configuration can be
provided via a ./.appcatalog config file or environment variables (prefix APPCATALOG_).`,
		Example: `  # Load a scraped csv into the database
  appcatalog-cli import Google-Playstore.csv --mode skip --rejected rejected.csv

  # List the best rated games
  appcatalog-cli apps list --category Games --minRating 4.5

  # Show the average rating per category
  appcatalog-cli stats ratings`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, cmd, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the config file (default ./.appcatalog.yaml)")
	root.PersistentFlags().String("apiUrl", "http://localhost:8080", "Base url of the app catalog api")
	root.PersistentFlags().Duration("timeout", 0, "Timeout of a single api call (default 15s)")
	root.PersistentFlags().StringP("output", "o", "table", "Output format. Options: table, yaml, json")

	root.AddCommand(
		newMigrateCommand(),
		newImportCommand(),
		newAnalyzeCommand(),
		newAppsCommand(),
		newStatsCommand(),
	)
	return root
}

func initializeConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(defaultConfigFilename)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	v.SetEnvPrefix("APPCATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	// the documented names do not follow the flag names
	v.BindEnv("apiUrl", "APPCATALOG_API_URL")     // nolint: errcheck
	v.BindEnv("timeout", "APPCATALOG_API_TIMEOUT") // nolint: errcheck

	bindFlags(v, cmd)
	return parseConfig(v)
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))) // nolint: errcheck
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
