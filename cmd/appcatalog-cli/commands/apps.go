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
	"strings"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newAppsCommand() *cobra.Command {
	apps := &cobra.Command{
		Use:   "apps",
		Short: "Browse and edit the apps of a running api",
	}
	apps.AddCommand(
		newAppsListCommand(),
		newAppsGetCommand(),
		newAppsCreateCommand(),
		newAppsUpdateCommand(),
		newAppsDeleteCommand(),
	)
	return apps
}

func newAppsListCommand() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of apps with the rating distribution of that page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := appQueryFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			res, err := withSpinner("loading apps", func() (dtos.AppListResponse, error) {
				return client.ListApps(cmd.Context(), query)
			})
			if err != nil {
				return err
			}
			if runtimeConfig.Output != outputTable {
				return printStructured(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			if len(res.Apps) == 0 {
				fmt.Fprintln(w, "no apps match the filter")
				return nil
			}
			fmt.Fprintln(w, appsTable(res.Apps).Render())
			fmt.Fprintln(w, pageFooter(res.Page, res.Total, res.PageSize))
			fmt.Fprintln(w)
			fmt.Fprint(w, ratingHistogram(res.Apps))
			return nil
		},
	}

	list.Flags().String("category", "", "Only apps in this category (exact name)")
	list.Flags().Int64("categoryId", 0, "Only apps in the category with this id")
	list.Flags().Float64("minRating", 0, "Only apps rated at least this")
	list.Flags().String("maxPrice", "", "Only apps costing at most this")
	list.Flags().String("contentRating", "", "Only apps with this content rating, e.g. Everyone or Teen")
	list.Flags().StringP("search", "s", "", "Only apps whose name contains this text")
	list.Flags().IntP("page", "p", 1, "Page to show")
	list.Flags().Int("pageSize", 10, "Apps per page")
	return list
}

func appQueryFromFlags(flags *pflag.FlagSet) (appcatalog.AppQuery, error) {
	var q appcatalog.AppQuery
	q.Category, _ = flags.GetString("category")
	q.CategoryID, _ = flags.GetInt64("categoryId")
	q.ContentRating, _ = flags.GetString("contentRating")
	q.Search, _ = flags.GetString("search")
	q.Page, _ = flags.GetInt("page")
	q.PageSize, _ = flags.GetInt("pageSize")

	if flags.Changed("minRating") {
		r, _ := flags.GetFloat64("minRating")
		q.MinRating = &r
	}
	if raw, _ := flags.GetString("maxPrice"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return q, fmt.Errorf("invalid max price %q", raw)
		}
		q.MaxPrice = &p
	}
	return q, nil
}

func newAppsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <app id>",
		Short: "Show a single app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			app, err := withSpinner("loading app", func() (dtos.AppDTO, error) {
				return client.GetApp(cmd.Context(), args[0])
			})
			if err != nil {
				return err
			}
			return printApp(cmd, app)
		},
	}
}

func printApp(cmd *cobra.Command, app dtos.AppDTO) error {
	if runtimeConfig.Output != outputTable {
		return printStructured(cmd.OutOrStdout(), app)
	}
	fmt.Fprintln(cmd.OutOrStdout(), appDetails(app).Render())
	return nil
}

func addAppFlags(flags *pflag.FlagSet) {
	flags.String("name", "", "App name")
	flags.Float64("rating", 0, "Average rating between 0 and 5")
	flags.Int64("ratingCount", 0, "Number of ratings")
	flags.Int64("installs", 0, "Number of installs")
	flags.Int64("minInstalls", 0, "Lower bound of the install bucket")
	flags.Int64("maxInstalls", 0, "Upper bound of the install bucket")
	flags.Bool("free", false, "The app is free")
	flags.String("price", "0", "Price")
	flags.String("currency", "USD", "Currency of the price")
	flags.String("size", "", "Download size, e.g. 12M")
	flags.String("minAndroid", "", "Minimum android version")
	flags.String("contentRating", "", "Content rating")
	flags.String("privacyPolicy", "", "Url of the privacy policy")
	flags.String("released", "", "Release date (YYYY-MM-DD)")
	flags.String("lastUpdated", "", "Date of the last update (YYYY-MM-DD)")
	flags.Bool("adSupported", false, "The app shows ads")
	flags.Bool("inAppPurchases", false, "The app offers in app purchases")
	flags.Bool("editorsChoice", false, "The app is an editors choice")
	flags.Int64("developerId", 0, "Id of the developer")
	flags.StringSlice("categories", nil, "Category names, comma separated")
}

// applyAppFlags writes the flags the user set onto req
func applyAppFlags(flags *pflag.FlagSet, req *dtos.AppUpdateRequest) error {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	optionalDate := func(name string) *string {
		v, _ := flags.GetString(name)
		return utils.EmptyThenNil(strings.TrimSpace(v))
	}

	set("name", func() { req.AppName, _ = flags.GetString("name") })
	set("rating", func() { req.Rating, _ = flags.GetFloat64("rating") })
	set("ratingCount", func() { req.RatingCount, _ = flags.GetInt64("ratingCount") })
	set("installs", func() { req.Installs, _ = flags.GetInt64("installs") })
	set("minInstalls", func() { req.MinInstalls, _ = flags.GetInt64("minInstalls") })
	set("maxInstalls", func() { req.MaxInstalls, _ = flags.GetInt64("maxInstalls") })
	set("free", func() { req.Free, _ = flags.GetBool("free") })
	set("currency", func() { req.Currency, _ = flags.GetString("currency") })
	set("size", func() { req.Size, _ = flags.GetString("size") })
	set("minAndroid", func() { req.MinAndroid, _ = flags.GetString("minAndroid") })
	set("contentRating", func() { req.ContentRating, _ = flags.GetString("contentRating") })
	set("privacyPolicy", func() { req.PrivacyPolicy, _ = flags.GetString("privacyPolicy") })
	set("released", func() { req.Released = optionalDate("released") })
	set("lastUpdated", func() { req.LastUpdated = optionalDate("lastUpdated") })
	set("adSupported", func() { req.AdSupported, _ = flags.GetBool("adSupported") })
	set("inAppPurchases", func() { req.InAppPurchases, _ = flags.GetBool("inAppPurchases") })
	set("editorsChoice", func() { req.EditorsChoice, _ = flags.GetBool("editorsChoice") })
	set("categories", func() { req.Categories, _ = flags.GetStringSlice("categories") })
	set("developerId", func() {
		id, _ := flags.GetInt64("developerId")
		req.DeveloperID = nil
		if id > 0 {
			req.DeveloperID = &id
		}
	})

	if flags.Changed("price") {
		raw, _ := flags.GetString("price")
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid price %q", raw)
		}
		req.Price = p
	}
	return nil
}

func newAppsCreateCommand() *cobra.Command {
	create := &cobra.Command{
		Use:   "create <app id>",
		Short: "Create an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dtos.AppCreateRequest{AppID: args[0]}
			req.Currency, _ = cmd.Flags().GetString("currency")
			if err := applyAppFlags(cmd.Flags(), &req.AppUpdateRequest); err != nil {
				return err
			}
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			app, err := withSpinner("creating app", func() (dtos.AppDTO, error) {
				return client.CreateApp(cmd.Context(), req)
			})
			if err != nil {
				return err
			}
			return printApp(cmd, app)
		},
	}
	addAppFlags(create.Flags())
	create.MarkFlagRequired("name") // nolint: errcheck
	return create
}

func newAppsUpdateCommand() *cobra.Command {
	update := &cobra.Command{
		Use:   "update <app id>",
		Short: "Change the given fields of an app and keep the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			current, err := client.GetApp(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			req := transformer.AppDTOToUpdateRequest(current)
			if err := applyAppFlags(cmd.Flags(), &req); err != nil {
				return err
			}
			app, err := withSpinner("updating app", func() (dtos.AppDTO, error) {
				return client.UpdateApp(cmd.Context(), args[0], req)
			})
			if err != nil {
				return err
			}
			return printApp(cmd, app)
		},
	}
	addAppFlags(update.Flags())
	return update
}

func newAppsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <app id>",
		Short: "Delete an app and its category links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.DeleteApp(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
