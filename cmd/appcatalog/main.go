// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/appcatalog/cmd/appcatalog/api"
	"github.com/l3montree-dev/appcatalog/controllers"
	"github.com/l3montree-dev/appcatalog/database"
	"github.com/l3montree-dev/appcatalog/database/repositories"
	"github.com/l3montree-dev/appcatalog/monitoring"
	"github.com/l3montree-dev/appcatalog/router"
	"github.com/l3montree-dev/appcatalog/services"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "appcatalog")
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	fx.New(
		database.Module,
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		fx.Provide(api.NewServer),

		// migrations run before any router is registered
		fx.Invoke(migrate),
		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.AppRouter) {}),
		fx.Invoke(func(router.DeveloperRouter) {}),
		fx.Invoke(func(router.CategoryRouter) {}),
		fx.Invoke(func(*echo.Echo) {}),
	).Run()
}

func migrate(db *gorm.DB) error {
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return nil
	}
	slog.Info("running database migrations...")
	if err := database.RunMigrationsWithDB(db); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		return errors.New("failed to run database migrations")
	}
	return nil
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
