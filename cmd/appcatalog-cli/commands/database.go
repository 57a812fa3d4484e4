package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/appcatalog/database"
	"github.com/l3montree-dev/appcatalog/database/repositories"
	"github.com/l3montree-dev/appcatalog/shared"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	databaseStartTimeout = 30 * time.Second
	databaseStopTimeout  = 15 * time.Second
)

type databaseDeps struct {
	DB                  *gorm.DB
	AppRepository       shared.AppRepository
	DeveloperRepository shared.DeveloperRepository
	CategoryRepository  shared.CategoryRepository
}

// runWithDatabase starts a short lived fx application with the database and repository modules,
// runs fn once within the timeout and stops the application again, which closes the pool.
func runWithDatabase(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, deps databaseDeps) error) error {
	var deps databaseDeps
	app := fx.New(
		fx.NopLogger,
		database.Module,
		repositories.Module,
		fx.Populate(&deps.DB, &deps.AppRepository, &deps.DeveloperRepository, &deps.CategoryRepository),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, databaseStartTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), databaseStopTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("could not stop the database", "err", err)
		}
	}()

	runCtx, cancelRun := context.WithTimeout(ctx, timeout)
	defer cancelRun()
	return fn(runCtx, deps)
}

func migrateDB(db *gorm.DB) error {
	return database.RunMigrationsWithDB(db)
}
