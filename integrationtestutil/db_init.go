package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/l3montree-dev/appcatalog/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

const postgresImage = "postgres:16-alpine"

const (
	dbName     = "appcatalog"
	dbUser     = "user"
	dbPassword = "password"
)

// startContainer starts a postgres container and returns its host and mapped port.
// The returned function terminates the container.
func startContainer(ctx context.Context) (string, string, func()) {
	postgresC, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")
	return host, port.Port(), terminate
}

// InitDatabaseContainer starts a postgres container and runs the embedded migrations against it.
// The returned function terminates the container.
func InitDatabaseContainer() (*gorm.DB, func()) {
	host, port, terminate := startContainer(context.Background())

	db, err := database.NewConnection(host, dbUser, dbPassword, dbName, port)
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, terminate
}

// SetupDatabaseEnv starts an empty postgres container and points the POSTGRES_* environment
// variables at it. Integration tests are skipped with -short.
func SetupDatabaseEnv(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	host, port, terminate := startContainer(context.Background())
	t.Cleanup(terminate)

	t.Setenv("POSTGRES_HOST", host)
	t.Setenv("POSTGRES_PORT", port)
	t.Setenv("POSTGRES_USER", dbUser)
	t.Setenv("POSTGRES_PASSWORD", dbPassword)
	t.Setenv("POSTGRES_DB", dbName)
}

// SetupDatabase is a helper for tests. Integration tests are skipped with -short.
func SetupDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, terminate := InitDatabaseContainer()
	t.Cleanup(terminate)
	return db
}

// TruncateAll empties all catalog tables and resets the sequences.
func TruncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Exec("TRUNCATE app_categories, apps, categories, developers RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("could not truncate tables: %s", err)
	}
}
