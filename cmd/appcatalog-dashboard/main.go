package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/appcatalog/dashboard"
	"github.com/l3montree-dev/appcatalog/middlewares"
	"github.com/l3montree-dev/appcatalog/monitoring"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

func newAPIClient() (*appcatalog.Client, error) {
	apiURL := utils.GetEnvOrDefault("APPCATALOG_API_URL", "http://localhost:8080")
	timeout := utils.GetEnvDurationOrDefault("APPCATALOG_API_TIMEOUT", appcatalog.DefaultTimeout)
	slog.Info("using app catalog api", "url", apiURL, "timeout", timeout)
	return appcatalog.NewClient(apiURL, timeout)
}

func newServer(lc fx.Lifecycle, client dashboard.APIClient) (*echo.Echo, error) {
	e, err := dashboard.NewServer(client)
	if err != nil {
		return nil, err
	}
	addr := utils.GetEnvOrDefault("DASHBOARD_LISTEN_ADDR", ":8081")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting dashboard", "addr", addr)
				if err := e.Start(addr); err != nil && !middlewares.IsServerClosed(err) {
					slog.Error("dashboard stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down dashboard")
			return e.Shutdown(ctx)
		},
	})
	return e, nil
}

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
			Environment:      utils.GetEnvOrDefault("ENVIRONMENT", "dev"),
			Release:          release,
			AttachStacktrace: true,
		})
		if err != nil {
			slog.Error("Failed to init sentry", "err", err)
		}
		defer sentry.Flush(5 * time.Second)
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "appcatalog-dashboard")
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	fx.New(
		fx.Provide(fx.Annotate(newAPIClient, fx.As(new(dashboard.APIClient)))),
		fx.Provide(newServer),
		fx.Invoke(func(*echo.Echo) {}),
	).Run()
}
