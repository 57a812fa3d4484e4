package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

func isOperationalPath(path string) bool {
	return strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/metrics")
}

// custom echo middleware used for request logging
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			if err == nil && !isOperationalPath(ctx.Request().URL.Path) {
				attrs := []any{
					"method", ctx.Request().Method,
					"url", ctx.Request().URL,
					"status", ctx.Response().Status,
					"duration", time.Since(now),
					"requestId", ctx.Response().Header().Get(echo.HeaderXRequestID),
				}
				if span := trace.SpanContextFromContext(ctx.Request().Context()); span.HasTraceID() {
					attrs = append(attrs, "traceId", span.TraceID().String())
				}
				slog.Info("handled request", attrs...)
			}
			return err
		}
	}
}
