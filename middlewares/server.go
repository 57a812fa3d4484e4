package middlewares

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"
)

func allowedOrigins() []string {
	origins := utils.GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")
	return utils.Map(strings.Split(origins, ","), strings.TrimSpace)
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(otelecho.Middleware("appcatalog"))
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     allowedOrigins(),
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())
	e.Use(metrics())
	e.Use(recovermiddleware())

	if limit, err := strconv.ParseFloat(os.Getenv("API_RATE_LIMIT"), 64); err == nil && limit > 0 {
		slog.Info("rate limiting enabled", "requestsPerSecond", limit)
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(limit))))
	}

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}

		if he.Code >= http.StatusInternalServerError {
			slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		} else {
			slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		}

		if ctx.Response().Committed {
			return
		}

		var message any
		switch m := he.Message.(type) {
		case string:
			if e.Debug && he.Internal != nil {
				message = echo.Map{"message": m, "error": he.Internal.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case json.Marshaler:
			// do nothing - this type knows how to format itself to JSON
			message = m
		case error:
			message = echo.Map{"message": m.Error()}
		default:
			message = echo.Map{"message": m}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead { // Issue #608
			if err := ctx.NoContent(he.Code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		} else {
			if err := ctx.JSON(he.Code, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	e.Debug = os.Getenv("ENVIRONMENT") == "dev"
	e.Server.ReadTimeout = utils.GetEnvDurationOrDefault("HTTP_READ_TIMEOUT", 30*time.Second)
	e.Server.WriteTimeout = utils.GetEnvDurationOrDefault("HTTP_WRITE_TIMEOUT", 30*time.Second)
	registerMiddlewares(e)
	if utils.GetEnvBool("ENABLE_PPROF") {
		AddProfileEndpoints(e)
	}
	return e
}

// IsServerClosed reports whether err is the regular result of a shutdown
func IsServerClosed(err error) bool {
	return errors.Is(err, http.ErrServerClosed)
}
