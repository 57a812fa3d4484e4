// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package api

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/appcatalog/middlewares"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewServer creates the echo server and ties its lifetime to the fx application
func NewServer(lc fx.Lifecycle) *echo.Echo {
	e := middlewares.Server()
	addr := utils.GetEnvOrDefault("LISTEN_ADDR", ":8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting api server", "addr", addr)
				if err := e.Start(addr); err != nil && !middlewares.IsServerClosed(err) {
					slog.Error("api server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down api server")
			return e.Shutdown(ctx)
		},
	})
	return e
}
