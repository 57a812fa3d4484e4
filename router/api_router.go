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

package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIRouter struct {
	*echo.Group
}

// NewAPIRouter mounts the operational endpoints. The resource routers attach to its group.
func NewAPIRouter(e *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIRouter {
	apiRouter := e.Group("")

	apiRouter.GET("/health/", healthHandler(db))
	apiRouter.GET("/info/", infoHandler(db, pool))
	apiRouter.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	return APIRouter{
		Group: apiRouter,
	}
}
