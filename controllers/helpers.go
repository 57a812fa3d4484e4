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

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// bindAndValidate binds the request body into req and runs the struct validation
func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func getInt64Param(ctx shared.Context, param string) (int64, error) {
	raw := shared.GetParam(ctx, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", param))
	}
	return id, nil
}

// mapServiceError translates the domain errors into http errors
func mapServiceError(err error, entity string, action string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found").WithInternal(err)
	case errors.Is(err, shared.ErrAppExists), errors.Is(err, shared.ErrDeveloperExists):
		return echo.NewHTTPError(http.StatusConflict, entity+" already exists").WithInternal(err)
	case errors.Is(err, shared.ErrUnknownDeveloper):
		return echo.NewHTTPError(http.StatusBadRequest, "developer does not exist").WithInternal(err)
	case errors.Is(err, shared.ErrInvalidApp):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid "+entity).WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("could not %s %s", action, entity)).WithInternal(err)
}
