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
	"net/http"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/labstack/echo/v4"
)

type AppController struct {
	appService shared.AppService
}

func NewAppController(appService shared.AppService) *AppController {
	return &AppController{
		appService: appService,
	}
}

func (h *AppController) List(ctx shared.Context) error {
	pageInfo, err := shared.GetPageInfo(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filter, err := shared.GetAppFilter(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paged, err := h.appService.List(ctx.Request().Context(), filter, pageInfo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list apps").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, transformer.AppModelsToListResponse(paged))
}

func (h *AppController) Read(ctx shared.Context) error {
	appID := shared.GetParam(ctx, "appID")

	app, err := h.appService.Read(ctx.Request().Context(), appID)
	if err != nil {
		return mapServiceError(err, "app", "read")
	}

	return ctx.JSON(http.StatusOK, transformer.AppModelToDTO(app))
}

func (h *AppController) Create(ctx shared.Context) error {
	var req dtos.AppCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	app, categories, err := transformer.AppCreateRequestToModel(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.appService.Create(ctx.Request().Context(), app, categories)
	if err != nil {
		return mapServiceError(err, "app", "create")
	}

	return ctx.JSON(http.StatusCreated, transformer.AppModelToDTO(created))
}

func (h *AppController) Update(ctx shared.Context) error {
	appID := shared.GetParam(ctx, "appID")

	var req dtos.AppUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	app, categories, err := transformer.AppUpdateRequestToModel(appID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.appService.Update(ctx.Request().Context(), appID, app, categories)
	if err != nil {
		return mapServiceError(err, "app", "update")
	}

	return ctx.JSON(http.StatusOK, transformer.AppModelToDTO(updated))
}

func (h *AppController) Delete(ctx shared.Context) error {
	appID := shared.GetParam(ctx, "appID")

	if err := h.appService.Delete(ctx.Request().Context(), appID); err != nil {
		return mapServiceError(err, "app", "delete")
	}

	return ctx.JSON(http.StatusOK, dtos.MessageDTO{Message: "app deleted"})
}
