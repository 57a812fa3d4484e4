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
	"strings"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/labstack/echo/v4"
)

type DeveloperController struct {
	developerService shared.DeveloperService
}

func NewDeveloperController(developerService shared.DeveloperService) *DeveloperController {
	return &DeveloperController{
		developerService: developerService,
	}
}

func (h *DeveloperController) List(ctx shared.Context) error {
	pageInfo, err := shared.GetPageInfo(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paged, err := h.developerService.List(ctx.Request().Context(), strings.TrimSpace(ctx.QueryParam("search")), pageInfo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list developers").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, paged.Map(func(d models.Developer) any {
		return transformer.DeveloperModelToDTO(d)
	}))
}

func (h *DeveloperController) Read(ctx shared.Context) error {
	id, err := getInt64Param(ctx, "developerID")
	if err != nil {
		return err
	}

	developer, err := h.developerService.Read(ctx.Request().Context(), id)
	if err != nil {
		return mapServiceError(err, "developer", "read")
	}

	return ctx.JSON(http.StatusOK, transformer.DeveloperModelToDTO(developer))
}

func (h *DeveloperController) Create(ctx shared.Context) error {
	var req dtos.DeveloperCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	developer := transformer.DeveloperRequestToModel(0, req)
	if err := h.developerService.Create(ctx.Request().Context(), &developer); err != nil {
		return mapServiceError(err, "developer", "create")
	}

	return ctx.JSON(http.StatusCreated, transformer.DeveloperModelToDTO(developer))
}

func (h *DeveloperController) Update(ctx shared.Context) error {
	id, err := getInt64Param(ctx, "developerID")
	if err != nil {
		return err
	}

	var req dtos.DeveloperUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	developer := transformer.DeveloperRequestToModel(id, req)
	if err := h.developerService.Update(ctx.Request().Context(), &developer); err != nil {
		return mapServiceError(err, "developer", "update")
	}

	return ctx.JSON(http.StatusOK, transformer.DeveloperModelToDTO(developer))
}

func (h *DeveloperController) Delete(ctx shared.Context) error {
	id, err := getInt64Param(ctx, "developerID")
	if err != nil {
		return err
	}

	if err := h.developerService.Delete(ctx.Request().Context(), id); err != nil {
		return mapServiceError(err, "developer", "delete")
	}

	return ctx.JSON(http.StatusOK, dtos.MessageDTO{Message: "developer deleted"})
}
