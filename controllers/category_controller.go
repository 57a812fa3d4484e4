package controllers

import (
	"net/http"

	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	categoryService shared.CategoryService
}

func NewCategoryController(categoryService shared.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// Search lists the categories whose name contains the name query parameter
func (h *CategoryController) Search(ctx shared.Context) error {
	categories, err := h.categoryService.Search(ctx.Request().Context(), ctx.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not search categories").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, transformer.CategoryModelsToListResponse(categories))
}

func (h *CategoryController) Read(ctx shared.Context) error {
	id, err := getInt64Param(ctx, "categoryID")
	if err != nil {
		return err
	}

	category, err := h.categoryService.Read(ctx.Request().Context(), id)
	if err != nil {
		return mapServiceError(err, "category", "read")
	}
	return ctx.JSON(http.StatusOK, transformer.CategoryModelToDTO(category))
}
