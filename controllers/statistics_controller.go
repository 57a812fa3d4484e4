package controllers

import (
	"net/http"

	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/labstack/echo/v4"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

func (h *StatisticsController) RatingsByCategory(ctx shared.Context) error {
	ratings, err := h.statisticsService.RatingsByCategory(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not compute ratings").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, transformer.CategoryRatingsToDTOs(ratings))
}
