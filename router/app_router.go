package router

import (
	"github.com/l3montree-dev/appcatalog/controllers"
	"github.com/labstack/echo/v4"
)

type AppRouter struct {
	*echo.Group
}

func NewAppRouter(
	apiRouter APIRouter,
	appController *controllers.AppController,
	statisticsController *controllers.StatisticsController,
) AppRouter {
	appRouter := apiRouter.Group.Group("/apps")
	appRouter.GET("/", appController.List)
	appRouter.POST("/", appController.Create)
	// static segment, must not be captured by :appID
	appRouter.GET("/ratings/", statisticsController.RatingsByCategory)

	appRouter.GET("/:appID/", appController.Read)
	appRouter.PUT("/:appID/", appController.Update)
	appRouter.DELETE("/:appID/", appController.Delete)

	return AppRouter{
		Group: appRouter,
	}
}
