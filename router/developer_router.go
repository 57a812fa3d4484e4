package router

import (
	"github.com/l3montree-dev/appcatalog/controllers"
	"github.com/labstack/echo/v4"
)

type DeveloperRouter struct {
	*echo.Group
}

func NewDeveloperRouter(apiRouter APIRouter, developerController *controllers.DeveloperController) DeveloperRouter {
	developerRouter := apiRouter.Group.Group("/developers")
	developerRouter.GET("/", developerController.List)
	developerRouter.POST("/", developerController.Create)
	developerRouter.GET("/:developerID/", developerController.Read)
	developerRouter.PUT("/:developerID/", developerController.Update)
	developerRouter.DELETE("/:developerID/", developerController.Delete)

	return DeveloperRouter{
		Group: developerRouter,
	}
}
