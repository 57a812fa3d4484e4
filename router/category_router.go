package router

import (
	"github.com/l3montree-dev/appcatalog/controllers"
	"github.com/labstack/echo/v4"
)

type CategoryRouter struct {
	*echo.Group
}

func NewCategoryRouter(apiRouter APIRouter, categoryController *controllers.CategoryController) CategoryRouter {
	categoryRouter := apiRouter.Group.Group("/categories")
	categoryRouter.GET("/", categoryController.Search)
	categoryRouter.GET("/:categoryID/", categoryController.Read)

	return CategoryRouter{
		Group: categoryRouter,
	}
}
