package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIRouter),
	fx.Provide(NewAppRouter),
	fx.Provide(NewDeveloperRouter),
	fx.Provide(NewCategoryRouter),
)
