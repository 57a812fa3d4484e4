package services

import (
	"github.com/l3montree-dev/appcatalog/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAppService, fx.As(new(shared.AppService)))),
	fx.Provide(fx.Annotate(NewDeveloperService, fx.As(new(shared.DeveloperService)))),
	fx.Provide(fx.Annotate(NewCategoryService, fx.As(new(shared.CategoryService)))),
	fx.Provide(fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService)))),
)
