package dashboard

import (
	"context"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
)

// APIClient is the part of the api client the dashboard needs
type APIClient interface {
	ListApps(ctx context.Context, query appcatalog.AppQuery) (dtos.AppListResponse, error)
	GetApp(ctx context.Context, appID string) (dtos.AppDTO, error)
	CreateApp(ctx context.Context, req dtos.AppCreateRequest) (dtos.AppDTO, error)
	UpdateApp(ctx context.Context, appID string, req dtos.AppUpdateRequest) (dtos.AppDTO, error)
	DeleteApp(ctx context.Context, appID string) error
	RatingsByCategory(ctx context.Context) ([]dtos.CategoryRatingDTO, error)
	SearchCategories(ctx context.Context, name string) ([]dtos.CategoryDTO, error)
}
