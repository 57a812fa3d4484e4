package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/stretchr/testify/mock"
)

// APIClient is a mock implementation of dashboard.APIClient
type APIClient struct {
	mock.Mock
}

func NewAPIClient(t testingT) *APIClient {
	m := &APIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *APIClient) ListApps(ctx context.Context, query appcatalog.AppQuery) (dtos.AppListResponse, error) {
	ret := _m.Called(ctx, query)
	return ret.Get(0).(dtos.AppListResponse), ret.Error(1)
}

func (_m *APIClient) GetApp(ctx context.Context, appID string) (dtos.AppDTO, error) {
	ret := _m.Called(ctx, appID)
	return ret.Get(0).(dtos.AppDTO), ret.Error(1)
}

func (_m *APIClient) CreateApp(ctx context.Context, req dtos.AppCreateRequest) (dtos.AppDTO, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dtos.AppDTO), ret.Error(1)
}

func (_m *APIClient) UpdateApp(ctx context.Context, appID string, req dtos.AppUpdateRequest) (dtos.AppDTO, error) {
	ret := _m.Called(ctx, appID, req)
	return ret.Get(0).(dtos.AppDTO), ret.Error(1)
}

func (_m *APIClient) DeleteApp(ctx context.Context, appID string) error {
	return _m.Called(ctx, appID).Error(0)
}

func (_m *APIClient) RatingsByCategory(ctx context.Context) ([]dtos.CategoryRatingDTO, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]dtos.CategoryRatingDTO), ret.Error(1)
}

func (_m *APIClient) SearchCategories(ctx context.Context, name string) ([]dtos.CategoryDTO, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).([]dtos.CategoryDTO), ret.Error(1)
}
