package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// AppService is a mock implementation of shared.AppService
type AppService struct {
	mock.Mock
}

func NewAppService(t testingT) *AppService {
	m := &AppService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AppService) List(ctx context.Context, filter shared.AppFilter, pageInfo shared.PageInfo) (shared.Paged[models.App], error) {
	ret := _m.Called(ctx, filter, pageInfo)
	return ret.Get(0).(shared.Paged[models.App]), ret.Error(1)
}

func (_m *AppService) Read(ctx context.Context, appID string) (models.App, error) {
	ret := _m.Called(ctx, appID)
	return ret.Get(0).(models.App), ret.Error(1)
}

func (_m *AppService) Create(ctx context.Context, app models.App, categoryNames []string) (models.App, error) {
	ret := _m.Called(ctx, app, categoryNames)
	return ret.Get(0).(models.App), ret.Error(1)
}

func (_m *AppService) Update(ctx context.Context, appID string, app models.App, categoryNames []string) (models.App, error) {
	ret := _m.Called(ctx, appID, app, categoryNames)
	return ret.Get(0).(models.App), ret.Error(1)
}

func (_m *AppService) Delete(ctx context.Context, appID string) error {
	return _m.Called(ctx, appID).Error(0)
}

// DeveloperService is a mock implementation of shared.DeveloperService
type DeveloperService struct {
	mock.Mock
}

func NewDeveloperService(t testingT) *DeveloperService {
	m := &DeveloperService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *DeveloperService) List(ctx context.Context, search string, pageInfo shared.PageInfo) (shared.Paged[models.Developer], error) {
	ret := _m.Called(ctx, search, pageInfo)
	return ret.Get(0).(shared.Paged[models.Developer]), ret.Error(1)
}

func (_m *DeveloperService) Read(ctx context.Context, id int64) (models.Developer, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(models.Developer), ret.Error(1)
}

func (_m *DeveloperService) Create(ctx context.Context, developer *models.Developer) error {
	return _m.Called(ctx, developer).Error(0)
}

func (_m *DeveloperService) Update(ctx context.Context, developer *models.Developer) error {
	return _m.Called(ctx, developer).Error(0)
}

func (_m *DeveloperService) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

// CategoryService is a mock implementation of shared.CategoryService
type CategoryService struct {
	mock.Mock
}

func NewCategoryService(t testingT) *CategoryService {
	m := &CategoryService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CategoryService) Search(ctx context.Context, name string) ([]models.Category, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).([]models.Category), ret.Error(1)
}

func (_m *CategoryService) Read(ctx context.Context, id int64) (models.Category, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(models.Category), ret.Error(1)
}

// StatisticsService is a mock implementation of shared.StatisticsService
type StatisticsService struct {
	mock.Mock
}

func NewStatisticsService(t testingT) *StatisticsService {
	m := &StatisticsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatisticsService) RatingsByCategory(ctx context.Context) ([]models.CategoryRating, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]models.CategoryRating), ret.Error(1)
}
