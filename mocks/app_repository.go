package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// AppRepository is a mock implementation of shared.AppRepository
type AppRepository struct {
	mock.Mock
}

func NewAppRepository(t testingT) *AppRepository {
	m := &AppRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AppRepository) Create(ctx context.Context, tx *gorm.DB, t *models.App) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *AppRepository) Save(ctx context.Context, tx *gorm.DB, t *models.App) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *AppRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return _m.Called(ctx, tx, id).Error(0)
}

func (_m *AppRepository) Read(ctx context.Context, id string) (models.App, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(models.App), ret.Error(1)
}

func (_m *AppRepository) List(ctx context.Context, ids []string) ([]models.App, error) {
	ret := _m.Called(ctx, ids)
	return ret.Get(0).([]models.App), ret.Error(1)
}

func (_m *AppRepository) All(ctx context.Context) ([]models.App, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]models.App), ret.Error(1)
}

// Transaction either returns the configured error or runs the configured function
func (_m *AppRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ret := _m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(*gorm.DB) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

func (_m *AppRepository) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	ret := _m.Called(ctx, tx)
	db, _ := ret.Get(0).(*gorm.DB)
	return db
}

func (_m *AppRepository) ReadWithRelations(ctx context.Context, tx *gorm.DB, appID string) (models.App, error) {
	ret := _m.Called(ctx, tx, appID)
	return ret.Get(0).(models.App), ret.Error(1)
}

func (_m *AppRepository) ListPaged(ctx context.Context, filter shared.AppFilter, pageInfo shared.PageInfo) (shared.Paged[models.App], error) {
	ret := _m.Called(ctx, filter, pageInfo)
	return ret.Get(0).(shared.Paged[models.App]), ret.Error(1)
}

func (_m *AppRepository) CreateBatch(ctx context.Context, tx *gorm.DB, apps []models.App, skipExisting bool) (int64, error) {
	ret := _m.Called(ctx, tx, apps, skipExisting)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *AppRepository) ReplaceCategories(ctx context.Context, tx *gorm.DB, appID string, categoryIDs []int64) error {
	return _m.Called(ctx, tx, appID, categoryIDs).Error(0)
}

func (_m *AppRepository) LinkCategories(ctx context.Context, tx *gorm.DB, links []models.AppCategory) error {
	return _m.Called(ctx, tx, links).Error(0)
}
