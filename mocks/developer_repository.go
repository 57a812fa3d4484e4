package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// DeveloperRepository is a mock implementation of shared.DeveloperRepository
type DeveloperRepository struct {
	mock.Mock
}

func NewDeveloperRepository(t testingT) *DeveloperRepository {
	m := &DeveloperRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *DeveloperRepository) Create(ctx context.Context, tx *gorm.DB, t *models.Developer) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *DeveloperRepository) Save(ctx context.Context, tx *gorm.DB, t *models.Developer) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *DeveloperRepository) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return _m.Called(ctx, tx, id).Error(0)
}

func (_m *DeveloperRepository) Read(ctx context.Context, id int64) (models.Developer, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(models.Developer), ret.Error(1)
}

func (_m *DeveloperRepository) List(ctx context.Context, ids []int64) ([]models.Developer, error) {
	ret := _m.Called(ctx, ids)
	return ret.Get(0).([]models.Developer), ret.Error(1)
}

func (_m *DeveloperRepository) All(ctx context.Context) ([]models.Developer, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]models.Developer), ret.Error(1)
}

func (_m *DeveloperRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ret := _m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(*gorm.DB) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

func (_m *DeveloperRepository) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	ret := _m.Called(ctx, tx)
	db, _ := ret.Get(0).(*gorm.DB)
	return db
}

func (_m *DeveloperRepository) ListPaged(ctx context.Context, search string, pageInfo shared.PageInfo) (shared.Paged[models.Developer], error) {
	ret := _m.Called(ctx, search, pageInfo)
	return ret.Get(0).(shared.Paged[models.Developer]), ret.Error(1)
}

func (_m *DeveloperRepository) EnsureByNames(ctx context.Context, tx *gorm.DB, developers []models.Developer) ([]models.Developer, error) {
	ret := _m.Called(ctx, tx, developers)
	return ret.Get(0).([]models.Developer), ret.Error(1)
}
