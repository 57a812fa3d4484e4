package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// CategoryRepository is a mock implementation of shared.CategoryRepository
type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CategoryRepository) Create(ctx context.Context, tx *gorm.DB, t *models.Category) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *CategoryRepository) Save(ctx context.Context, tx *gorm.DB, t *models.Category) error {
	return _m.Called(ctx, tx, t).Error(0)
}

func (_m *CategoryRepository) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return _m.Called(ctx, tx, id).Error(0)
}

func (_m *CategoryRepository) Read(ctx context.Context, id int64) (models.Category, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(models.Category), ret.Error(1)
}

func (_m *CategoryRepository) List(ctx context.Context, ids []int64) ([]models.Category, error) {
	ret := _m.Called(ctx, ids)
	return ret.Get(0).([]models.Category), ret.Error(1)
}

func (_m *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]models.Category), ret.Error(1)
}

func (_m *CategoryRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ret := _m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(*gorm.DB) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

func (_m *CategoryRepository) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	ret := _m.Called(ctx, tx)
	db, _ := ret.Get(0).(*gorm.DB)
	return db
}

func (_m *CategoryRepository) SearchByName(ctx context.Context, name string) ([]models.Category, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).([]models.Category), ret.Error(1)
}

func (_m *CategoryRepository) EnsureByNames(ctx context.Context, tx *gorm.DB, names []string) ([]models.Category, error) {
	ret := _m.Called(ctx, tx, names)
	return ret.Get(0).([]models.Category), ret.Error(1)
}
