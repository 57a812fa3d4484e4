package mocks

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/stretchr/testify/mock"
)

// StatisticsRepository is a mock implementation of shared.StatisticsRepository
type StatisticsRepository struct {
	mock.Mock
}

func NewStatisticsRepository(t testingT) *StatisticsRepository {
	m := &StatisticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatisticsRepository) AverageRatingByCategory(ctx context.Context) ([]models.CategoryRating, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]models.CategoryRating), ret.Error(1)
}
