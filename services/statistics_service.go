package services

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
)

type statisticsService struct {
	statisticsRepository shared.StatisticsRepository
}

func NewStatisticsService(statisticsRepository shared.StatisticsRepository) *statisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
	}
}

func (s *statisticsService) RatingsByCategory(ctx context.Context) ([]models.CategoryRating, error) {
	return s.statisticsRepository.AverageRatingByCategory(ctx)
}
