package services

import (
	"context"
	"strings"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
)

type categoryService struct {
	categoryRepository shared.CategoryRepository
}

func NewCategoryService(categoryRepository shared.CategoryRepository) *categoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
	}
}

func (s *categoryService) Search(ctx context.Context, name string) ([]models.Category, error) {
	return s.categoryRepository.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *categoryService) Read(ctx context.Context, id int64) (models.Category, error) {
	return s.categoryRepository.Read(ctx, id)
}
