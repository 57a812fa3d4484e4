package transformer

import (
	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/utils"
)

func CategoryModelToDTO(category models.Category) dtos.CategoryDTO {
	return dtos.CategoryDTO{
		CategoryID:   category.CategoryID,
		CategoryName: category.CategoryName,
	}
}

func CategoryModelsToListResponse(categories []models.Category) dtos.CategoryListResponse {
	return dtos.CategoryListResponse{Categories: utils.Map(categories, CategoryModelToDTO)}
}

func CategoryRatingsToDTOs(ratings []models.CategoryRating) []dtos.CategoryRatingDTO {
	return utils.Map(ratings, func(r models.CategoryRating) dtos.CategoryRatingDTO {
		return dtos.CategoryRatingDTO{
			Category:      r.CategoryName,
			AverageRating: utils.RoundTo(r.AverageRating, 2),
			AppCount:      r.AppCount,
		}
	})
}
