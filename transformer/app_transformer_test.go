package transformer

import (
	"testing"
	"time"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestAppUpdateRequestToModel(t *testing.T) {
	t.Run("should parse dates and normalize the categories", func(t *testing.T) {
		app, categories, err := AppCreateRequestToModel(dtos.AppCreateRequest{
			AppID: " com.example.app ",
			AppUpdateRequest: dtos.AppUpdateRequest{
				AppName:     "Example",
				Price:       decimal.RequireFromString("1.99"),
				Released:    utils.Ptr("2020-02-26"),
				LastUpdated: nil,
				Categories:  []string{" Tools", "Tools", "", "Games "},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "com.example.app", app.AppID)
		assert.Equal(t, "2020-02-26", time.Time(*app.Released).Format(dtos.DateLayout))
		assert.Nil(t, app.LastUpdated)
		assert.Equal(t, []string{"Tools", "Games"}, categories)
	})

	t.Run("should return an error for an invalid date", func(t *testing.T) {
		_, _, err := AppUpdateRequestToModel("id", dtos.AppUpdateRequest{Released: utils.Ptr("Feb 26, 2020")})
		assert.Error(t, err)
	})
}

func TestAppModelToDTO(t *testing.T) {
	released := datatypes.Date(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))
	dto := AppModelToDTO(models.App{
		AppID:       "com.example.app",
		Released:    &released,
		DeveloperID: utils.Ptr(int64(3)),
		Developer:   &models.Developer{DeveloperID: 3, DeveloperName: "Example Inc."},
		Categories:  []models.Category{{CategoryName: "Tools"}},
	})

	assert.Equal(t, "2021-03-04", *dto.Released)
	assert.Nil(t, dto.LastUpdated)
	assert.Equal(t, "Example Inc.", *dto.DeveloperName)
	assert.Equal(t, []string{"Tools"}, dto.Categories)
}

func TestCategoryRatingsToDTOs(t *testing.T) {
	result := CategoryRatingsToDTOs([]models.CategoryRating{{CategoryName: "Tools", AverageRating: 4.3333333, AppCount: 3}})
	assert.Equal(t, 4.33, result[0].AverageRating)
	assert.Equal(t, "Tools", result[0].Category)
}
