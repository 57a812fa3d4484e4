package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/database/repositories"
	"github.com/l3montree-dev/appcatalog/integrationtestutil"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestAppRepository(t *testing.T) {
	db := integrationtestutil.SetupDatabase(t)
	ctx := context.Background()

	appRepository := repositories.NewAppRepository(db)
	developerRepository := repositories.NewDeveloperRepository(db)
	categoryRepository := repositories.NewCategoryRepository(db)
	statisticsRepository := repositories.NewStatisticsRepository(db)

	t.Run("should page through the filtered apps", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)

		apps := make([]models.App, 0, 30)
		for i := range 25 {
			apps = append(apps, models.App{AppID: fmt.Sprintf("com.example.good%02d", i), AppName: "good", Rating: 4.5})
		}
		for i := range 5 {
			apps = append(apps, models.App{AppID: fmt.Sprintf("com.example.bad%02d", i), AppName: "bad", Rating: 3.0})
		}
		inserted, err := appRepository.CreateBatch(ctx, nil, apps, true)
		require.NoError(t, err)
		assert.Equal(t, int64(30), inserted)

		filter := shared.AppFilter{MinRating: utils.Ptr(4.0)}
		sizes := []int{}
		seen := map[string]struct{}{}
		for page := 1; page <= 3; page++ {
			paged, err := appRepository.ListPaged(ctx, filter, shared.PageInfo{Page: page, PageSize: 10})
			require.NoError(t, err)
			assert.Equal(t, int64(25), paged.Total)
			sizes = append(sizes, len(paged.Data))
			for _, app := range paged.Data {
				assert.Equal(t, 4.5, app.Rating)
				seen[app.AppID] = struct{}{}
			}
		}
		assert.Equal(t, []int{10, 10, 5}, sizes)
		assert.Len(t, seen, 25)
	})

	t.Run("should skip existing apps in skip mode and fail otherwise", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)
		apps := []models.App{{AppID: "com.example.a", AppName: "a"}}

		inserted, err := appRepository.CreateBatch(ctx, nil, apps, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)

		inserted, err = appRepository.CreateBatch(ctx, nil, apps, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)

		_, err = appRepository.CreateBatch(ctx, nil, apps, false)
		assert.Error(t, err)
	})

	t.Run("should filter by category, price and content rating", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)
		categories, err := categoryRepository.EnsureByNames(ctx, nil, []string{"Tools", "Games"})
		require.NoError(t, err)
		require.Len(t, categories, 2)
		ids := map[string]int64{}
		for _, c := range categories {
			ids[c.CategoryName] = c.CategoryID
		}

		_, err = appRepository.CreateBatch(ctx, nil, []models.App{
			{AppID: "tool.free", AppName: "Free Tool", ContentRating: "Everyone", Price: decimal.Zero, Rating: 4},
			{AppID: "tool.paid", AppName: "Paid Tool", ContentRating: "Teen", Price: decimal.RequireFromString("4.99"), Rating: 2},
			{AppID: "game.paid", AppName: "Paid Game", ContentRating: "Everyone", Price: decimal.RequireFromString("0.99"), Rating: 5},
		}, true)
		require.NoError(t, err)
		require.NoError(t, appRepository.LinkCategories(ctx, nil, []models.AppCategory{
			{AppID: "tool.free", CategoryID: ids["Tools"]},
			{AppID: "tool.paid", CategoryID: ids["Tools"]},
			{AppID: "game.paid", CategoryID: ids["Games"]},
			{AppID: "game.paid", CategoryID: ids["Games"]},
		}))

		paged, err := appRepository.ListPaged(ctx, shared.AppFilter{Category: "Tools"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), paged.Total)

		paged, err = appRepository.ListPaged(ctx, shared.AppFilter{MaxPrice: utils.Ptr(decimal.RequireFromString("1"))}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), paged.Total)

		paged, err = appRepository.ListPaged(ctx, shared.AppFilter{ContentRating: "Everyone", CategoryID: utils.Ptr(ids["Games"])}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, paged.Data, 1)
		assert.Equal(t, "game.paid", paged.Data[0].AppID)
		assert.Equal(t, []string{"Games"}, paged.Data[0].CategoryNames())

		paged, err = appRepository.ListPaged(ctx, shared.AppFilter{Search: "tool"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), paged.Total)

		ratings, err := statisticsRepository.AverageRatingByCategory(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.CategoryRating{
			{CategoryName: "Games", AverageRating: 5, AppCount: 1},
			{CategoryName: "Tools", AverageRating: 3, AppCount: 2},
		}, ratings)
	})

	t.Run("should order by last updated with missing dates last", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)
		older := datatypes.Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
		newer := datatypes.Date(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
		_, err := appRepository.CreateBatch(ctx, nil, []models.App{
			{AppID: "a", AppName: "a"},
			{AppID: "b", AppName: "b", LastUpdated: &older},
			{AppID: "c", AppName: "c", LastUpdated: &newer},
		}, true)
		require.NoError(t, err)

		paged, err := appRepository.ListPaged(ctx, shared.AppFilter{}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, utils.Map(paged.Data, func(a models.App) string { return a.AppID }))
	})

	t.Run("should replace categories and keep apps when the developer is deleted", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)
		developer := models.Developer{DeveloperName: "Example Inc."}
		require.NoError(t, developerRepository.Create(ctx, nil, &developer))

		categories, err := categoryRepository.EnsureByNames(ctx, nil, []string{"Tools", "Games"})
		require.NoError(t, err)

		app := models.App{AppID: "com.example.app", AppName: "App", DeveloperID: &developer.DeveloperID}
		require.NoError(t, appRepository.Create(ctx, nil, &app))
		require.NoError(t, appRepository.ReplaceCategories(ctx, nil, app.AppID, []int64{categories[0].CategoryID, categories[1].CategoryID}))
		require.NoError(t, appRepository.ReplaceCategories(ctx, nil, app.AppID, []int64{categories[1].CategoryID}))

		read, err := appRepository.ReadWithRelations(ctx, nil, app.AppID)
		require.NoError(t, err)
		assert.Equal(t, []string{categories[1].CategoryName}, read.CategoryNames())
		assert.Equal(t, "Example Inc.", read.Developer.DeveloperName)

		require.NoError(t, developerRepository.Delete(ctx, nil, developer.DeveloperID))
		read, err = appRepository.ReadWithRelations(ctx, nil, app.AppID)
		require.NoError(t, err)
		assert.Nil(t, read.DeveloperID)

		require.NoError(t, appRepository.Delete(ctx, nil, app.AppID))
		_, err = appRepository.Read(ctx, app.AppID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, appRepository.Delete(ctx, nil, app.AppID), gorm.ErrRecordNotFound)
	})

	t.Run("should not duplicate developers or categories", func(t *testing.T) {
		integrationtestutil.TruncateAll(t, db)
		for range 2 {
			developers, err := developerRepository.EnsureByNames(ctx, nil, []models.Developer{
				{DeveloperName: "A"}, {DeveloperName: "B"}, {DeveloperName: "A"},
			})
			require.NoError(t, err)
			assert.Len(t, developers, 2)

			categories, err := categoryRepository.EnsureByNames(ctx, nil, []string{"Tools", "Tools"})
			require.NoError(t, err)
			assert.Len(t, categories, 1)
		}

		all, err := developerRepository.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		found, err := categoryRepository.SearchByName(ctx, "too")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}
