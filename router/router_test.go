package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/appcatalog/controllers"
	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/middlewares"
	"github.com/l3montree-dev/appcatalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	apps       *mocks.AppService
	developers *mocks.DeveloperService
	categories *mocks.CategoryService
	statistics *mocks.StatisticsService
}

func newTestServer(t *testing.T) (http.Handler, testServices) {
	s := testServices{
		apps:       mocks.NewAppService(t),
		developers: mocks.NewDeveloperService(t),
		categories: mocks.NewCategoryService(t),
		statistics: mocks.NewStatisticsService(t),
	}

	e := middlewares.Server()
	apiRouter := NewAPIRouter(e, nil, nil)
	NewAppRouter(apiRouter, controllers.NewAppController(s.apps), controllers.NewStatisticsController(s.statistics))
	NewDeveloperRouter(apiRouter, controllers.NewDeveloperController(s.developers))
	NewCategoryRouter(apiRouter, controllers.NewCategoryController(s.categories))
	return e, s
}

func TestAppRoutes(t *testing.T) {
	t.Run("should route the ratings aggregate before the app id parameter", func(t *testing.T) {
		e, s := newTestServer(t)
		s.statistics.On("RatingsByCategory", mock.Anything).Return([]models.CategoryRating{
			{CategoryName: "Tools", AverageRating: 4.25, AppCount: 2},
		}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apps/ratings/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var ratings []dtos.CategoryRatingDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ratings))
		require.Len(t, ratings, 1)
		assert.Equal(t, "Tools", ratings[0].Category)
	})

	t.Run("should accept paths without a trailing slash", func(t *testing.T) {
		e, s := newTestServer(t)
		s.apps.On("Read", mock.Anything, "com.example.notes").Return(models.App{AppID: "com.example.notes", AppName: "Notes"}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apps/com.example.notes", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"app_id":"com.example.notes"`)
	})

	t.Run("should answer a missing app with a json message and 404", func(t *testing.T) {
		e, s := newTestServer(t)
		s.apps.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/apps/missing/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"app not found"}`, rec.Body.String())
	})

	t.Run("should reject an invalid developer id", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/developers/abc/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should search categories by name", func(t *testing.T) {
		e, s := newTestServer(t)
		s.categories.On("Search", mock.Anything, "game").Return([]models.Category{{CategoryID: 1, CategoryName: "Games"}}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories?name=game", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Games"`)
	})
}

func TestOperationalRoutes(t *testing.T) {
	t.Run("should expose prometheus metrics", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
