package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/mocks"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJSONContext(method, target string, body any) (shared.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
}

func TestAppControllerList(t *testing.T) {
	t.Run("should return the page with the filtered total", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		apps := make([]models.App, 5)
		for i := range apps {
			apps[i] = models.App{AppID: fmt.Sprintf("app-%d", i), Rating: 4.5}
		}
		appService.On("List", mock.Anything, mock.MatchedBy(func(f shared.AppFilter) bool {
			return f.MinRating != nil && *f.MinRating == 4.0
		}), shared.PageInfo{Page: 3, PageSize: 10}).Return(shared.NewPaged(shared.PageInfo{Page: 3, PageSize: 10}, 25, apps), nil)

		ctx, rec := newJSONContext(http.MethodGet, "/apps/?min_rating=4.0&page=3&page_size=10", nil)
		err := NewAppController(appService).List(ctx)
		require.NoError(t, err)

		var resp dtos.AppListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 3, resp.Page)
		assert.Equal(t, 10, resp.PageSize)
		assert.Len(t, resp.Apps, 5)
	})

	t.Run("should reject an invalid page size", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodGet, "/apps/?page_size=1000", nil)
		err := NewAppController(mocks.NewAppService(t)).List(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should reject a malformed rating filter", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodGet, "/apps/?min_rating=high", nil)
		err := NewAppController(mocks.NewAppService(t)).List(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestAppControllerCreate(t *testing.T) {
	validRequest := map[string]any{
		"app_id":     "com.example.app",
		"app_name":   "Example",
		"rating":     4.2,
		"price":      1.99,
		"released":   "2020-02-26",
		"categories": []string{"Tools"},
	}

	t.Run("should create the app", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Create", mock.Anything, mock.MatchedBy(func(a models.App) bool {
			return a.AppID == "com.example.app" && a.Price.Equal(decimal.RequireFromString("1.99"))
		}), []string{"Tools"}).Return(models.App{
			AppID:      "com.example.app",
			AppName:    "Example",
			Rating:     4.2,
			Price:      decimal.RequireFromString("1.99"),
			Categories: []models.Category{{CategoryID: 1, CategoryName: "Tools"}},
		}, nil)

		ctx, rec := newJSONContext(http.MethodPost, "/apps/", validRequest)
		err := NewAppController(appService).Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dtos.AppDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "com.example.app", resp.AppID)
		assert.Equal(t, []string{"Tools"}, resp.Categories)
		assert.Contains(t, rec.Body.String(), `"price":1.99`)
	})

	t.Run("should reject invalid payloads", func(t *testing.T) {
		invalid := []map[string]any{
			{"app_name": "missing id"},
			{"app_id": "a", "app_name": "a", "rating": 7},
			{"app_id": "a", "app_name": "a", "price": -1},
			{"app_id": "a", "app_name": "a", "price": 1.999},
			{"app_id": "a", "app_name": "a", "installs": -5},
			{"app_id": "a", "app_name": "a", "released": "Feb 26, 2020"},
			{"app_id": "a", "app_name": "a", "categories": []string{""}},
			{"app_id": "   ", "app_name": "   "},
			{"app_id": "a", "app_name": " \t "},
			{"app_id": "\n", "app_name": "a"},
			{"app_id": "a", "app_name": "a", "categories": []string{"  "}},
		}
		for _, body := range invalid {
			ctx, _ := newJSONContext(http.MethodPost, "/apps/", body)
			err := NewAppController(mocks.NewAppService(t)).Create(ctx)
			assertHTTPError(t, err, http.StatusBadRequest)
		}
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/apps/", "{not json")
		err := NewAppController(mocks.NewAppService(t)).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should return a conflict for an existing app", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(models.App{}, shared.ErrAppExists)

		ctx, _ := newJSONContext(http.MethodPost, "/apps/", validRequest)
		err := NewAppController(appService).Create(ctx)
		assertHTTPError(t, err, http.StatusConflict)
	})

	t.Run("should return bad request for an unknown developer", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(models.App{}, shared.ErrUnknownDeveloper)

		ctx, _ := newJSONContext(http.MethodPost, "/apps/", validRequest)
		err := NewAppController(appService).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should return bad request when the database rejects the row", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(models.App{}, shared.ErrInvalidApp)

		ctx, _ := newJSONContext(http.MethodPost, "/apps/", validRequest)
		err := NewAppController(appService).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestAppControllerReadUpdateDelete(t *testing.T) {
	t.Run("should return not found for a missing app", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Read", mock.Anything, "missing").Return(models.App{}, gorm.ErrRecordNotFound)

		ctx, _ := newJSONContext(http.MethodGet, "/apps/missing/", nil)
		ctx.SetParamNames("appID")
		ctx.SetParamValues("missing")
		err := NewAppController(appService).Read(ctx)
		assertHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("should update using the app id of the path", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Update", mock.Anything, "com.example.app", mock.MatchedBy(func(a models.App) bool {
			return a.AppID == "com.example.app" && a.AppName == "Renamed"
		}), []string{}).Return(models.App{AppID: "com.example.app", AppName: "Renamed"}, nil)

		ctx, rec := newJSONContext(http.MethodPut, "/apps/com.example.app/", map[string]any{"app_name": "Renamed"})
		ctx.SetParamNames("appID")
		ctx.SetParamValues("com.example.app")
		err := NewAppController(appService).Update(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"app_name":"Renamed"`)
	})

	t.Run("should return not found when deleting a missing app", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

		ctx, _ := newJSONContext(http.MethodDelete, "/apps/missing/", nil)
		ctx.SetParamNames("appID")
		ctx.SetParamValues("missing")
		err := NewAppController(appService).Delete(ctx)
		assertHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("should delete an app", func(t *testing.T) {
		appService := mocks.NewAppService(t)
		appService.On("Delete", mock.Anything, "a").Return(nil)

		ctx, rec := newJSONContext(http.MethodDelete, "/apps/a/", nil)
		ctx.SetParamNames("appID")
		ctx.SetParamValues("a")
		require.NoError(t, NewAppController(appService).Delete(ctx))
		assert.JSONEq(t, `{"message":"app deleted"}`, rec.Body.String())
	})
}
