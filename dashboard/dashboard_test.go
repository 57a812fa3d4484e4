package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/l3montree-dev/appcatalog/dashboard"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/mocks"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) (http.Handler, *mocks.APIClient) {
	client := mocks.NewAPIClient(t)
	e, err := dashboard.NewServer(client)
	require.NoError(t, err)
	return e, client
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexRedirectsToList(t *testing.T) {
	h, _ := newTestDashboard(t)
	rec := get(h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/apps/", rec.Header().Get("Location"))
}

func TestListTab(t *testing.T) {
	t.Run("should render the page with a pagination window", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("ListApps", mock.Anything, appcatalog.AppQuery{ContentRating: "Teen", Page: 5, PageSize: 10}).Return(dtos.AppListResponse{
			Total:    200,
			Page:     5,
			PageSize: 10,
			Apps: []dtos.AppDTO{
				{AppID: "com.example.notes", AppName: "Notes", Rating: 4.5, Price: decimal.Zero, DeveloperName: utils.Ptr("Example Inc")},
			},
		}, nil)

		rec := get(h, "/apps/?content_rating=Teen&page=5")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Notes")
		assert.Contains(t, body, "Example Inc")
		assert.Contains(t, body, "200 apps")
		assert.Contains(t, body, "Page 5 of 20")
		assert.Contains(t, body, ">20</a>")
		assert.NotContains(t, body, ">9</a>")
	})

	t.Run("should offer the matching categories", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("ListApps", mock.Anything, appcatalog.AppQuery{CategoryID: 4, Page: 1, PageSize: 10}).Return(dtos.AppListResponse{Page: 1, PageSize: 10}, nil)
		client.On("SearchCategories", mock.Anything, "gam").Return([]dtos.CategoryDTO{
			{CategoryID: 4, CategoryName: "Games"},
			{CategoryID: 9, CategoryName: "Game Tools"},
		}, nil)

		rec := get(h, "/apps/?category_query=gam&category_id=4")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<option value="4" selected>Games</option>`)
		assert.Contains(t, body, "No apps match the filter")
	})

	t.Run("should show api errors in the banner", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("ListApps", mock.Anything, mock.Anything).Return(dtos.AppListResponse{}, &appcatalog.APIError{StatusCode: http.StatusBadRequest, Message: "page_size must be between 1 and 100"})

		rec := get(h, "/apps/")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="error"`)
		assert.Contains(t, rec.Body.String(), "page_size must be between 1 and 100")
	})

	t.Run("should not call the api for a malformed filter", func(t *testing.T) {
		h, _ := newTestDashboard(t)

		rec := get(h, "/apps/?min_rating=high")

		assert.Contains(t, rec.Body.String(), "minimum rating must be a number")
	})
}

func TestChartsTab(t *testing.T) {
	t.Run("should embed the chart frame with the current filter", func(t *testing.T) {
		h, _ := newTestDashboard(t)

		rec := get(h, "/charts/?page=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/charts/frame/?page=2")
	})

	t.Run("should render the charts of the current page", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("ListApps", mock.Anything, appcatalog.AppQuery{Page: 2, PageSize: 10}).Return(dtos.AppListResponse{
			Apps: []dtos.AppDTO{{AppID: "a", Rating: 3, Categories: []string{"Tools"}}},
		}, nil)

		rec := get(h, "/charts/frame/?page=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Rating distribution")
	})

	t.Run("should fail the frame when the api is down", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("ListApps", mock.Anything, mock.Anything).Return(dtos.AppListResponse{}, errors.New("connection refused"))

		rec := get(h, "/charts/frame/")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestAddTab(t *testing.T) {
	t.Run("should create the app", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("CreateApp", mock.Anything, mock.MatchedBy(func(req dtos.AppCreateRequest) bool {
			return req.AppID == "com.example.notes" && req.AppName == "Notes" &&
				req.Price.Equal(decimal.RequireFromString("0.99")) &&
				len(req.Categories) == 2 && req.Categories[1] == "Productivity"
		})).Return(dtos.AppDTO{AppID: "com.example.notes", AppName: "Notes"}, nil)

		rec := post(h, "/add/", url.Values{
			"app_id":     {"com.example.notes"},
			"app_name":   {"Notes"},
			"price":      {"0.99"},
			"categories": {"Tools, Productivity"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "created Notes (com.example.notes)")
	})

	t.Run("should keep the input on conflict", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("CreateApp", mock.Anything, mock.Anything).Return(dtos.AppDTO{}, &appcatalog.APIError{StatusCode: http.StatusConflict, Message: "app already exists"})

		rec := post(h, "/add/", url.Values{"app_id": {"com.example.notes"}, "app_name": {"Notes"}})

		body := rec.Body.String()
		assert.Contains(t, body, "app already exists")
		assert.Contains(t, body, `value="com.example.notes"`)
	})

	t.Run("should validate numbers before calling the api", func(t *testing.T) {
		h, _ := newTestDashboard(t)

		rec := post(h, "/add/", url.Values{"app_id": {"x"}, "app_name": {"X"}, "installs": {"many"}})

		assert.Contains(t, rec.Body.String(), "installs must be a whole number")
	})
}

func TestEditTab(t *testing.T) {
	current := dtos.AppDTO{
		AppID:      "com.example.notes",
		AppName:    "Notes",
		Rating:     4,
		Size:       "12M",
		MinAndroid: "8.0 and up",
		Price:      decimal.Zero,
		Categories: []string{"Tools"},
	}

	t.Run("should prefill the form", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("GetApp", mock.Anything, "com.example.notes").Return(current, nil)

		rec := get(h, "/edit/?app_id=com.example.notes")

		assert.Contains(t, rec.Body.String(), `value="Notes"`)
	})

	t.Run("should keep the fields the form does not show", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("GetApp", mock.Anything, "com.example.notes").Return(current, nil)
		client.On("UpdateApp", mock.Anything, "com.example.notes", mock.MatchedBy(func(req dtos.AppUpdateRequest) bool {
			return req.AppName == "Notes Pro" && req.Size == "12M" && req.MinAndroid == "8.0 and up" && req.Rating == 4.5
		})).Return(dtos.AppDTO{AppID: "com.example.notes", AppName: "Notes Pro"}, nil)

		rec := post(h, "/edit/", url.Values{
			"app_id":     {"com.example.notes"},
			"app_name":   {"Notes Pro"},
			"rating":     {"4.5"},
			"categories": {"Tools"},
		})

		assert.Contains(t, rec.Body.String(), "updated com.example.notes")
	})

	t.Run("should report a missing app", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("GetApp", mock.Anything, "missing").Return(dtos.AppDTO{}, &appcatalog.APIError{StatusCode: http.StatusNotFound, Message: "app not found"})

		rec := post(h, "/edit/", url.Values{"app_id": {"missing"}, "app_name": {"X"}})

		assert.Contains(t, rec.Body.String(), "app not found")
	})
}

func TestDeleteTab(t *testing.T) {
	t.Run("should delete the app", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("DeleteApp", mock.Anything, "com.example.notes").Return(nil)

		rec := post(h, "/delete/", url.Values{"app_id": {"com.example.notes"}})

		assert.Contains(t, rec.Body.String(), "deleted com.example.notes")
	})

	t.Run("should require an app id", func(t *testing.T) {
		h, _ := newTestDashboard(t)

		rec := post(h, "/delete/", url.Values{})

		assert.Contains(t, rec.Body.String(), "app id is required")
	})

	t.Run("should pass the request context to the api", func(t *testing.T) {
		h, client := newTestDashboard(t)
		client.On("DeleteApp", mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil }), "x").Return(&appcatalog.APIError{StatusCode: http.StatusNotFound, Message: "app not found"})

		rec := post(h, "/delete/", url.Values{"app_id": {"x"}})

		assert.Contains(t, rec.Body.String(), "app not found")
	})
}
