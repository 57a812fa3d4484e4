// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dashboard

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/middlewares"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/transformer"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// pageData is passed to every template. Page holds the page specific values.
type pageData struct {
	Title string
	Tab   string
	Error string
	Flash string
	Page  any
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type listPage struct {
	Filter         listFilter
	Apps           []dtos.AppDTO
	Total          int64
	TotalPages     int
	Links          []pageLink
	Categories     []dtos.CategoryDTO
	ContentRatings []string
}

type chartsPage struct {
	FrameURL string
	ListURL  string
	Filter   listFilter
}

type formPage struct {
	Form           appForm
	ContentRatings []string
}

type Dashboard struct {
	client APIClient
}

func New(client APIClient) *Dashboard {
	return &Dashboard{client: client}
}

// errorMessage turns an api error into the text of the error banner
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	slog.Warn("api call failed", "err", err)
	return err.Error()
}

// render always answers 200. Failures are shown in the error banner of the page.
func (d *Dashboard) render(ctx echo.Context, page string, data pageData) error {
	return ctx.Render(http.StatusOK, page, data)
}

func (d *Dashboard) List(ctx echo.Context) error {
	filter := parseListFilter(ctx.QueryParams())
	data := pageData{Title: "Apps", Tab: "list"}
	page := listPage{Filter: filter, ContentRatings: contentRatings}

	query, err := filter.Query()
	if err != nil {
		data.Error = err.Error()
		data.Page = page
		return d.render(ctx, "list", data)
	}

	g, gctx := errgroup.WithContext(ctx.Request().Context())
	var res dtos.AppListResponse
	g.Go(func() error {
		var err error
		res, err = d.client.ListApps(gctx, query)
		return err
	})
	if filter.CategoryQuery != "" {
		g.Go(func() error {
			var err error
			page.Categories, err = d.client.SearchCategories(gctx, filter.CategoryQuery)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		data.Error = errorMessage(err)
		data.Page = page
		return d.render(ctx, "list", data)
	}

	page.Apps = res.Apps
	page.Total = res.Total
	page.TotalPages = appcatalog.TotalPages(res.Total, filter.PageSize)
	for _, n := range appcatalog.PageWindow(filter.Page, res.Total, filter.PageSize) {
		page.Links = append(page.Links, pageLink{
			Number:  n,
			URL:     "/apps/?" + filter.values(n).Encode(),
			Current: n == filter.Page,
		})
	}
	data.Page = page
	return d.render(ctx, "list", data)
}

func (d *Dashboard) Charts(ctx echo.Context) error {
	filter := parseListFilter(ctx.QueryParams())
	return d.render(ctx, "charts", pageData{
		Title: "Charts",
		Tab:   "charts",
		Page: chartsPage{
			FrameURL: "/charts/frame/?" + filter.values(filter.Page).Encode(),
			ListURL:  "/apps/?" + filter.values(filter.Page).Encode(),
			Filter:   filter,
		},
	})
}

// ChartsFrame renders the echarts page for the apps of the current list page
func (d *Dashboard) ChartsFrame(ctx echo.Context) error {
	filter := parseListFilter(ctx.QueryParams())
	query, err := filter.Query()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	res, err := d.client.ListApps(ctx.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, errorMessage(err)).WithInternal(err)
	}

	var buf bytes.Buffer
	if err := RenderCharts(&buf, res.Apps); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not render charts").WithInternal(err)
	}
	return ctx.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (d *Dashboard) AddForm(ctx echo.Context) error {
	return d.render(ctx, "add", pageData{Title: "Add app", Tab: "add", Page: formPage{Form: appForm{Currency: "USD"}, ContentRatings: contentRatings}})
}

func (d *Dashboard) Add(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse form").WithInternal(err)
	}
	form := parseAppForm(values)
	data := pageData{Title: "Add app", Tab: "add", Page: formPage{Form: form, ContentRatings: contentRatings}}

	req, err := form.CreateRequest()
	if err != nil {
		data.Error = err.Error()
		return d.render(ctx, "add", data)
	}
	app, err := d.client.CreateApp(ctx.Request().Context(), req)
	if err != nil {
		data.Error = errorMessage(err)
		return d.render(ctx, "add", data)
	}

	data.Flash = fmt.Sprintf("created %s (%s)", app.AppName, app.AppID)
	data.Page = formPage{Form: appForm{Currency: "USD"}, ContentRatings: contentRatings}
	return d.render(ctx, "add", data)
}

func (d *Dashboard) EditForm(ctx echo.Context) error {
	data := pageData{Title: "Edit app", Tab: "edit"}
	appID := strings.TrimSpace(ctx.QueryParam("app_id"))
	if appID == "" {
		data.Page = formPage{ContentRatings: contentRatings}
		return d.render(ctx, "edit", data)
	}

	app, err := d.client.GetApp(ctx.Request().Context(), appID)
	if err != nil {
		data.Error = errorMessage(err)
		data.Page = formPage{Form: appForm{AppID: appID}, ContentRatings: contentRatings}
		return d.render(ctx, "edit", data)
	}
	data.Page = formPage{Form: appFormFromDTO(app), ContentRatings: contentRatings}
	return d.render(ctx, "edit", data)
}

// Edit overlays the form onto the current record, so fields the form does not show keep their values
func (d *Dashboard) Edit(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse form").WithInternal(err)
	}
	form := parseAppForm(values)
	data := pageData{Title: "Edit app", Tab: "edit", Page: formPage{Form: form, ContentRatings: contentRatings}}
	if form.AppID == "" {
		data.Error = "app id is required"
		return d.render(ctx, "edit", data)
	}

	current, err := d.client.GetApp(ctx.Request().Context(), form.AppID)
	if err != nil {
		data.Error = errorMessage(err)
		return d.render(ctx, "edit", data)
	}
	req := transformer.AppDTOToUpdateRequest(current)
	if err := form.apply(&req); err != nil {
		data.Error = err.Error()
		return d.render(ctx, "edit", data)
	}

	app, err := d.client.UpdateApp(ctx.Request().Context(), form.AppID, req)
	if err != nil {
		data.Error = errorMessage(err)
		return d.render(ctx, "edit", data)
	}
	data.Flash = fmt.Sprintf("updated %s", app.AppID)
	data.Page = formPage{Form: appFormFromDTO(app), ContentRatings: contentRatings}
	return d.render(ctx, "edit", data)
}

func (d *Dashboard) DeleteForm(ctx echo.Context) error {
	return d.render(ctx, "delete", pageData{Title: "Delete app", Tab: "delete", Page: strings.TrimSpace(ctx.QueryParam("app_id"))})
}

func (d *Dashboard) Delete(ctx echo.Context) error {
	appID := strings.TrimSpace(ctx.FormValue("app_id"))
	data := pageData{Title: "Delete app", Tab: "delete", Page: appID}
	if appID == "" {
		data.Error = "app id is required"
		return d.render(ctx, "delete", data)
	}
	if err := d.client.DeleteApp(ctx.Request().Context(), appID); err != nil {
		data.Error = errorMessage(err)
		return d.render(ctx, "delete", data)
	}
	data.Flash = fmt.Sprintf("deleted %s", appID)
	data.Page = ""
	return d.render(ctx, "delete", data)
}

// NewServer builds the dashboard server with the same middleware stack as the api
func NewServer(client APIClient) (*echo.Echo, error) {
	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e := middlewares.Server()
	e.Renderer = renderer
	RegisterRoutes(e, New(client))
	return e, nil
}

func RegisterRoutes(e *echo.Echo, d *Dashboard) {
	e.GET("/", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusFound, "/apps/")
	})
	e.GET("/health/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/apps/", d.List)
	e.GET("/charts/", d.Charts)
	e.GET("/charts/frame/", d.ChartsFrame)
	e.GET("/add/", d.AddForm)
	e.POST("/add/", d.Add)
	e.GET("/edit/", d.EditForm)
	e.POST("/edit/", d.Edit)
	e.GET("/delete/", d.DeleteForm)
	e.POST("/delete/", d.Delete)
}
