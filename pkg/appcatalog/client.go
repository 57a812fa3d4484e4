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

package appcatalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/shopspring/decimal"
)

const DefaultTimeout = 15 * time.Second

// Client talks to the app catalog REST API
type Client struct {
	http *HTTPClient
}

func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient, err := NewHTTPClient(apiURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: httpClient}, nil
}

// AppQuery holds the list filters. Zero values are not sent.
type AppQuery struct {
	Category      string
	CategoryID    int64
	MinRating     *float64
	MaxPrice      *decimal.Decimal
	ContentRating string
	Search        string
	Page          int
	PageSize      int
}

func (q AppQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.CategoryID > 0 {
		v.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.MinRating != nil {
		v.Set("min_rating", strconv.FormatFloat(*q.MinRating, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", q.MaxPrice.String())
	}
	if q.ContentRating != "" {
		v.Set("content_rating", q.ContentRating)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func (c *Client) ListApps(ctx context.Context, query AppQuery) (dtos.AppListResponse, error) {
	var res dtos.AppListResponse
	err := c.do(ctx, http.MethodGet, "/apps/", query.values(), nil, &res)
	return res, err
}

func (c *Client) GetApp(ctx context.Context, appID string) (dtos.AppDTO, error) {
	var res dtos.AppDTO
	err := c.do(ctx, http.MethodGet, "/apps/"+url.PathEscape(appID)+"/", nil, nil, &res)
	return res, err
}

func (c *Client) CreateApp(ctx context.Context, req dtos.AppCreateRequest) (dtos.AppDTO, error) {
	var res dtos.AppDTO
	err := c.do(ctx, http.MethodPost, "/apps/", nil, req, &res)
	return res, err
}

func (c *Client) UpdateApp(ctx context.Context, appID string, req dtos.AppUpdateRequest) (dtos.AppDTO, error) {
	var res dtos.AppDTO
	err := c.do(ctx, http.MethodPut, "/apps/"+url.PathEscape(appID)+"/", nil, req, &res)
	return res, err
}

func (c *Client) DeleteApp(ctx context.Context, appID string) error {
	return c.do(ctx, http.MethodDelete, "/apps/"+url.PathEscape(appID)+"/", nil, nil, nil)
}

func (c *Client) RatingsByCategory(ctx context.Context) ([]dtos.CategoryRatingDTO, error) {
	var res []dtos.CategoryRatingDTO
	err := c.do(ctx, http.MethodGet, "/apps/ratings/", nil, nil, &res)
	return res, err
}

func (c *Client) SearchCategories(ctx context.Context, name string) ([]dtos.CategoryDTO, error) {
	var res dtos.CategoryListResponse
	err := c.do(ctx, http.MethodGet, "/categories/", url.Values{"name": {name}}, nil, &res)
	return res.Categories, err
}

func (c *Client) ListDevelopers(ctx context.Context, search string, page, pageSize int) (shared.Paged[dtos.DeveloperDTO], error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	var res shared.Paged[dtos.DeveloperDTO]
	err := c.do(ctx, http.MethodGet, "/developers/", query, nil, &res)
	return res, err
}

func (c *Client) GetDeveloper(ctx context.Context, id int64) (dtos.DeveloperDTO, error) {
	var res dtos.DeveloperDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/developers/%d/", id), nil, nil, &res)
	return res, err
}
