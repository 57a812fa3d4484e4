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

package shared

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return SanitizeParam(v)
}

type PageInfo struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset(p.Offset()).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

// firstQueryParam returns the first non empty query parameter of the given names.
func firstQueryParam(ctx Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(ctx.QueryParam(name)); v != "" {
			return v
		}
	}
	return ""
}

// GetPageInfo reads page and page_size from the query. size and limit are accepted
// as aliases for page_size. Out of range values are rejected instead of clamped.
func GetPageInfo(ctx Context) (PageInfo, error) {
	pageInfo := PageInfo{Page: 1, PageSize: DefaultPageSize}

	if raw := firstQueryParam(ctx, "page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return pageInfo, fmt.Errorf("page must be a positive integer, got %q", raw)
		}
		pageInfo.Page = page
	}

	if raw := firstQueryParam(ctx, "page_size", "size", "limit"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > MaxPageSize {
			return pageInfo, fmt.Errorf("page_size must be between 1 and %d, got %q", MaxPageSize, raw)
		}
		pageInfo.PageSize = pageSize
	}

	return pageInfo, nil
}

type AppFilter struct {
	Category      string
	CategoryID    *int64
	MinRating     *float64
	MaxPrice      *decimal.Decimal
	ContentRating string
	Search        string
}

func GetAppFilter(ctx Context) (AppFilter, error) {
	filter := AppFilter{
		Category:      firstQueryParam(ctx, "category"),
		ContentRating: firstQueryParam(ctx, "content_rating"),
		Search:        firstQueryParam(ctx, "search"),
	}

	if raw := firstQueryParam(ctx, "category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("category_id must be an integer, got %q", raw)
		}
		filter.CategoryID = &id
	}

	if raw := firstQueryParam(ctx, "min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
			return filter, fmt.Errorf("min_rating must be a number, got %q", raw)
		}
		filter.MinRating = &rating
	}

	if raw := firstQueryParam(ctx, "max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("max_price must be a number, got %q", raw)
		}
		filter.MaxPrice = &price
	}

	return filter, nil
}
