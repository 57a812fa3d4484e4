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

package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of released and last_updated
const DateLayout = "2006-01-02"

type AppDTO struct {
	AppID       string  `json:"app_id" yaml:"app_id"`
	AppName     string  `json:"app_name" yaml:"app_name"`
	Rating      float64 `json:"rating" yaml:"rating"`
	RatingCount int64   `json:"rating_count" yaml:"rating_count"`
	Installs    int64   `json:"installs" yaml:"installs"`
	MinInstalls int64   `json:"min_installs" yaml:"min_installs"`
	MaxInstalls int64   `json:"max_installs" yaml:"max_installs"`

	Free     bool            `json:"free" yaml:"free"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Currency string          `json:"currency" yaml:"currency"`

	Size          string `json:"size" yaml:"size"`
	MinAndroid    string `json:"min_android" yaml:"min_android"`
	ContentRating string `json:"content_rating" yaml:"content_rating"`
	PrivacyPolicy string `json:"privacy_policy" yaml:"privacy_policy"`

	Released    *string    `json:"released" yaml:"released"`
	LastUpdated *string    `json:"last_updated" yaml:"last_updated"`
	ScrapedTime *time.Time `json:"scraped_time" yaml:"scraped_time"`

	AdSupported    bool `json:"ad_supported" yaml:"ad_supported"`
	InAppPurchases bool `json:"in_app_purchases" yaml:"in_app_purchases"`
	EditorsChoice  bool `json:"editors_choice" yaml:"editors_choice"`

	DeveloperID   *int64  `json:"developer_id" yaml:"developer_id"`
	DeveloperName *string `json:"developer_name" yaml:"developer_name"`

	Categories []string `json:"categories" yaml:"categories"`
}

type AppListResponse struct {
	Total    int64    `json:"total" yaml:"total"`
	Page     int      `json:"page" yaml:"page"`
	PageSize int      `json:"page_size" yaml:"page_size"`
	Apps     []AppDTO `json:"apps" yaml:"apps"`
}

// AppUpdateRequest replaces every mutable field of an app
type AppUpdateRequest struct {
	AppName     string  `json:"app_name" yaml:"app_name" validate:"notblank,max=255"`
	Rating      float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	RatingCount int64   `json:"rating_count" yaml:"rating_count" validate:"gte=0"`
	Installs    int64   `json:"installs" yaml:"installs" validate:"gte=0"`
	MinInstalls int64   `json:"min_installs" yaml:"min_installs" validate:"gte=0"`
	MaxInstalls int64   `json:"max_installs" yaml:"max_installs" validate:"gte=0"`

	Free     bool            `json:"free" yaml:"free"`
	Price    decimal.Decimal `json:"price" yaml:"price" validate:"price"`
	Currency string          `json:"currency" yaml:"currency" validate:"max=10"`

	Size          string `json:"size" yaml:"size" validate:"max=50"`
	MinAndroid    string `json:"min_android" yaml:"min_android" validate:"max=50"`
	ContentRating string `json:"content_rating" yaml:"content_rating" validate:"max=50"`
	PrivacyPolicy string `json:"privacy_policy" yaml:"privacy_policy" validate:"max=500"`

	Released    *string    `json:"released" yaml:"released" validate:"omitempty,datetime=2006-01-02"`
	LastUpdated *string    `json:"last_updated" yaml:"last_updated" validate:"omitempty,datetime=2006-01-02"`
	ScrapedTime *time.Time `json:"scraped_time" yaml:"scraped_time"`

	AdSupported    bool `json:"ad_supported" yaml:"ad_supported"`
	InAppPurchases bool `json:"in_app_purchases" yaml:"in_app_purchases"`
	EditorsChoice  bool `json:"editors_choice" yaml:"editors_choice"`

	DeveloperID *int64 `json:"developer_id" yaml:"developer_id" validate:"omitempty,gt=0"`

	Categories []string `json:"categories" yaml:"categories" validate:"dive,notblank,max=100"`
}

type AppCreateRequest struct {
	AppID string `json:"app_id" yaml:"app_id" validate:"notblank,max=255"`
	AppUpdateRequest
}
