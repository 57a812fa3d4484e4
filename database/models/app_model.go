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

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type App struct {
	AppID   string `json:"appId" gorm:"primaryKey;type:text;not null"`
	AppName string `json:"appName" gorm:"type:text;not null"`

	Rating      float64 `json:"rating"`
	RatingCount int64   `json:"ratingCount"`
	Installs    int64   `json:"installs"`
	MinInstalls int64   `json:"minInstalls"`
	MaxInstalls int64   `json:"maxInstalls"`

	Price    decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null;default:0"`
	Currency string          `json:"currency" gorm:"type:text"`

	Size          string `json:"size" gorm:"type:text"`
	MinAndroid    string `json:"minAndroid" gorm:"type:text"`
	ContentRating string `json:"contentRating" gorm:"type:text"`
	PrivacyPolicy string `json:"privacyPolicy" gorm:"type:text"`

	Released    *datatypes.Date `json:"released" gorm:"type:date"`
	LastUpdated *datatypes.Date `json:"lastUpdated" gorm:"type:date"`
	ScrapedTime *time.Time      `json:"scrapedTime"`

	Free           bool `json:"free"`
	AdSupported    bool `json:"adSupported"`
	InAppPurchases bool `json:"inAppPurchases"`
	EditorsChoice  bool `json:"editorsChoice"`

	DeveloperID *int64     `json:"developerId"`
	Developer   *Developer `json:"developer,omitempty" gorm:"foreignKey:DeveloperID;references:DeveloperID;constraint:OnDelete:SET NULL"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:app_categories;foreignKey:AppID;joinForeignKey:AppID;references:CategoryID;joinReferences:CategoryID"`
}

func (App) TableName() string {
	return "apps"
}

func (a App) CategoryNames() []string {
	names := make([]string, 0, len(a.Categories))
	for _, c := range a.Categories {
		names = append(names, c.CategoryName)
	}
	return names
}

// AppCategory is the join row between apps and categories.
type AppCategory struct {
	AppID      string `json:"appId" gorm:"primaryKey;type:text"`
	CategoryID int64  `json:"categoryId" gorm:"primaryKey"`
}

func (AppCategory) TableName() string {
	return "app_categories"
}
