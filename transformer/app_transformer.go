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

package transformer

import (
	"fmt"
	"strings"
	"time"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"gorm.io/datatypes"
)

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	return utils.Ptr(time.Time(*d).Format(dtos.DateLayout))
}

func parseDate(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dtos.DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	d := datatypes.Date(t)
	return &d, nil
}

func AppModelToDTO(app models.App) dtos.AppDTO {
	var developerName *string
	if app.Developer != nil {
		developerName = utils.Ptr(app.Developer.DeveloperName)
	}

	return dtos.AppDTO{
		AppID:          app.AppID,
		AppName:        app.AppName,
		Rating:         app.Rating,
		RatingCount:    app.RatingCount,
		Installs:       app.Installs,
		MinInstalls:    app.MinInstalls,
		MaxInstalls:    app.MaxInstalls,
		Free:           app.Free,
		Price:          app.Price,
		Currency:       app.Currency,
		Size:           app.Size,
		MinAndroid:     app.MinAndroid,
		ContentRating:  app.ContentRating,
		PrivacyPolicy:  app.PrivacyPolicy,
		Released:       formatDate(app.Released),
		LastUpdated:    formatDate(app.LastUpdated),
		ScrapedTime:    app.ScrapedTime,
		AdSupported:    app.AdSupported,
		InAppPurchases: app.InAppPurchases,
		EditorsChoice:  app.EditorsChoice,
		DeveloperID:    app.DeveloperID,
		DeveloperName:  developerName,
		Categories:     app.CategoryNames(),
	}
}

func AppModelsToListResponse(paged shared.Paged[models.App]) dtos.AppListResponse {
	return dtos.AppListResponse{
		Total:    paged.Total,
		Page:     paged.Page,
		PageSize: paged.PageSize,
		Apps:     utils.Map(paged.Data, AppModelToDTO),
	}
}

// NormalizeCategoryNames trims the names and drops empty and repeated ones.
func NormalizeCategoryNames(names []string) []string {
	trimmed := utils.Map(names, strings.TrimSpace)
	trimmed = utils.Filter(trimmed, func(s string) bool { return s != "" })
	return utils.UniqBy(trimmed, func(s string) string { return s })
}

// AppUpdateRequestToModel builds the app with all mutable fields taken from the request.
// The returned category names are normalized.
func AppUpdateRequestToModel(appID string, req dtos.AppUpdateRequest) (models.App, []string, error) {
	released, err := parseDate(req.Released)
	if err != nil {
		return models.App{}, nil, err
	}
	lastUpdated, err := parseDate(req.LastUpdated)
	if err != nil {
		return models.App{}, nil, err
	}

	app := models.App{
		AppID:          appID,
		AppName:        strings.TrimSpace(req.AppName),
		Rating:         req.Rating,
		RatingCount:    req.RatingCount,
		Installs:       req.Installs,
		MinInstalls:    req.MinInstalls,
		MaxInstalls:    req.MaxInstalls,
		Free:           req.Free,
		Price:          req.Price,
		Currency:       req.Currency,
		Size:           req.Size,
		MinAndroid:     req.MinAndroid,
		ContentRating:  req.ContentRating,
		PrivacyPolicy:  req.PrivacyPolicy,
		Released:       released,
		LastUpdated:    lastUpdated,
		ScrapedTime:    req.ScrapedTime,
		AdSupported:    req.AdSupported,
		InAppPurchases: req.InAppPurchases,
		EditorsChoice:  req.EditorsChoice,
		DeveloperID:    req.DeveloperID,
	}
	return app, NormalizeCategoryNames(req.Categories), nil
}

func AppCreateRequestToModel(req dtos.AppCreateRequest) (models.App, []string, error) {
	return AppUpdateRequestToModel(strings.TrimSpace(req.AppID), req.AppUpdateRequest)
}

// AppDTOToUpdateRequest is used by the dashboards to prefill the edit form.
func AppDTOToUpdateRequest(app dtos.AppDTO) dtos.AppUpdateRequest {
	return dtos.AppUpdateRequest{
		AppName:        app.AppName,
		Rating:         app.Rating,
		RatingCount:    app.RatingCount,
		Installs:       app.Installs,
		MinInstalls:    app.MinInstalls,
		MaxInstalls:    app.MaxInstalls,
		Free:           app.Free,
		Price:          app.Price,
		Currency:       app.Currency,
		Size:           app.Size,
		MinAndroid:     app.MinAndroid,
		ContentRating:  app.ContentRating,
		PrivacyPolicy:  app.PrivacyPolicy,
		Released:       app.Released,
		LastUpdated:    app.LastUpdated,
		ScrapedTime:    app.ScrapedTime,
		AdSupported:    app.AdSupported,
		InAppPurchases: app.InAppPurchases,
		EditorsChoice:  app.EditorsChoice,
		DeveloperID:    app.DeveloperID,
		Categories:     app.Categories,
	}
}
