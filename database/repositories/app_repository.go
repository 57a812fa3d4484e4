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

package repositories

import (
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appRepository struct {
	db *gorm.DB
	*GormRepository[string, models.App]
}

func NewAppRepository(db *gorm.DB) *appRepository {
	return &appRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.App](db, "app_id"),
	}
}

func (r *appRepository) ReadWithRelations(ctx context.Context, tx *gorm.DB, appID string) (models.App, error) {
	var app models.App
	err := r.GetDB(ctx, tx).
		Preload("Developer").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.category_name")
		}).
		First(&app, "app_id = ?", appID).Error
	return app, err
}

func applyAppFilter(q *gorm.DB, filter shared.AppFilter) *gorm.DB {
	if filter.Category != "" {
		q = q.Where("apps.app_id IN (?)", q.Session(&gorm.Session{NewDB: true}).
			Table("app_categories").
			Select("app_categories.app_id").
			Joins("JOIN categories ON categories.category_id = app_categories.category_id").
			Where("categories.category_name = ?", filter.Category))
	}
	if filter.CategoryID != nil {
		q = q.Where("apps.app_id IN (?)", q.Session(&gorm.Session{NewDB: true}).
			Table("app_categories").
			Select("app_id").
			Where("category_id = ?", *filter.CategoryID))
	}
	if filter.MinRating != nil {
		q = q.Where("apps.rating >= ?", *filter.MinRating)
	}
	if filter.MaxPrice != nil {
		q = q.Where("apps.price <= ?", *filter.MaxPrice)
	}
	if filter.ContentRating != "" {
		q = q.Where("apps.content_rating = ?", filter.ContentRating)
	}
	if filter.Search != "" {
		q = q.Where("apps.app_name ILIKE ?", "%"+filter.Search+"%")
	}
	return q
}

// ListPaged returns the apps matching the filter, most recently updated first.
// Total is the number of matching apps, not the length of the page.
func (r *appRepository) ListPaged(ctx context.Context, filter shared.AppFilter, pageInfo shared.PageInfo) (shared.Paged[models.App], error) {
	q := applyAppFilter(r.db.WithContext(ctx).Model(&models.App{}), filter).Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.App]{}, err
	}

	apps := []models.App{}
	err := pageInfo.ApplyOnDB(q.
		Preload("Developer").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.category_name")
		}).
		Order("apps.last_updated DESC NULLS LAST").
		Order("apps.app_id ASC")).
		Find(&apps).Error
	if err != nil {
		return shared.Paged[models.App]{}, err
	}

	return shared.NewPaged(pageInfo, count, apps), nil
}

func (r *appRepository) CreateBatch(ctx context.Context, tx *gorm.DB, apps []models.App, skipExisting bool) (int64, error) {
	if len(apps) == 0 {
		return 0, nil
	}
	// associations are written explicitly through LinkCategories
	db := r.GetDB(ctx, tx).Omit(clause.Associations)
	if skipExisting {
		db = db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "app_id"}}, DoNothing: true})
	}
	res := db.Create(&apps)
	return res.RowsAffected, res.Error
}

// ReplaceCategories makes the given categories the complete set of categories of the app.
func (r *appRepository) ReplaceCategories(ctx context.Context, tx *gorm.DB, appID string, categoryIDs []int64) error {
	db := r.GetDB(ctx, tx)
	if err := db.Where("app_id = ?", appID).Delete(&models.AppCategory{}).Error; err != nil {
		return err
	}
	links := utils.Map(categoryIDs, func(id int64) models.AppCategory {
		return models.AppCategory{AppID: appID, CategoryID: id}
	})
	return r.LinkCategories(ctx, db, links)
}

func (r *appRepository) LinkCategories(ctx context.Context, tx *gorm.DB, links []models.AppCategory) error {
	if len(links) == 0 {
		return nil
	}
	links = utils.UniqBy(links, func(l models.AppCategory) models.AppCategory { return l })
	for _, chunk := range utils.Chunk(links, 5000) {
		if err := r.GetDB(ctx, tx).Clauses(clause.OnConflict{DoNothing: true}).Create(&chunk).Error; err != nil {
			return err
		}
	}
	return nil
}
