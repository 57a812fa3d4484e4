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
	"github.com/l3montree-dev/appcatalog/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	db *gorm.DB
	*GormRepository[int64, models.Category]
}

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{
		db:             db,
		GormRepository: newGormRepository[int64, models.Category](db, "category_id"),
	}
}

// SearchByName does a case insensitive substring search. An empty name returns all categories.
func (r *categoryRepository) SearchByName(ctx context.Context, name string) ([]models.Category, error) {
	categories := []models.Category{}
	q := r.db.WithContext(ctx).Order("category_name")
	if name != "" {
		q = q.Where("category_name ILIKE ?", "%"+name+"%")
	}
	err := q.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) EnsureByNames(ctx context.Context, tx *gorm.DB, names []string) ([]models.Category, error) {
	names = utils.UniqBy(names, func(s string) string { return s })
	if len(names) == 0 {
		return []models.Category{}, nil
	}

	db := r.GetDB(ctx, tx)
	categories := utils.Map(names, func(name string) models.Category {
		return models.Category{CategoryName: name}
	})
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_name"}},
		DoNothing: true,
	}).CreateInBatches(&categories, 1000).Error; err != nil {
		return nil, err
	}

	result := []models.Category{}
	err := db.Where("category_name IN ?", names).Order("category_name").Find(&result).Error
	return result, err
}
