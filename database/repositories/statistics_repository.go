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
	"gorm.io/gorm"
)

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

// AverageRatingByCategory groups all apps by their categories. An app with several categories
// counts towards each of them.
func (r *statisticsRepository) AverageRatingByCategory(ctx context.Context) ([]models.CategoryRating, error) {
	var result []models.CategoryRating
	err := r.db.WithContext(ctx).Raw(`SELECT c.category_name AS category_name,
		COALESCE(AVG(a.rating), 0) AS average_rating,
		COUNT(a.app_id) AS app_count
	FROM categories c
	JOIN app_categories ac ON ac.category_id = c.category_id
	JOIN apps a ON a.app_id = ac.app_id
	GROUP BY c.category_name
	ORDER BY c.category_name`).Scan(&result).Error
	if result == nil {
		result = []models.CategoryRating{}
	}
	return result, err
}
