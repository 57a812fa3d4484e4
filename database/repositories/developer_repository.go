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

type developerRepository struct {
	db *gorm.DB
	*GormRepository[int64, models.Developer]
}

func NewDeveloperRepository(db *gorm.DB) *developerRepository {
	return &developerRepository{
		db:             db,
		GormRepository: newGormRepository[int64, models.Developer](db, "developer_id"),
	}
}

func (r *developerRepository) ListPaged(ctx context.Context, search string, pageInfo shared.PageInfo) (shared.Paged[models.Developer], error) {
	q := r.db.WithContext(ctx).Model(&models.Developer{})
	if search != "" {
		q = q.Where("developer_name ILIKE ?", "%"+search+"%")
	}
	q = q.Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Developer]{}, err
	}

	developers := []models.Developer{}
	if err := pageInfo.ApplyOnDB(q.Order("developer_name")).Find(&developers).Error; err != nil {
		return shared.Paged[models.Developer]{}, err
	}
	return shared.NewPaged(pageInfo, count, developers), nil
}

func (r *developerRepository) EnsureByNames(ctx context.Context, tx *gorm.DB, developers []models.Developer) ([]models.Developer, error) {
	developers = utils.UniqBy(developers, func(d models.Developer) string { return d.DeveloperName })
	if len(developers) == 0 {
		return []models.Developer{}, nil
	}

	db := r.GetDB(ctx, tx)
	for _, chunk := range utils.Chunk(developers, 5000) {
		// the returned primary keys are not reliable with DO NOTHING, the rows are selected afterwards
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "developer_name"}},
			DoNothing: true,
		}).Create(&chunk).Error; err != nil {
			return nil, err
		}
	}

	names := utils.Map(developers, func(d models.Developer) string { return d.DeveloperName })
	result := make([]models.Developer, 0, len(names))
	for _, chunk := range utils.Chunk(names, 5000) {
		var found []models.Developer
		if err := db.Where("developer_name IN ?", chunk).Find(&found).Error; err != nil {
			return nil, err
		}
		result = append(result, found...)
	}
	return result, nil
}
