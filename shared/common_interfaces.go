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
	"context"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/utils"
)

type AppRepository interface {
	utils.Repository[string, models.App, DB]
	// ReadWithRelations loads the app including its developer and categories
	ReadWithRelations(ctx context.Context, tx DB, appID string) (models.App, error)
	ListPaged(ctx context.Context, filter AppFilter, pageInfo PageInfo) (Paged[models.App], error)
	// CreateBatch inserts the apps. If skipExisting is set, apps whose id already exists are left untouched.
	// Returns the number of inserted rows.
	CreateBatch(ctx context.Context, tx DB, apps []models.App, skipExisting bool) (int64, error)
	ReplaceCategories(ctx context.Context, tx DB, appID string, categoryIDs []int64) error
	LinkCategories(ctx context.Context, tx DB, links []models.AppCategory) error
}

type DeveloperRepository interface {
	utils.Repository[int64, models.Developer, DB]
	ListPaged(ctx context.Context, search string, pageInfo PageInfo) (Paged[models.Developer], error)
	// EnsureByNames inserts the developers that do not exist yet (by name) and returns all of them.
	EnsureByNames(ctx context.Context, tx DB, developers []models.Developer) ([]models.Developer, error)
}

type CategoryRepository interface {
	utils.Repository[int64, models.Category, DB]
	SearchByName(ctx context.Context, name string) ([]models.Category, error)
	// EnsureByNames inserts the categories that do not exist yet and returns all of them.
	EnsureByNames(ctx context.Context, tx DB, names []string) ([]models.Category, error)
}

type StatisticsRepository interface {
	AverageRatingByCategory(ctx context.Context) ([]models.CategoryRating, error)
}

type AppService interface {
	List(ctx context.Context, filter AppFilter, pageInfo PageInfo) (Paged[models.App], error)
	Read(ctx context.Context, appID string) (models.App, error)
	Create(ctx context.Context, app models.App, categoryNames []string) (models.App, error)
	Update(ctx context.Context, appID string, app models.App, categoryNames []string) (models.App, error)
	Delete(ctx context.Context, appID string) error
}

type DeveloperService interface {
	List(ctx context.Context, search string, pageInfo PageInfo) (Paged[models.Developer], error)
	Read(ctx context.Context, id int64) (models.Developer, error)
	Create(ctx context.Context, developer *models.Developer) error
	Update(ctx context.Context, developer *models.Developer) error
	Delete(ctx context.Context, id int64) error
}

type CategoryService interface {
	Search(ctx context.Context, name string) ([]models.Category, error)
	Read(ctx context.Context, id int64) (models.Category, error)
}

type StatisticsService interface {
	RatingsByCategory(ctx context.Context) ([]models.CategoryRating, error)
}
