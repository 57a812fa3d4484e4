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

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/l3montree-dev/appcatalog/database"
	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"gorm.io/gorm"
)

type appService struct {
	appRepository       shared.AppRepository
	developerRepository shared.DeveloperRepository
	categoryRepository  shared.CategoryRepository
}

func NewAppService(appRepository shared.AppRepository, developerRepository shared.DeveloperRepository, categoryRepository shared.CategoryRepository) *appService {
	return &appService{
		appRepository:       appRepository,
		developerRepository: developerRepository,
		categoryRepository:  categoryRepository,
	}
}

func translateAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", shared.ErrAppExists, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", shared.ErrUnknownDeveloper, err)
	case database.IsCheckViolation(err):
		return fmt.Errorf("%w: %w", shared.ErrInvalidApp, err)
	}
	return err
}

func (s *appService) List(ctx context.Context, filter shared.AppFilter, pageInfo shared.PageInfo) (shared.Paged[models.App], error) {
	return s.appRepository.ListPaged(ctx, filter, pageInfo)
}

func (s *appService) Read(ctx context.Context, appID string) (models.App, error) {
	return s.appRepository.ReadWithRelations(ctx, nil, appID)
}

func (s *appService) ensureDeveloperExists(ctx context.Context, developerID *int64) error {
	if developerID == nil {
		return nil
	}
	if _, err := s.developerRepository.Read(ctx, *developerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", shared.ErrUnknownDeveloper, *developerID)
		}
		return err
	}
	return nil
}

func (s *appService) replaceCategories(ctx context.Context, tx shared.DB, appID string, categoryNames []string) error {
	categories, err := s.categoryRepository.EnsureByNames(ctx, tx, categoryNames)
	if err != nil {
		return fmt.Errorf("could not resolve categories: %w", err)
	}
	return s.appRepository.ReplaceCategories(ctx, tx, appID, utils.Map(categories, func(c models.Category) int64 {
		return c.CategoryID
	}))
}

// Create inserts the app and links it to the given categories. Unknown categories are created.
func (s *appService) Create(ctx context.Context, app models.App, categoryNames []string) (models.App, error) {
	if err := s.ensureDeveloperExists(ctx, app.DeveloperID); err != nil {
		return models.App{}, err
	}

	err := s.appRepository.Transaction(ctx, func(tx shared.DB) error {
		if err := s.appRepository.Create(ctx, tx, &app); err != nil {
			return err
		}
		return s.replaceCategories(ctx, tx, app.AppID, categoryNames)
	})
	if err != nil {
		return models.App{}, translateAppError(err)
	}

	return s.appRepository.ReadWithRelations(ctx, nil, app.AppID)
}

// Update replaces all mutable fields of the app and its category links.
func (s *appService) Update(ctx context.Context, appID string, app models.App, categoryNames []string) (models.App, error) {
	if _, err := s.appRepository.Read(ctx, appID); err != nil {
		return models.App{}, err
	}
	if err := s.ensureDeveloperExists(ctx, app.DeveloperID); err != nil {
		return models.App{}, err
	}

	app.AppID = appID
	err := s.appRepository.Transaction(ctx, func(tx shared.DB) error {
		if err := s.appRepository.Save(ctx, tx, &app); err != nil {
			return err
		}
		return s.replaceCategories(ctx, tx, appID, categoryNames)
	})
	if err != nil {
		return models.App{}, translateAppError(err)
	}

	return s.appRepository.ReadWithRelations(ctx, nil, appID)
}

func (s *appService) Delete(ctx context.Context, appID string) error {
	return s.appRepository.Delete(ctx, nil, appID)
}
