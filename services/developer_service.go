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
	"fmt"

	"github.com/l3montree-dev/appcatalog/database"
	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/shared"
)

type developerService struct {
	developerRepository shared.DeveloperRepository
}

func NewDeveloperService(developerRepository shared.DeveloperRepository) *developerService {
	return &developerService{
		developerRepository: developerRepository,
	}
}

func translateDeveloperError(err error) error {
	if database.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", shared.ErrDeveloperExists, err)
	}
	return err
}

func (s *developerService) List(ctx context.Context, search string, pageInfo shared.PageInfo) (shared.Paged[models.Developer], error) {
	return s.developerRepository.ListPaged(ctx, search, pageInfo)
}

func (s *developerService) Read(ctx context.Context, id int64) (models.Developer, error) {
	return s.developerRepository.Read(ctx, id)
}

func (s *developerService) Create(ctx context.Context, developer *models.Developer) error {
	return translateDeveloperError(s.developerRepository.Create(ctx, nil, developer))
}

func (s *developerService) Update(ctx context.Context, developer *models.Developer) error {
	if _, err := s.developerRepository.Read(ctx, developer.DeveloperID); err != nil {
		return err
	}
	return translateDeveloperError(s.developerRepository.Save(ctx, nil, developer))
}

// Delete removes the developer. Apps of the developer are kept without a developer.
func (s *developerService) Delete(ctx context.Context, id int64) error {
	return s.developerRepository.Delete(ctx, nil, id)
}
