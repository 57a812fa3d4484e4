// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"context"

	"github.com/l3montree-dev/appcatalog/utils"
	"gorm.io/gorm"
)

// GormRepository implements the generic crud operations for a table with a single primary key column.
type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
	pk string
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB, pk string) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
		pk: pk,
	}
}

func (g *GormRepository[ID, T]) All(ctx context.Context) ([]T, error) {
	var ts []T
	err := g.db.WithContext(ctx).Order(g.pk).Find(&ts).Error
	return ts, err
}

func (g *GormRepository[ID, T]) Save(ctx context.Context, tx *gorm.DB, t *T) error {
	return g.GetDB(ctx, tx).Save(t).Error
}

func (g *GormRepository[ID, T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(f)
}

func (g *GormRepository[ID, T]) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}

	return g.db.WithContext(ctx)
}

func (g *GormRepository[ID, T]) Create(ctx context.Context, tx *gorm.DB, t *T) error {
	return g.GetDB(ctx, tx).Create(t).Error
}

func (g *GormRepository[ID, T]) Read(ctx context.Context, id ID) (T, error) {
	var t T
	err := g.db.WithContext(ctx).First(&t, g.pk+" = ?", id).Error

	return t, err
}

// Delete removes the row with the given id. Returns gorm.ErrRecordNotFound if nothing was deleted.
func (g *GormRepository[ID, T]) Delete(ctx context.Context, tx *gorm.DB, id ID) error {
	var t T
	res := g.GetDB(ctx, tx).Where(g.pk+" = ?", id).Delete(&t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ctx context.Context, ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T

	err := g.db.WithContext(ctx).Where(g.pk+" IN ?", ids).Find(&ts).Error
	if err != nil {
		return ts, err
	}
	return ts, nil
}
