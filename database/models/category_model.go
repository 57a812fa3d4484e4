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

type Category struct {
	CategoryID   int64  `json:"categoryId" gorm:"primaryKey;autoIncrement"`
	CategoryName string `json:"categoryName" gorm:"type:text;uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRating is the aggregate row of the average rating per category.
type CategoryRating struct {
	CategoryName  string
	AverageRating float64
	AppCount      int64
}
