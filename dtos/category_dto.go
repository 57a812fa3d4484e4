package dtos

type CategoryDTO struct {
	CategoryID   int64  `json:"category_id" yaml:"category_id"`
	CategoryName string `json:"category_name" yaml:"category_name"`
}

type CategoryListResponse struct {
	Categories []CategoryDTO `json:"categories" yaml:"categories"`
}
