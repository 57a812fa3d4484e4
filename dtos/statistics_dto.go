package dtos

type CategoryRatingDTO struct {
	Category      string  `json:"category" yaml:"category"`
	AverageRating float64 `json:"average_rating" yaml:"average_rating"`
	AppCount      int64   `json:"app_count" yaml:"app_count"`
}

type MessageDTO struct {
	Message string `json:"message" yaml:"message"`
}
