// Package dto defines data transfer objects for the category feature's HTTP transport layer.
package dto

import "movie_backend/internal/feature/category/domain/entity"

// CategoryReq is the request body for creating or renaming a category.
type CategoryReq struct {
	Name string `json:"name" binding:"required"`
}

// CategoryEnvelope wraps a category with a confirmation message.
type CategoryEnvelope struct {
	Message  string           `json:"message"`
	Category *entity.Category `json:"category"`
}

// CategoryPage is returned when the list is requested with page and limit.
type CategoryPage struct {
	Total      int64             `json:"total"`
	Categories []entity.Category `json:"categories"`
}
