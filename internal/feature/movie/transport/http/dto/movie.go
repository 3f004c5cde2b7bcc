// Package dto defines data transfer objects for the movie feature's HTTP transport layer.
package dto

import "movie_backend/internal/feature/movie/domain/entity"

// MovieReq is the request body for creating or fully updating a movie.
type MovieReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CategoryID  uint   `json:"categoryId" binding:"required,min=1"`
}

// MovieEnvelope wraps a movie with a confirmation message.
type MovieEnvelope struct {
	Message string        `json:"message"`
	Movie   *entity.Movie `json:"movie"`
}

// MoviePage is returned when the list is requested with page and limit.
type MoviePage struct {
	Total  int64          `json:"total"`
	Movies []entity.Movie `json:"movies"`
}
