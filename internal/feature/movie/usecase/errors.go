// Package usecase implements the business logic for the movie feature.
package usecase

import (
	"errors"

	categoryusecase "movie_backend/internal/feature/category/usecase"
)

var (
	// ErrMovieNotFound is returned when no movie has the requested ID.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrCategoryNotFound is returned when a movie references a category that does not exist.
	// Unlike a missing movie it is reported to clients as a bad request.
	ErrCategoryNotFound = categoryusecase.ErrCategoryNotFound
)
