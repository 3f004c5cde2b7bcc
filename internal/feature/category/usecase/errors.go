// Package usecase implements the business logic for the category feature.
package usecase

import "errors"

var (
	// ErrCategoryNotFound is returned when no category has the requested ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when deleting a category that movies still reference.
	ErrCategoryInUse = errors.New("category in use, cannot delete")
)
