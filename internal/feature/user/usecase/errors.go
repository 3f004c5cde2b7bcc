// Package usecase implements the business logic for the user feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to store a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("user already exists")

	// ErrNothingToUpdate is returned when an update carries neither an email nor a password.
	ErrNothingToUpdate = errors.New("email or password is required")
)
