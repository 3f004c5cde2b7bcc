// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	userusecase "movie_backend/internal/feature/user/usecase"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	// Both cases share one error so that callers cannot tell which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = userusecase.ErrEmailAlreadyExists
)
