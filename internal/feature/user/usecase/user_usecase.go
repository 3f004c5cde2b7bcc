package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie_backend/internal/feature/user/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound if no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]entity.User, error)

	// Update saves the email and password of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. It returns ErrUserNotFound if nothing was deleted.
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher produces salted password hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UpdateInput carries the optional fields of a user update. Nil means unchanged.
type UpdateInput struct {
	Email    *string
	Password *string
}

// UserUsecase provides business logic for user management.
type UserUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, hasher: hasher}
}

// Create registers a user, hashing the plaintext password before it is stored.
func (u *UserUsecase) Create(ctx context.Context, email, password string) (*entity.User, error) {
	if err := u.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// List returns all users.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// Get returns the user with the given ID.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update applies the supplied fields to the user.
// The password is re-hashed only when a new plaintext password is supplied.
func (u *UserUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.User, error) {
	if in.Email == nil && in.Password == nil {
		return nil, ErrNothingToUpdate
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := u.ensureEmailFree(ctx, *in.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes the user with the given ID.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// ensureEmailFree returns ErrEmailAlreadyExists if a user other than selfID owns email.
func (u *UserUsecase) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := u.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup email: %w", err)
	case existing.ID != selfID:
		return ErrEmailAlreadyExists
	}
	return nil
}
