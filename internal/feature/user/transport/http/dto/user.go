// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import (
	"time"

	"movie_backend/internal/feature/user/domain/entity"
)

// CreateUserReq represents the request body for POST /api/users.
type CreateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,maxbytes=72"`
}

// UpdateUserReq represents the request body for PUT /api/users/:id.
// Both fields are optional; absent fields are left unchanged.
type UpdateUserReq struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,maxbytes=72"`
}

// UserRes is the public view of a user. It never carries the password hash.
type UserRes struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserEnvelope wraps a user with a confirmation message.
type UserEnvelope struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// NewUserRes converts a user entity into its public view.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserList converts user entities into their public views.
func NewUserList(users []entity.User) []UserRes {
	out := make([]UserRes, 0, len(users))
	for i := range users {
		out = append(out, NewUserRes(&users[i]))
	}
	return out
}
