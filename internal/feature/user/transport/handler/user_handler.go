// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/feature/user/transport/http/dto"
	"movie_backend/internal/feature/user/usecase"
	"movie_backend/internal/platform/http/request"
)

const (
	msgUserCreated  = "user created"
	msgUserUpdated  = "user updated"
	msgUserDeleted  = "user deleted"
	msgUserNotFound = "user not found"
)

// UserUsecase はユーザー管理のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	Create(ctx context.Context, email, password string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザー管理のHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create はユーザー作成APIです（認証不要）。
// パスワードのハッシュ化はユースケース層で行われ、レスポンスには含まれません。
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.uc.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrEmailAlreadyExists.Error()})
			return
		}
		slog.Error("failed to create user", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.MsgInternalError})
		return
	}
	c.JSON(http.StatusCreated, dto.UserEnvelope{Message: msgUserCreated, User: dto.NewUserRes(user)})
}

// List は全ユーザーをパスワードを除いて返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.MsgInternalError})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// Get はIDで指定されたユーザーを返します。
func (h *UserHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to get user", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Update はユーザーのメールアドレスおよびパスワードを更新します。
// パスワードは指定された場合のみ再ハッシュされます。
func (h *UserHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.UpdateUserReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(c, "failed to update user", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Message: msgUserUpdated, User: dto.NewUserRes(user)})
}

// Delete はユーザーを削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete user", id, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgUserDeleted})
}

// fail はユースケースのエラーをHTTPステータスに変換します。
func (h *UserHandler) fail(c *gin.Context, logMsg string, id uint, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msgUserNotFound})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrEmailAlreadyExists.Error()})
	case errors.Is(err, usecase.ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrNothingToUpdate.Error()})
	default:
		slog.Error(logMsg, "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.MsgInternalError})
	}
}
