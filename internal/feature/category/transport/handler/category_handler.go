// Package handler はcategoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/category/domain/entity"
	"movie_backend/internal/feature/category/transport/http/dto"
	"movie_backend/internal/feature/category/usecase"
	"movie_backend/internal/platform/http/request"
	"movie_backend/internal/shared/pagination"
)

const (
	msgCategoryCreated = "category created"
	msgCategoryUpdated = "category updated"
	msgCategoryDeleted = "category deleted"
)

// CategoryUsecase はカテゴリー操作のユースケースを定義します。
type CategoryUsecase interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context, page *pagination.Params) ([]entity.Category, int64, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Update(ctx context.Context, id uint, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler はカテゴリーのHTTPリクエストを処理します。
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler は新しい CategoryHandler を作成します。
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create はカテゴリーを作成します。
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.uc.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, "failed to create category", 0, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryEnvelope{Message: msgCategoryCreated, Category: category})
}

// List はカテゴリー一覧を返します。
// pageとlimitが両方指定された場合のみ {total, categories} 形式で返します。
func (h *CategoryHandler) List(c *gin.Context) {
	page, err := request.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	categories, total, err := h.uc.List(c.Request.Context(), page)
	if err != nil {
		h.fail(c, "failed to list categories", 0, err)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	if page != nil {
		c.JSON(http.StatusOK, dto.CategoryPage{Total: total, Categories: categories})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get はIDで指定されたカテゴリーを返します。
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to get category", id, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Update はカテゴリー名を変更します。
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.CategoryReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.uc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, "failed to update category", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryEnvelope{Message: msgCategoryUpdated, Category: category})
}

// Delete はカテゴリーを削除します。映画から参照されている場合は400を返します。
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete category", id, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgCategoryDeleted})
}

func (h *CategoryHandler) fail(c *gin.Context, logMsg string, id uint, err error) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrCategoryNotFound.Error()})
	case errors.Is(err, usecase.ErrCategoryInUse):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrCategoryInUse.Error()})
	default:
		slog.Error(logMsg, "error", err, "category_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.MsgInternalError})
	}
}
