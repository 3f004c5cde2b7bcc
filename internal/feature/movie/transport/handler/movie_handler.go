// Package handler はmovieフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/feature/movie/transport/http/dto"
	"movie_backend/internal/feature/movie/usecase"
	"movie_backend/internal/platform/http/request"
)

const (
	msgMovieCreated = "movie created"
	msgMovieUpdated = "movie updated"
	msgMovieDeleted = "movie deleted"

	msgInvalidCategoryFilter = "categoryId must be a positive integer"
)

// MovieUsecase は映画カタログのユースケースを定義します。
type MovieUsecase interface {
	Create(ctx context.Context, in usecase.MovieInput) (*entity.Movie, error)
	List(ctx context.Context, filter usecase.ListFilter) ([]entity.Movie, int64, error)
	Get(ctx context.Context, id uint) (*entity.Movie, error)
	Update(ctx context.Context, id uint, in usecase.MovieInput) (*entity.Movie, error)
	Delete(ctx context.Context, id uint) error
}

// MovieHandler は映画のHTTPリクエストを処理します。
type MovieHandler struct {
	uc MovieUsecase
}

// NewMovieHandler は新しい MovieHandler を作成します。
func NewMovieHandler(uc MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// Create は映画を登録します。
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.MovieReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.uc.Create(c.Request.Context(), toInput(req))
	if err != nil {
		h.fail(c, "failed to create movie", 0, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MovieEnvelope{Message: msgMovieCreated, Movie: movie})
}

// List は映画一覧をカテゴリー付きで返します。
// クエリパラメータ title, categoryId で絞り込み、page と limit が両方ある場合は {total, movies} を返します。
func (h *MovieHandler) List(c *gin.Context) {
	page, err := request.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	filter := usecase.ListFilter{Title: c.Query("title"), Page: page}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgInvalidCategoryFilter})
			return
		}
		filter.CategoryID = uint(id)
	}

	movies, total, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "failed to list movies", 0, err)
		return
	}
	if movies == nil {
		movies = []entity.Movie{}
	}
	if page != nil {
		c.JSON(http.StatusOK, dto.MoviePage{Total: total, Movies: movies})
		return
	}
	c.JSON(http.StatusOK, movies)
}

// Get はIDで指定された映画を返します。
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to get movie", id, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Update は映画の全フィールドを更新します。
func (h *MovieHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.MovieReq
	if err := request.BindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.uc.Update(c.Request.Context(), id, toInput(req))
	if err != nil {
		h.fail(c, "failed to update movie", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovieEnvelope{Message: msgMovieUpdated, Movie: movie})
}

// Delete は映画を削除します。
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete movie", id, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgMovieDeleted})
}

func toInput(req dto.MovieReq) usecase.MovieInput {
	return usecase.MovieInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
}

func (h *MovieHandler) fail(c *gin.Context, logMsg string, id uint, err error) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrMovieNotFound.Error()})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrCategoryNotFound.Error()})
	default:
		slog.Error(logMsg, "error", err, "movie_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.MsgInternalError})
	}
}
