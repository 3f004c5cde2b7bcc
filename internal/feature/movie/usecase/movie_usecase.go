package usecase

import (
	"context"
	"errors"
	"fmt"

	categoryentity "movie_backend/internal/feature/category/domain/entity"
	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/shared/pagination"
)

// ListFilter narrows the movie list. Zero values mean "no filter".
type ListFilter struct {
	// Title matches case-insensitively anywhere in the title.
	Title      string
	CategoryID uint
	// Page is nil when the full list is requested.
	Page *pagination.Params
}

// MovieRepository はmovieエンティティの永続化層を抽象化します。
// 読み取り系のメソッドはCategoryをプリロードして返します。
type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	// FindByID は映画が存在しない場合、ErrMovieNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Movie, error)
	// List はフィルタに一致する映画とその総件数をID順に返します。
	List(ctx context.Context, filter ListFilter) ([]entity.Movie, int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	// Delete は削除対象が存在しない場合、ErrMovieNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// CategoryFinder はカテゴリーの存在確認に使います。
// カテゴリーが存在しない場合、ErrCategoryNotFoundを返します。
type CategoryFinder interface {
	FindByID(ctx context.Context, id uint) (*categoryentity.Category, error)
}

// MovieInput carries the fields of a create or full update.
type MovieInput struct {
	Title       string
	Description string
	CategoryID  uint
}

// MovieUsecase は映画カタログのビジネスロジックを提供します。
type MovieUsecase struct {
	movies     MovieRepository
	categories CategoryFinder
}

// NewMovieUsecase は新しい MovieUsecase を作成します。
func NewMovieUsecase(movies MovieRepository, categories CategoryFinder) *MovieUsecase {
	return &MovieUsecase{movies: movies, categories: categories}
}

// Create は映画を登録し、カテゴリーを埋め込んだ状態で返します。
func (u *MovieUsecase) Create(ctx context.Context, in MovieInput) (*entity.Movie, error) {
	category, err := u.category(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  &category.ID,
	}
	if err := u.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	movie.Category = category
	return movie, nil
}

// List はフィルタに一致する映画を返します。
func (u *MovieUsecase) List(ctx context.Context, filter ListFilter) ([]entity.Movie, int64, error) {
	return u.movies.List(ctx, filter)
}

// Get はIDで指定された映画を返します。
func (u *MovieUsecase) Get(ctx context.Context, id uint) (*entity.Movie, error) {
	return u.movies.FindByID(ctx, id)
}

// Update は映画の全フィールドを置き換えます。
func (u *MovieUsecase) Update(ctx context.Context, id uint, in MovieInput) (*entity.Movie, error) {
	movie, err := u.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := u.category(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	movie.Title = in.Title
	movie.Description = in.Description
	movie.CategoryID = &category.ID
	movie.Category = category
	if err := u.movies.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	return movie, nil
}

// Delete は映画を削除します。
func (u *MovieUsecase) Delete(ctx context.Context, id uint) error {
	return u.movies.Delete(ctx, id)
}

func (u *MovieUsecase) category(ctx context.Context, id uint) (*categoryentity.Category, error) {
	category, err := u.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	return category, nil
}
