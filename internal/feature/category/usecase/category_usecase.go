package usecase

import (
	"context"
	"fmt"

	"movie_backend/internal/feature/category/domain/entity"
	"movie_backend/internal/shared/pagination"
)

// CategoryRepository はカテゴリーの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// FindByID はカテゴリーが存在しない場合、ErrCategoryNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	// List はID順に全カテゴリーを返します。
	List(ctx context.Context) ([]entity.Category, error)
	// ListPage は指定ページのカテゴリーと総件数を返します。
	ListPage(ctx context.Context, page pagination.Params) ([]entity.Category, int64, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete は削除対象が存在しない場合、ErrCategoryNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// MovieCounter はカテゴリーを参照している映画の件数を返します。
type MovieCounter interface {
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryUsecase はカテゴリー管理のビジネスロジックを提供します。
type CategoryUsecase struct {
	categories CategoryRepository
	movies     MovieCounter
}

// NewCategoryUsecase は新しい CategoryUsecase を作成します。
func NewCategoryUsecase(categories CategoryRepository, movies MovieCounter) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, movies: movies}
}

// Create は新しいカテゴリーを作成します。
func (u *CategoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: name}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// List はカテゴリー一覧を返します。
// pageがnilの場合は全件を返し、総件数は返却件数と等しくなります。
func (u *CategoryUsecase) List(ctx context.Context, page *pagination.Params) ([]entity.Category, int64, error) {
	if page == nil {
		categories, err := u.categories.List(ctx)
		if err != nil {
			return nil, 0, err
		}
		return categories, int64(len(categories)), nil
	}
	return u.categories.ListPage(ctx, *page)
}

// Get はIDで指定されたカテゴリーを返します。
func (u *CategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.categories.FindByID(ctx, id)
}

// Update はカテゴリー名を変更します。
func (u *CategoryUsecase) Update(ctx context.Context, id uint, name string) (*entity.Category, error) {
	category, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := u.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return category, nil
}

// Delete はカテゴリーを削除します。
// 映画から参照されている場合は削除せず、ErrCategoryInUseを返します。
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	count, err := u.movies.CountByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("count movies for category %d: %w", id, err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return u.categories.Delete(ctx, id)
}
