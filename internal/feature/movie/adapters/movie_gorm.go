// Package adapters はmovieフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/feature/movie/usecase"
	"movie_backend/internal/platform/db"
)

// likeEscaper はタイトル検索の % と _ をリテラルとして扱うためにエスケープします。
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// movieGorm はMovieRepositoryインターフェースのGORM実装です。
// カテゴリーの参照件数も数えるため、categoryユースケースのMovieCounterとしても使われます。
type movieGorm struct {
	db *gorm.DB
}

var _ usecase.MovieRepository = (*movieGorm)(nil)

// NewMovieRepository は指定されたgorm.DB接続でmovieGormの新しいインスタンスを生成します。
func NewMovieRepository(db *gorm.DB) *movieGorm {
	return &movieGorm{db: db}
}

// Create は映画を追加します。関連するカテゴリー行は書き込みません。
// 存在しないカテゴリーを参照した場合、usecase.ErrCategoryNotFoundを返します。
func (r *movieGorm) Create(ctx context.Context, m *entity.Movie) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return usecase.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// FindByID はIDで映画をカテゴリー付きで取得します。
func (r *movieGorm) FindByID(ctx context.Context, id uint) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Preload("Category").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List はフィルタに一致する映画をカテゴリー付きでID順に返します。
// ページ指定がない場合、総件数は返却件数と等しくなります。
func (r *movieGorm) List(ctx context.Context, f usecase.ListFilter) ([]entity.Movie, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if f.Title != "" {
			tx = tx.Where("LOWER(title) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(strings.ToLower(f.Title))+"%")
		}
		if f.CategoryID != 0 {
			tx = tx.Where("category_id = ?", f.CategoryID)
		}
		return tx
	}

	var total int64
	if f.Page != nil {
		if err := r.db.WithContext(ctx).Model(&entity.Movie{}).Scopes(filter).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	q := r.db.WithContext(ctx).Scopes(filter).Preload("Category").Order("id ASC")
	if f.Page != nil {
		q = q.Offset(f.Page.Offset()).Limit(f.Page.Limit)
	}
	var movies []entity.Movie
	if err := q.Find(&movies).Error; err != nil {
		return nil, 0, err
	}
	if f.Page == nil {
		total = int64(len(movies))
	}
	return movies, total, nil
}

// Update はタイトル・説明・カテゴリーIDを更新します。
func (r *movieGorm) Update(ctx context.Context, m *entity.Movie) error {
	res := r.db.WithContext(ctx).
		Model(m).
		Omit(clause.Associations).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"category_id": m.CategoryID,
		})
	if res.Error != nil {
		if db.IsForeignKeyViolation(res.Error) {
			return usecase.ErrCategoryNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovieNotFound
	}
	return nil
}

// Delete は映画を削除します。
func (r *movieGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovieNotFound
	}
	return nil
}

// CountByCategoryID は指定カテゴリーを参照している映画の件数を返します。
func (r *movieGorm) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Movie{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
