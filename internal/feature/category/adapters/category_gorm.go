// Package adapters はcategoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movie_backend/internal/feature/category/domain/entity"
	"movie_backend/internal/feature/category/usecase"
	"movie_backend/internal/shared/pagination"
)

// categoryGorm はCategoryRepositoryインターフェースのGORM実装です。
type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryRepository は指定されたgorm.DB接続でcategoryGormの新しいインスタンスを生成します。
func NewCategoryRepository(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// Create はカテゴリーを追加します。
func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// FindByID はIDでカテゴリーを取得します。
func (r *categoryGorm) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List はID順にすべてのカテゴリーを返します。
func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListPage は指定ページのカテゴリーと総件数を返します。
func (r *categoryGorm) ListPage(ctx context.Context, page pagination.Params) ([]entity.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Update はカテゴリー名を更新します。
func (r *categoryGorm) Update(ctx context.Context, c *entity.Category) error {
	res := r.db.WithContext(ctx).Model(c).Update("name", c.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}

// Delete はカテゴリーを削除します。
func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}
