// Package entity defines the domain entities for the movie feature.
package entity

import (
	"time"

	categoryentity "movie_backend/internal/feature/category/domain/entity"
)

// Movie is a catalog entry. CategoryID is nullable: the schema sets it to
// NULL when the referenced category row disappears.
type Movie struct {
	ID          uint                     `gorm:"primaryKey" json:"id"`
	Title       string                   `gorm:"size:255;not null;index" json:"title"`
	Description string                   `gorm:"type:text;not null" json:"description"`
	CategoryID  *uint                    `gorm:"index" json:"categoryId"`
	Category    *categoryentity.Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}
