// Package entity defines the domain entities for the category feature.
package entity

import "time"

// Category groups movies by genre. A category that is still referenced by a
// movie cannot be deleted.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
