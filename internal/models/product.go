package models

import "time"

// Product rows are hard-deleted, so no soft-delete marker here.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:255;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Photo string  `gorm:"size:255" json:"photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
