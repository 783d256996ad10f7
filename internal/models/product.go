package models

import "time"

// DefaultDescription is stored when a product is created or updated without one.
const DefaultDescription = "No description"

// Product represents a product in the catalog. Every read path returns the
// category denormalized so callers never need a second lookup.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	ImageURL    string    `json:"image_url" validate:"omitempty,max=500"`
	Stock       int       `json:"stock" validate:"gte=0"`
	CategoryID  uint      `json:"category_id" validate:"required"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID" validate:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
