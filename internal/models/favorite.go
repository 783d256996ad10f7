package models

import "time"

// Favorite marks a product as favorited by a user. Presence means favorited;
// the composite unique index makes the toggle race-safe.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_user_product;not null"`
	CreatedAt time.Time `json:"created_at"`
}
