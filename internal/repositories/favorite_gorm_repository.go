package repositories

import (
	"fmt"

	"eshop/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Toggle flips the (user, product) association inside a transaction. The
// delete-then-insert runs against the unique index on the pair, so a second
// toggle always undoes the first even under concurrent requests.
func (r *GORMFavoriteRepository) Toggle(userID, productID uint) (bool, error) {
	var nowFavorite bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			nowFavorite = false
			return nil
		}
		if err := tx.Create(&models.Favorite{UserID: userID, ProductID: productID}).Error; err != nil {
			return err
		}
		nowFavorite = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite (user %d, product %d): %w", userID, productID, err)
	}
	return nowFavorite, nil
}

// ProductIDs returns the IDs of all products the user has favorited.
func (r *GORMFavoriteRepository) ProductIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("product_id ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites of user %d: %w", userID, err)
	}
	return ids, nil
}
