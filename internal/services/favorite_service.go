package services

import (
	"errors"

	"eshop/internal/repositories"
)

// FavoriteService handles the favorite toggle, the only write path shared by
// concurrent requests from the same user.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, productRepo repositories.ProductRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips the favorite marker for the (user, product) pair and returns
// the resulting membership. The repository performs the flip atomically, so a
// second toggle always undoes the first.
func (s *FavoriteService) Toggle(userID, productID uint) (bool, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}
	return s.favoriteRepo.Toggle(userID, productID)
}

// ProductIDs lists the IDs of the products the user has favorited, in
// ascending order.
func (s *FavoriteService) ProductIDs(userID uint) ([]uint, error) {
	ids, err := s.favoriteRepo.ProductIDs(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
