package repositories

import (
	"eshop/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Query returns one page of products matching the conjunctive filters in q,
	// ordered by ascending ID, together with the total match count before
	// pagination. Every returned product carries its category.
	Query(q models.ProductQuery) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
