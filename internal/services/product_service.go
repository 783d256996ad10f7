package services

import (
	"errors"
	"fmt"
	"log"

	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/pkg/events"
)

// ProductService handles the admin write paths of the catalog. Writes are
// validated before anything is persisted, so a rejected write never leaves an
// orphan product behind. Successful writes publish a catalog change event.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *events.Client
}

// NewProductService creates a new ProductService. The events client may be
// nil, in which case change events are skipped.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mqClient *events.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// GetProductByID retrieves a single product with its category.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct validates and persists a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Price <= 0 {
		return ErrInvalidPrice
	}
	category, err := s.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: ID %d", ErrCategoryNotFound, product.CategoryID)
		}
		return fmt.Errorf("failed to check category %d: %w", product.CategoryID, err)
	}
	if product.Description == "" {
		product.Description = models.DefaultDescription
	}
	product.Category = *category

	if err := s.productRepo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.publishEvent(events.ProductCreated, product.ID, product.Name)
	return nil
}

// UpdateProduct validates and applies changes to an existing product. The
// category is re-checked only when it is being reassigned.
func (s *ProductService) UpdateProduct(id uint, updated *models.Product) (*models.Product, error) {
	if updated.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if updated.Description == "" {
		updated.Description = models.DefaultDescription
	}

	if product.CategoryID != updated.CategoryID {
		category, err := s.categoryRepo.GetByID(updated.CategoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %d", ErrCategoryNotFound, updated.CategoryID)
			}
			return nil, fmt.Errorf("failed to check category %d: %w", updated.CategoryID, err)
		}
		product.CategoryID = updated.CategoryID
		product.Category = *category
	}

	product.Name = updated.Name
	product.Description = updated.Description
	product.Price = updated.Price
	product.ImageURL = updated.ImageURL
	product.Stock = updated.Stock

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.publishEvent(events.ProductUpdated, product.ID, product.Name)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: ID %d", ErrProductNotFound, id)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.publishEvent(events.ProductDeleted, id, "")
	return nil
}

// publishEvent sends a catalog change event. Publishing is best-effort: a
// missing broker or a publish failure never fails the write itself.
func (s *ProductService) publishEvent(routingKey string, productID uint, name string) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"productID": productID,
	}
	if name != "" {
		payload["name"] = name
	}
	if err := s.mqClient.PublishProductEvent(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", routingKey, productID, err)
	}
}
