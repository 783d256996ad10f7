package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"eshop/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It shares a MockFavoriteRepository so the favorites filter behaves like the
// database join.
type MockProductRepository struct {
	products   map[uint]models.Product
	categories *MockCategoryRepository
	favorites  *MockFavoriteRepository
	nextID     uint
	mu         sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository(categories *MockCategoryRepository, favorites *MockFavoriteRepository) *MockProductRepository {
	return &MockProductRepository{
		products:   make(map[uint]models.Product),
		categories: categories,
		favorites:  favorites,
		nextID:     1,
	}
}

// Query filters, counts, sorts by ID and slices, mirroring the GORM repository.
func (r *MockProductRepository) Query(q models.ProductQuery) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	needle := strings.ToLower(q.Search)
	for _, p := range r.products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if q.CategoryID != 0 && p.CategoryID != q.CategoryID {
			continue
		}
		if q.FavoritesOnly && !r.favorites.contains(q.UserID, p.ID) {
			continue
		}
		matched = append(matched, r.denormalize(p))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (q.Page - 1) * q.PageSize
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// GetByID returns a product with its category by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	product = r.denormalize(product)
	return &product, nil
}

// Create adds a new product, assigning the next ascending ID.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d not found for update: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

func (r *MockProductRepository) denormalize(p models.Product) models.Product {
	if r.categories != nil {
		if cat, err := r.categories.GetByID(p.CategoryID); err == nil {
			p.Category = *cat
		}
	}
	return p
}
