package services_test

import (
	"fmt"
	"testing"

	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Query(q models.ProductQuery) ([]models.Product, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	category := &models.Category{ID: 1, Name: "Electronics"}
	newProduct := &models.Product{Name: "Laptop", Price: 1200.00, CategoryID: 1}

	// Successful creation carries the denormalized category
	mockCategories.On("GetByID", uint(1)).Return(category, nil).Once()
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	assert.Equal(t, "Electronics", newProduct.Category.Name)
	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestProductService_CreateProduct_DefaultsDescription(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	mockCategories.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Books"}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := &models.Product{Name: "Novel", Price: 9.99, CategoryID: 1}
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultDescription, product.Description)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_RejectsBadPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	// Zero and negative prices are rejected before any repository call
	for _, price := range []float64{0, -5} {
		err := service.CreateProduct(&models.Product{Name: "Bad", Price: price, CategoryID: 1})
		assert.ErrorIs(t, err, services.ErrInvalidPrice)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockCategories.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestProductService_CreateProduct_RejectsUnknownCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	mockCategories.On("GetByID", uint(42)).Return(nil, fmt.Errorf("category with ID 42: %w", repositories.ErrNotFound)).Once()

	err := service.CreateProduct(&models.Product{Name: "Orphan", Price: 10, CategoryID: 42})
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	// No orphan product is persisted
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockCategories.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	existing := &models.Product{
		ID:          1,
		Name:        "Laptop",
		Description: "Old description",
		Price:       1200.00,
		CategoryID:  1,
		Category:    models.Category{ID: 1, Name: "Electronics"},
	}

	// Category unchanged: no category lookup happens
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.UpdateProduct(1, &models.Product{Name: "Laptop Pro", Price: 1500.00, CategoryID: 1})
	assert.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, 1500.00, updated.Price)
	assert.Equal(t, models.DefaultDescription, updated.Description)
	mockRepo.AssertExpectations(t)
	mockCategories.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestProductService_UpdateProduct_ReassignsCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	existing := &models.Product{ID: 1, Name: "Laptop", Price: 1200.00, CategoryID: 1}

	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockCategories.On("GetByID", uint(2)).Return(&models.Category{ID: 2, Name: "Clothing"}, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.UpdateProduct(1, &models.Product{Name: "Laptop", Price: 1200.00, CategoryID: 2})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), updated.CategoryID)
	assert.Equal(t, "Clothing", updated.Category.Name)
	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Rejections(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	// Bad price fails before the product is even fetched
	_, err := service.UpdateProduct(1, &models.Product{Name: "X", Price: 0, CategoryID: 1})
	assert.ErrorIs(t, err, services.ErrInvalidPrice)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)

	// Unknown product
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdateProduct(99, &models.Product{Name: "X", Price: 10, CategoryID: 1})
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	// Reassignment to an unknown category leaves the product untouched
	existing := &models.Product{ID: 1, Name: "Laptop", Price: 1200.00, CategoryID: 1}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockCategories.On("GetByID", uint(42)).Return(nil, fmt.Errorf("category with ID 42: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdateProduct(1, &models.Product{Name: "Laptop", Price: 1200.00, CategoryID: 42})
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	err := service.DeleteProduct(1)
	assert.NoError(t, err)

	mockRepo.On("Delete", uint(99)).Return(fmt.Errorf("product with ID 99 not found for deletion: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteProduct(99)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories, nil)

	expected := &models.Product{ID: 1, Name: "Laptop", Price: 1200.00, CategoryID: 1}

	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}
