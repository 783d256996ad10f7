package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"
)

// Catalog paging defaults. The storefront lists 9 products per page; the
// admin panel passes its own page size explicitly.
const (
	DefaultPageSize = 9
	MinSearchLength = 3
)

// CatalogService answers paged, filtered catalog listings. It is read-only:
// all filters are conjunctive, the total is counted before the page slice is
// taken, and results are ordered by ascending product ID so pages are stable
// across requests.
type CatalogService struct {
	productRepo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
	}
}

// QueryProducts returns the requested page of the filtered catalog.
//
// A non-empty search term shorter than MinSearchLength fails with
// ErrSearchTooShort and no query is executed. Page values below 1 are clamped
// to 1 and a non-positive page size falls back to DefaultPageSize. A page past
// the end of the result set yields an empty item slice with the counts still
// reflecting the full filtered set. FavoritesOnly for an anonymous caller
// (UserID 0) short-circuits to an empty result, never an error.
func (s *CatalogService) QueryProducts(q models.ProductQuery) (*models.PagedResult, error) {
	if q.Search != "" && len([]rune(q.Search)) < MinSearchLength {
		return nil, ErrSearchTooShort
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}

	if q.FavoritesOnly && q.UserID == 0 {
		// Anonymous callers have no favorites, so nothing can match.
		return &models.PagedResult{
			Items:    []models.Product{},
			Page:     q.Page,
			PageSize: q.PageSize,
		}, nil
	}

	items, total, err := s.productRepo.Query(q)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	if items == nil {
		items = []models.Product{}
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))

	return &models.PagedResult{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}, nil
}
