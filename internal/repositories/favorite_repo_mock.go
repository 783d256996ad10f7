package repositories

import (
	"sort"
	"sync"
)

// MockFavoriteRepository is an in-memory implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	pairs map[[2]uint]struct{} // keyed by (userID, productID)
	mu    sync.Mutex
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository.
func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{
		pairs: make(map[[2]uint]struct{}),
	}
}

// Toggle flips the (user, product) pair under the mutex, so concurrent
// toggles serialize the same way the database unique index would.
func (r *MockFavoriteRepository) Toggle(userID, productID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{userID, productID}
	if _, ok := r.pairs[key]; ok {
		delete(r.pairs, key)
		return false, nil
	}
	r.pairs[key] = struct{}{}
	return true, nil
}

// ProductIDs returns the IDs of all products the user has favorited.
func (r *MockFavoriteRepository) ProductIDs(userID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0)
	for key := range r.pairs {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// contains reports membership without mutating, used by the product mock.
func (r *MockFavoriteRepository) contains(userID, productID uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pairs[[2]uint{userID, productID}]
	return ok
}
