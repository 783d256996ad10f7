package services

import "errors"

// Sentinel errors surfaced to handlers, which map them to HTTP statuses with
// errors.Is.
var (
	// ErrSearchTooShort rejects non-empty search terms below the minimum
	// length before any query runs.
	ErrSearchTooShort = errors.New("search term must be at least 3 characters long")

	// ErrInvalidPrice rejects product writes with a non-positive price.
	ErrInvalidPrice = errors.New("product price must be greater than zero")

	// ErrCategoryNotFound rejects product writes referencing a category that
	// does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProductNotFound is returned for reads and writes against a missing
	// product.
	ErrProductNotFound = errors.New("product not found")

	// ErrUserNotFound is returned for lookups of a missing account.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser rejects registration when the username or email is
	// already in use.
	ErrDuplicateUser = errors.New("username or email already in use")
)
