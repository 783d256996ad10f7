package repositories

// FavoriteRepository defines the interface for per-user favorite markers.
type FavoriteRepository interface {
	// Toggle atomically flips the (user, product) association and reports the
	// resulting membership. Two concurrent toggles for the same pair must not
	// double-insert; the backing store's uniqueness guarantee on the pair is
	// the mechanism.
	Toggle(userID, productID uint) (bool, error)
	ProductIDs(userID uint) ([]uint, error)
}
