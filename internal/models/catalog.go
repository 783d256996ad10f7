package models

// ProductQuery carries the filters and paging of a catalog listing request.
// Zero values mean "no filter": Search empty, CategoryID 0, FavoritesOnly
// false. UserID is 0 for anonymous callers.
type ProductQuery struct {
	Page          int
	PageSize      int
	Search        string
	CategoryID    uint
	FavoritesOnly bool
	UserID        uint
}

// PagedResult is one page of the filtered catalog plus the count metadata the
// client needs to render pagination controls.
type PagedResult struct {
	Items      []Product `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
