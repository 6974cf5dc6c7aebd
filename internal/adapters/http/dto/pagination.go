package dto

// Catalog pages are fixed-size and zero-indexed. The page size is owned
// by the catalog service; clients only pick the page number.

// PageRequest carries the page selection query parameters.
type PageRequest struct {
	// Page is the zero-indexed page number.
	Page uint `form:"page" validate:"omitempty"`

	// Category filters the catalog. Empty and "All" mean no filter.
	Category string `form:"category" validate:"omitempty,category"`
}

// PagedResponse is the envelope for one catalog page.
type PagedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// Page is the zero-indexed page number that was served.
	Page uint `json:"page"`

	// PageSize is the fixed page size.
	PageSize uint `json:"pageSize"`

	// HasMore indicates whether a further page may exist. It is derived
	// from the page being full; a catalog whose size is an exact multiple
	// of the page size yields one trailing empty page.
	HasMore bool `json:"hasMore"`
}

// NewPagedResponse wraps one fetched page in the envelope.
func NewPagedResponse[T any](items []T, page, pageSize uint) *PagedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PagedResponse[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasMore:  uint(len(items)) == pageSize,
	}
}
