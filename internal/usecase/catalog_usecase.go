// Package usecase defines the application's use case interfaces and their
// request/response types.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogPageSize is the number of products per storefront page.
const CatalogPageSize = 12

// CatalogSort enumerates the storefront sort orders.
type CatalogSort string

const (
	SortPriority  CatalogSort = "priority"   // Display priority ascending, newest first within ties.
	SortPriceLow  CatalogSort = "price-low"  // Price ascending.
	SortPriceHigh CatalogSort = "price-high" // Price descending.
	SortNameAsc   CatalogSort = "name-asc"   // Name A to Z, locale aware.
	SortNameDesc  CatalogSort = "name-desc"  // Name Z to A, locale aware.
	SortNewest    CatalogSort = "newest"     // Creation time descending.
	SortOldest    CatalogSort = "oldest"     // Creation time ascending.
)

// Valid reports whether the sort key is one of the supported orders.
func (s CatalogSort) Valid() bool {
	switch s {
	case SortPriority, SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc, SortNewest, SortOldest:
		return true
	}

	return false
}

// CatalogQuery describes one storefront page request.
type CatalogQuery struct {
	// Sort defaults to SortPriority when empty.
	Sort CatalogSort

	// Search is a case-insensitive filter over product name and
	// description; empty means all.
	Search string

	// Page is 1-based. Out-of-range pages reset to 1 rather than erroring.
	Page int
}

// CatalogView is one rendered storefront page.
type CatalogView struct {
	Items      []*entity.Product
	Page       int
	TotalPages int
	TotalItems int
}

// CatalogUsecase assembles paginated, sorted storefront views.
type CatalogUsecase interface {
	// View returns one catalog page for the given query.
	View(ctx context.Context, query CatalogQuery) (*CatalogView, error)
}
