package impl

import (
	"context"
	"sync"

	"storefront/internal/usecase"
)

// CatalogBrowser is a stateful cursor over the catalog for clients that keep
// a browsing position server-side. It remembers the current sort, search and
// page, and resets to the first page whenever sort or search changes, so a
// narrowed result set is never entered on a page that no longer exists.
type CatalogBrowser struct {
	mu      sync.Mutex
	catalog usecase.CatalogUsecase
	query   usecase.CatalogQuery
}

// NewCatalogBrowser creates a browser positioned on the first page of the
// default (priority) ordering.
func NewCatalogBrowser(catalog usecase.CatalogUsecase) *CatalogBrowser {
	return &CatalogBrowser{
		catalog: catalog,
		query: usecase.CatalogQuery{
			Sort: usecase.SortPriority,
			Page: 1,
		},
	}
}

// SetSort changes the sort order and returns to the first page.
func (b *CatalogBrowser) SetSort(sort usecase.CatalogSort) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sort == b.query.Sort {
		return
	}
	b.query.Sort = sort
	b.query.Page = 1
}

// SetSearch changes the name filter and returns to the first page.
func (b *CatalogBrowser) SetSearch(search string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if search == b.query.Search {
		return
	}
	b.query.Search = search
	b.query.Page = 1
}

// SetPage moves to the given page.
func (b *CatalogBrowser) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if page < 1 {
		page = 1
	}
	b.query.Page = page
}

// View renders the page at the current position. If the underlying catalog
// reset an out-of-range page, the browser adopts the corrected page.
func (b *CatalogBrowser) View(ctx context.Context) (*usecase.CatalogView, error) {
	b.mu.Lock()
	query := b.query
	b.mu.Unlock()

	view, err := b.catalog.View(ctx, query)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.query == query {
		b.query.Page = view.Page
	}
	b.mu.Unlock()

	return view, nil
}
