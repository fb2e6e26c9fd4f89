package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCatalog(n int) []*entity.Product {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	products := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, &entity.Product{
			Name:      fmt.Sprintf("Product %02d", i),
			Price:     float64(100 + i*10),
			Priority:  entity.DefaultPriority,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	return products
}

func viewNames(view *usecase.CatalogView) []string {
	names := make([]string, 0, len(view.Items))
	for _, product := range view.Items {
		names = append(names, product.Name)
	}

	return names
}

func TestCatalogService_View_PriceSortsAreReverses(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := makeCatalog(5)
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil).Times(2)

	low, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortPriceLow})
	require.NoError(t, err)
	high, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortPriceHigh})
	require.NoError(t, err)

	lowNames := viewNames(low)
	highNames := viewNames(high)
	require.Len(t, highNames, len(lowNames))
	for i := range lowNames {
		assert.Equal(t, lowNames[i], highNames[len(highNames)-1-i])
	}
}

func TestCatalogService_View_PrioritySortBreaksTiesNewestFirst(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	catalog := []*entity.Product{
		{Name: "Old featured", Priority: 1, CreatedAt: base},
		{Name: "New featured", Priority: 1, CreatedAt: base.Add(time.Hour)},
		{Name: "Unranked", Priority: entity.DefaultPriority, CreatedAt: base.Add(2 * time.Hour)},
	}
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil)

	view, err := service.View(ctx, usecase.CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"New featured", "Old featured", "Unranked"}, viewNames(view))
}

func TestCatalogService_View_NameSortIsCollationAware(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := []*entity.Product{
		{Name: "orange kurta"},
		{Name: "Apple tee"},
		{Name: "Ékolap scarf"},
	}
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil)

	view, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortNameAsc})
	require.NoError(t, err)

	// Case-insensitive, accent-aware ordering rather than raw byte order.
	assert.Equal(t, []string{"Apple tee", "Ékolap scarf", "orange kurta"}, viewNames(view))
}

func TestCatalogService_View_NewestAndOldest(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := makeCatalog(3)
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil).Times(2)

	newest, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, "Product 02", newest.Items[0].Name)

	oldest, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortOldest})
	require.NoError(t, err)
	assert.Equal(t, "Product 00", oldest.Items[0].Name)
}

func TestCatalogService_View_PaginatesByTwelve(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := makeCatalog(13)
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil).Times(2)

	first, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortOldest, Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Items, usecase.CatalogPageSize)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 13, first.TotalItems)

	second, err := service.View(ctx, usecase.CatalogQuery{Sort: usecase.SortOldest, Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.Equal(t, "Product 12", second.Items[0].Name)
}

func TestCatalogService_View_OutOfRangePageResetsToFirst(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := makeCatalog(13)
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil)

	view, err := service.View(ctx, usecase.CatalogQuery{Page: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, usecase.CatalogPageSize)
}

func TestCatalogService_View_SearchFiltersByName(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	ctx := context.Background()

	catalog := []*entity.Product{
		{Name: "Silk Sharee"},
		{Name: "Cotton Sharee"},
		{Name: "Panjabi"},
	}
	productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil)

	view, err := service.View(ctx, usecase.CatalogQuery{Search: "sharee"})
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)
}

func TestCatalogBrowser_SortChangeResetsToFirstPage(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	catalog := NewCatalogService(productRepo)
	browser := NewCatalogBrowser(catalog)
	ctx := context.Background()

	products := makeCatalog(13)
	productRepo.EXPECT().ListProducts(ctx).Return(products, nil).Times(2)

	browser.SetPage(2)
	view, err := browser.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Items, 1)

	browser.SetSort(usecase.SortPriceLow)
	view, err = browser.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, usecase.CatalogPageSize)
}

func TestCatalogBrowser_SearchChangeResetsToFirstPage(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	catalog := NewCatalogService(productRepo)
	browser := NewCatalogBrowser(catalog)
	ctx := context.Background()

	products := makeCatalog(13)
	productRepo.EXPECT().ListProducts(ctx).Return(products, nil)

	browser.SetPage(2)
	browser.SetSearch("Product 0")

	view, err := browser.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 10, view.TotalItems)
}

func TestCatalogBrowser_SettingSameSortKeepsPage(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	catalog := NewCatalogService(productRepo)
	browser := NewCatalogBrowser(catalog)
	ctx := context.Background()

	products := makeCatalog(13)
	productRepo.EXPECT().ListProducts(ctx).Return(products, nil)

	browser.SetPage(2)
	browser.SetSort(usecase.SortPriority) // unchanged

	view, err := browser.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
}
