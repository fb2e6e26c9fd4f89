package impl

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type catalogService struct {
	productRepo repository.ProductRepository
	collator    *collate.Collator
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(productRepo repository.ProductRepository) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		// Und keeps name ordering locale-neutral but still collation-aware,
		// so accented and non-Latin product names sort sensibly.
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// View returns one catalog page: filter by name or description, sort, then
// slice.
// A page past the end resets to the first page instead of erroring.
func (s *catalogService) View(ctx context.Context, query usecase.CatalogQuery) (*usecase.CatalogView, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if needle := strings.ToLower(strings.TrimSpace(query.Search)); needle != "" {
		filtered := make([]*entity.Product, 0, len(products))
		for _, product := range products {
			if strings.Contains(strings.ToLower(product.Name), needle) ||
				strings.Contains(strings.ToLower(product.Description), needle) {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	s.sortProducts(products, query.Sort)

	totalItems := len(products)
	totalPages := (totalItems + usecase.CatalogPageSize - 1) / usecase.CatalogPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := query.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * usecase.CatalogPageSize
	end := start + usecase.CatalogPageSize
	if end > totalItems {
		end = totalItems
	}
	items := []*entity.Product{}
	if start < totalItems {
		items = products[start:end]
	}

	return &usecase.CatalogView{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}, nil
}

func (s *catalogService) sortProducts(products []*entity.Product, key usecase.CatalogSort) {
	switch key {
	case usecase.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case usecase.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case usecase.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case usecase.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[i].Name, products[j].Name) > 0
		})
	case usecase.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case usecase.SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	default: // SortPriority and the empty key
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Priority != products[j].Priority {
				return products[i].Priority < products[j].Priority
			}

			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
