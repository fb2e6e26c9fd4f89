// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database
// operations, including the stock ledger reads/writes used by reconciliation.
type ProductRepository interface {
	// CreateProduct persists a new catalog product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct overwrites an existing product's editable fields.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the full catalog, ordered by display priority
	// (ascending) with newest-first tie breaking where the schema allows.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetStock reads the available quantity for a single product.
	GetStock(ctx context.Context, id uuid.UUID) (int, error)

	// SetStock writes the available quantity for a single product.
	SetStock(ctx context.Context, id uuid.UUID, stock int) error
}
