package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the editable fields of a catalog product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CostPrice   float64
	ImageURL    string
	Images      []string
	Stock       int

	// Priority orders the storefront; nil keeps the default (shown last).
	Priority *int
}

// ProductUsecase manages the catalog from the operator side.
type ProductUsecase interface {
	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites a product's editable fields.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// GetProduct retrieves one product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the whole catalog in display order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UploadMedia stores one media file and returns its public URL.
	UploadMedia(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
