package impl

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type productService struct {
	productRepo repository.ProductRepository
	media       service.MediaStorage
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	media service.MediaStorage,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		media:       media,
	}
}

// CreateProduct adds a product to the catalog.
func (s *productService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct overwrites a product's editable fields.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.FindProductByID(ctx, id)
}

// DeleteProduct removes a product from the catalog.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.DeleteProduct(ctx, id)
}

// GetProduct retrieves one product.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.productRepo.FindProductByID(ctx, id)
}

// ListProducts retrieves the whole catalog in display order.
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// UploadMedia stores one media file and returns its public URL.
func (s *productService) UploadMedia(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return s.media.Upload(ctx, filename, contentType, body)
}

func productFromInput(input usecase.ProductInput) *entity.Product {
	priority := entity.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	return &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CostPrice:   input.CostPrice,
		ImageURL:    input.ImageURL,
		Images:      input.Images,
		Stock:       input.Stock,
		Priority:    priority,
	}
}
