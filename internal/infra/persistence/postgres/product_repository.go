package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db   *gorm.DB
	caps *StoreCapabilities
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB, caps *StoreCapabilities) repository.ProductRepository {
	return &productRepository{
		db:   db,
		caps: caps,
	}
}

// CreateProduct persists a new catalog product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProductSaveFailed.WrapMessage("invalid product values")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// UpdateProduct overwrites an existing product's editable fields.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"image_url":   product.ImageURL,
		"stock":       product.Stock,
	}
	if repo.caps.ProductCostPrice {
		updates["cost_price"] = product.CostPrice
	}
	if repo.caps.ProductImages {
		updates["images"] = marshalImages(product.Images)
	}
	if repo.caps.ProductPriority {
		updates["priority"] = product.Priority
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Select(repo.caps.productColumns()).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return repo.toProductDomain(&productM), nil
}

// ListProducts retrieves the full catalog in display order.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Select(repo.caps.productColumns()).
		Order(repo.caps.productOrder()).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, repo.toProductDomain(productM))
	}

	return products, nil
}

// GetStock reads the available quantity for a single product.
func (repo *productRepository) GetStock(ctx context.Context, id uuid.UUID) (int, error) {
	var stock int

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Pluck("stock", &stock)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to read product stock")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrProductNotFound
	}

	return stock, nil
}

// SetStock writes the available quantity for a single product.
func (repo *productRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock", stock)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to write product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// filling defaults for fields the connected schema does not have.
func (repo *productRepository) toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CostPrice:   data.CostPrice,
		ImageURL:    data.ImageURL,
		Images:      unmarshalImages(data.Images),
		Stock:       data.Stock,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
	}

	if !repo.caps.ProductPriority || product.Priority == 0 {
		product.Priority = entity.DefaultPriority
	}
	if len(product.Images) == 0 && product.ImageURL != "" {
		product.Images = []string{product.ImageURL}
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CostPrice:   data.CostPrice,
		ImageURL:    data.ImageURL,
		Images:      marshalImages(data.Images),
		Stock:       data.Stock,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
	}
}

func marshalImages(images []string) datatypes.JSON {
	if len(images) == 0 {
		return datatypes.JSON("[]")
	}

	raw, err := json.Marshal(images)
	if err != nil {
		return datatypes.JSON("[]")
	}

	return datatypes.JSON(raw)
}

func unmarshalImages(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}

	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil
	}

	return images
}
