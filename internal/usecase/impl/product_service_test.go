package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct_DefaultsPriority(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	media := mockSvc.NewMockMediaStorage(t)
	service := NewProductService(productRepo, media)

	ctx := context.Background()
	productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, entity.DefaultPriority, product.Priority)
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, usecase.ProductInput{
		Name:  "Silk Sharee",
		Price: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPriority, product.Priority)
}

func TestProductService_CreateProduct_ExplicitPriority(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	media := mockSvc.NewMockMediaStorage(t)
	service := NewProductService(productRepo, media)

	ctx := context.Background()
	priority := 5
	productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.CreateProduct(ctx, usecase.ProductInput{
		Name:     "Featured Panjabi",
		Price:    900,
		Priority: &priority,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, product.Priority)
}

func TestProductService_UpdateProduct_ReturnsFreshRead(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	media := mockSvc.NewMockMediaStorage(t)
	service := NewProductService(productRepo, media)

	ctx := context.Background()
	id := uuid.New()
	productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	productRepo.EXPECT().FindProductByID(ctx, id).Return(&entity.Product{ID: id, Name: "Renamed"}, nil)

	product, err := service.UpdateProduct(ctx, id, usecase.ProductInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", product.Name)
}

func TestProductService_UploadMedia_DelegatesToStorage(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	media := mockSvc.NewMockMediaStorage(t)
	service := NewProductService(productRepo, media)

	ctx := context.Background()
	media.EXPECT().
		Upload(ctx, "sharee.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/images/abc.jpg", nil)

	url, err := service.UploadMedia(ctx, "sharee.jpg", "image/jpeg", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/abc.jpg", url)
}
