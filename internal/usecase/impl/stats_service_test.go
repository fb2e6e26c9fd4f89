package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Dashboard(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewStatsService(orderRepo, productRepo).(*statsService)

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	ctx := context.Background()

	productID := uuid.New()
	cheapID := uuid.New()
	products := []*entity.Product{
		{ID: productID, Name: "Silk Sharee", Price: 1500, CostPrice: 900, Stock: 3},
		{ID: cheapID, Name: "Panjabi", Price: 500, CostPrice: 200, Stock: 50},
	}

	orders := []*entity.Order{
		{
			Status:      entity.OrderStatusDelivered,
			TotalAmount: 3060,
			CreatedAt:   now.AddDate(0, -1, 0),
			Items:       []*entity.OrderItem{{ProductID: productID, Quantity: 2, Price: 1500}},
		},
		{
			Status:      entity.OrderStatusConfirmed,
			TotalAmount: 560,
			CreatedAt:   now,
			Items:       []*entity.OrderItem{{ProductID: cheapID, Quantity: 1, Price: 500}},
		},
		{
			Status:      entity.OrderStatusPending,
			TotalAmount: 1560,
			CreatedAt:   now,
			Items:       []*entity.OrderItem{{ProductID: productID, Quantity: 1, Price: 1500}},
		},
		{
			Status:      entity.OrderStatusCancelled,
			TotalAmount: 500,
			CreatedAt:   now,
			Items:       []*entity.OrderItem{{ProductID: cheapID, Quantity: 1, Price: 500}},
		},
	}

	orderRepo.EXPECT().ListOrders(ctx).Return(orders, nil)
	productRepo.EXPECT().ListProducts(ctx).Return(products, nil)

	stats, err := service.Dashboard(ctx)
	require.NoError(t, err)

	// Only the delivered and confirmed orders count toward sales and profit.
	assert.Equal(t, float64(3060+560), stats.TotalSales)
	assert.Equal(t, float64((1500-900)*2+(500-200)*1), stats.TotalProfit)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, map[string]int{
		"delivered": 1, "confirmed": 1, "pending": 1, "cancelled": 1,
	}, stats.StatusCounts)

	require.Len(t, stats.LowStock, 1)
	assert.Equal(t, productID, stats.LowStock[0].ID)

	require.Len(t, stats.MonthlySales, 12)
	assert.Equal(t, "2025-09", stats.MonthlySales[0].Month)
	assert.Equal(t, "2026-08", stats.MonthlySales[11].Month)
	assert.Equal(t, float64(3060), stats.MonthlySales[10].Sales)
	assert.Equal(t, float64(560), stats.MonthlySales[11].Sales)
}

func TestStatsService_Dashboard_EmptyStore(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewStatsService(orderRepo, productRepo)

	ctx := context.Background()
	orderRepo.EXPECT().ListOrders(ctx).Return([]*entity.Order{}, nil)
	productRepo.EXPECT().ListProducts(ctx).Return([]*entity.Product{}, nil)

	stats, err := service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.TotalProfit)
	assert.Empty(t, stats.LowStock)
	assert.Len(t, stats.MonthlySales, 12)
}
