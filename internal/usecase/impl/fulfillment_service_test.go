package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderWithItems(status entity.OrderStatus, items ...*entity.OrderItem) *entity.Order {
	return &entity.Order{
		ID:           uuid.New(),
		CustomerName: "Rahim Uddin",
		Status:       status,
		Items:        items,
	}
}

func TestFulfillmentService_Transition_ConfirmDecrementsStock(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	productID := uuid.New()
	order := orderWithItems(entity.OrderStatusPending, &entity.OrderItem{ProductID: productID, Quantity: 2})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)
	mockProductRepo.EXPECT().GetStock(ctx, productID).Return(5, nil)
	mockProductRepo.EXPECT().SetStock(ctx, productID, 3).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, result.Status)
	require.Len(t, result.Adjusted, 1)
	assert.Equal(t, 5, result.Adjusted[0].Previous)
	assert.Equal(t, 3, result.Adjusted[0].Current)
	assert.Empty(t, result.Skipped)
}

func TestFulfillmentService_Transition_ConfirmedToDeliveredKeepsStock(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	order := orderWithItems(entity.OrderStatusConfirmed, &entity.OrderItem{ProductID: uuid.New(), Quantity: 2})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered).Return(nil)

	// No stock expectations: moving within the committing pair must not
	// touch inventory a second time.
	result, err := service.Transition(ctx, order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Empty(t, result.Adjusted)
	assert.Empty(t, result.Skipped)
}

func TestFulfillmentService_Transition_RepeatedConfirmIsIdempotent(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	order := orderWithItems(entity.OrderStatusConfirmed, &entity.OrderItem{ProductID: uuid.New(), Quantity: 1})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, result.Adjusted)
}

func TestFulfillmentService_Transition_StockFloorsAtZero(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	productID := uuid.New()
	order := orderWithItems(entity.OrderStatusPending, &entity.OrderItem{ProductID: productID, Quantity: 5})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)
	mockProductRepo.EXPECT().GetStock(ctx, productID).Return(3, nil)
	mockProductRepo.EXPECT().SetStock(ctx, productID, 0).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, result.Adjusted, 1)
	assert.Equal(t, 0, result.Adjusted[0].Current)
}

func TestFulfillmentService_Transition_FailedItemIsSkippedOthersProceed(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	productA := uuid.New()
	productB := uuid.New()
	order := orderWithItems(entity.OrderStatusPending,
		&entity.OrderItem{ProductID: productA, Quantity: 1},
		&entity.OrderItem{ProductID: productB, Quantity: 2},
	)

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)
	mockProductRepo.EXPECT().GetStock(ctx, productA).Return(0, errors.New("connection reset"))
	mockProductRepo.EXPECT().GetStock(ctx, productB).Return(4, nil)
	mockProductRepo.EXPECT().SetStock(ctx, productB, 2).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, result.Status)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, productA, result.Skipped[0])
	require.Len(t, result.Adjusted, 1)
	assert.Equal(t, productB, result.Adjusted[0].ProductID)
}

func TestFulfillmentService_Transition_CancelRestoresCommittedStock(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	productID := uuid.New()
	order := orderWithItems(entity.OrderStatusConfirmed, &entity.OrderItem{ProductID: productID, Quantity: 2})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	mockProductRepo.EXPECT().GetStock(ctx, productID).Return(3, nil)
	mockProductRepo.EXPECT().SetStock(ctx, productID, 5).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	require.Len(t, result.Adjusted, 1)
	assert.Equal(t, 5, result.Adjusted[0].Current)
}

func TestFulfillmentService_Transition_CancelFromPendingKeepsStock(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	order := orderWithItems(entity.OrderStatusPending, &entity.OrderItem{ProductID: uuid.New(), Quantity: 1})

	mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)

	result, err := service.Transition(ctx, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Empty(t, result.Adjusted)
}

func TestFulfillmentService_Transition_UnknownStatusRejected(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	_, err := service.Transition(context.Background(), uuid.New(), entity.OrderStatus("shipped"))
	assert.Error(t, err)
}

func TestFulfillmentService_Transition_MissingOrder(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewFulfillmentService(mockOrderRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.Transition(ctx, orderID, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
