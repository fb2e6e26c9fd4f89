package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	settingsRepo *mockRepo.MockSettingsRepository
	txProducts   *mockRepo.MockProductRepository
	txOrders     *mockRepo.MockOrderRepository
	publisher    *mockSvc.MockEventPublisher
	service      usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		txProducts:   mockRepo.NewMockProductRepository(t),
		txOrders:     mockRepo.NewMockOrderRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewOrderService(f.txManager, f.orderRepo, f.settingsRepo, f.publisher, newTestLogger())

	return f
}

// passThroughTx makes Execute run the callback against a factory handing out
// the fixture's transactional mocks.
func (f *orderFixture) passThroughTx(t *testing.T, ctx context.Context) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(f.txProducts).Maybe()
	factory.EXPECT().NewOrderRepository().Return(f.txOrders).Maybe()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_CreateOrder_SnapshotsPricesAndAddsZoneFee(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	productID := uuid.New()
	f.settingsRepo.EXPECT().DeliveryCharges(ctx).Return(entity.DefaultDeliveryCharges(), nil)
	f.passThroughTx(t, ctx)
	f.txProducts.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{
		ID:    productID,
		Name:  "Silk Sharee",
		Price: 1500,
	}, nil)
	f.txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).Return(nil)

	order, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName: "Karim",
		Phone:        "01700000000",
		Address:      "Mirpur, Dhaka",
		LocationType: entity.LocationInsideDhaka,
		Items:        []usecase.OrderLineInput{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, float64(1500), order.Items[0].Price)
	assert.Equal(t, float64(1500*2+entity.DefaultChargeInsideDhaka), order.TotalAmount)
}

func TestOrderService_CreateOrder_OutsideDhakaFee(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	productID := uuid.New()
	f.settingsRepo.EXPECT().DeliveryCharges(ctx).Return(entity.DefaultDeliveryCharges(), nil)
	f.passThroughTx(t, ctx)
	f.txProducts.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID, Price: 500}, nil)
	f.txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

	order, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationOutsideDhaka,
		Items:        []usecase.OrderLineInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(500+entity.DefaultChargeOutsideDhaka), order.TotalAmount)
}

func TestOrderService_CreateOrder_EmptyOrderRejected(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationInsideDhaka,
	})
	assert.Error(t, err)
}

func TestOrderService_CreateOrder_InvalidZoneRejected(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationType("moon"),
		Items:        []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestOrderService_CreateOrder_NonPositiveQuantityRejected(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationInsideDhaka,
		Items:        []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.Error(t, err)
}

func TestOrderService_CreateOrder_MissingProductRollsBack(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	productID := uuid.New()
	f.settingsRepo.EXPECT().DeliveryCharges(ctx).Return(entity.DefaultDeliveryCharges(), nil)
	f.passThroughTx(t, ctx)
	f.txProducts.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	// No CreateOrder or publish expectations: the transaction fails before
	// the order is written and nothing is announced.
	_, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationInsideDhaka,
		Items:        []usecase.OrderLineInput{{ProductID: productID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	productID := uuid.New()
	f.settingsRepo.EXPECT().DeliveryCharges(ctx).Return(entity.DefaultDeliveryCharges(), nil)
	f.passThroughTx(t, ctx)
	f.txProducts.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID, Price: 100}, nil)
	f.txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(assert.AnError)

	_, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName: "Karim",
		LocationType: entity.LocationInsideDhaka,
		Items:        []usecase.OrderLineInput{{ProductID: productID, Quantity: 1}},
	})
	assert.NoError(t, err)
}

func TestOrderService_ListOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().ListOrders(ctx).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := f.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
