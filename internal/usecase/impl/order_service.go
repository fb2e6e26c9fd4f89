package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:    txManager,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// CreateOrder places an order. Product prices are snapshotted inside the
// same transaction that persists the order and its line items, so a
// concurrent price edit cannot split one checkout across two price lists.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	if !input.LocationType.Valid() {
		return nil, domainerrors.ErrInvalidLocationType.WithDetails(string(input.LocationType))
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrOrderCreationFailed.WithDetails("line quantity must be positive")
		}
	}

	charges, err := s.settingsRepo.DeliveryCharges(ctx)
	if err != nil {
		return nil, err
	}
	deliveryCharge := charges[input.LocationType]

	order := &entity.Order{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Address:      input.Address,
		LocationType: input.LocationType,
		Status:       entity.OrderStatusPending,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()

		total := deliveryCharge
		items := make([]*entity.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := productRepo.FindProductByID(ctx, line.ProductID)
			if err != nil {
				return err
			}

			items = append(items, &entity.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order.Items = items
		order.TotalAmount = total

		return factory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.announceOrder(ctx, order)

	return order, nil
}

// announceOrder publishes the insert on the orders channel. Publishing is
// best-effort: the order is already committed, so a transport failure is
// logged and swallowed.
func (s *orderService) announceOrder(ctx context.Context, order *entity.Order) {
	record, err := json.Marshal(order)
	if err != nil {
		s.logger.Warn("failed to encode order change event",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	event := &service.ChangeEvent{
		EventID: uuid.NewString(),
		Channel: constants.ChannelOrders,
		Record:  record,
	}
	if err := s.publisher.PublishChangeEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order change event",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// GetOrder retrieves one order with its line items.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, id)
}

// ListOrders retrieves all orders newest-first for the operator view.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.orderRepo.ListOrders(ctx)
}
