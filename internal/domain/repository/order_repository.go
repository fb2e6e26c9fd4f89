package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists an order together with its line items. Callers
	// needing atomicity run it through the TransactionManager.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders newest-first, line items included.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrderItems retrieves the line items of a single order.
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// UpdateOrderStatus writes a new lifecycle status for an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
