package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one requested line of a checkout.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries everything the checkout collects.
type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	LocationType entity.LocationType
	Items        []OrderLineInput

	// SessionID ties the resulting order_placed activity to the buyer's
	// browsing session; empty means unknown.
	SessionID string
}

// OrderUsecase handles checkout and order retrieval.
type OrderUsecase interface {
	// CreateOrder places an order: it snapshots current product prices,
	// applies the delivery zone fee, and persists the order with its line
	// items atomically. Stock is not touched; that happens when the order
	// is later confirmed.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves one order with its line items.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders newest-first for the operator view.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
