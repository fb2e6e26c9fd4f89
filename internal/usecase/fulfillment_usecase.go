package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// StockAdjustment records one product's stock change made by a transition.
type StockAdjustment struct {
	ProductID uuid.UUID `json:"product_id"`
	Previous  int       `json:"previous"`
	Current   int       `json:"current"`
}

// TransitionResult reports what a status transition did.
type TransitionResult struct {
	// Status is the order's status after the transition.
	Status entity.OrderStatus `json:"status"`

	// Adjusted lists the per-product stock writes, in line item order.
	Adjusted []StockAdjustment `json:"adjusted"`

	// Skipped lists products whose stock could not be adjusted. The status
	// change stands regardless; skipped items are logged for manual review.
	Skipped []uuid.UUID `json:"skipped"`
}

// FulfillmentUsecase moves orders through their lifecycle and keeps product
// stock consistent with those moves.
type FulfillmentUsecase interface {
	// Transition sets an order's status and reconciles stock on the
	// commit edge: entering a stock-committing status decrements each line
	// item's stock once, and leaving the committing pair for cancelled
	// restores it. Repeating a transition inside the same class of
	// statuses never touches stock again.
	Transition(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*TransitionResult, error)
}
