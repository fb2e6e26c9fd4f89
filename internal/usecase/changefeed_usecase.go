package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderNotice is one human-readable alert derived from an order insert.
type OrderNotice struct {
	OrderID      uuid.UUID `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Message      string    `json:"message"`
	ReceivedAt   time.Time `json:"received_at"`
}

// FeedSnapshot is the current state of the operator's change feed.
type FeedSnapshot struct {
	// NewOrders counts order inserts since the last acknowledgement.
	NewOrders int `json:"new_orders"`

	// ActivitySeen counts activity inserts observed since startup.
	ActivitySeen int `json:"activity_seen"`

	// Notices holds the most recent order alerts, newest first.
	Notices []OrderNotice `json:"notices"`
}

// ChangeFeedUsecase consumes realtime change events and maintains the
// operator-facing feed state.
type ChangeFeedUsecase interface {
	// Run consumes change events until the context is cancelled.
	Run(ctx context.Context) error

	// Snapshot returns the current feed state.
	Snapshot() FeedSnapshot

	// AcknowledgeOrders resets the new-order counter.
	AcknowledgeOrders()
}
