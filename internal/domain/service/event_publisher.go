// Package service declares domain-level service interfaces implemented by infra.
package service

import (
	"context"
	"encoding/json"
)

// ChangeEvent announces a newly inserted backend record on a logical channel.
// It is the payload carried over the realtime transport to every open
// operator view.
type ChangeEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	EventID   string          `json:"event_id"`
	Channel   string          `json:"channel"` // constants.ChannelOrders or constants.ChannelActivity
	Record    json.RawMessage `json:"record"`  // The inserted row, JSON-encoded
}

// EventPublisher defines the interface for publishing change events to the
// realtime transport. Delivery is best-effort; the transport's own retry is
// the only retry.
type EventPublisher interface {
	// PublishChangeEvent publishes an insert notification.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
