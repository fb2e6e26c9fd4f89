package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ActivityRepository defines the interface for the append-only activity log.
type ActivityRepository interface {
	// CreateActivity appends a visitor activity record.
	CreateActivity(ctx context.Context, event *entity.ActivityEvent) error

	// ListRecentActivities retrieves up to limit records newest-first.
	// A zero-value kind means all kinds. The limit is the bounded-memory
	// window text search later narrows within; it never pages further back.
	ListRecentActivities(ctx context.Context, kind entity.ActivityKind, limit int) ([]*entity.ActivityEvent, error)
}
