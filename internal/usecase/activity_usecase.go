package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// ActivityWindow bounds how many recent records a query examines.
	// Search and counters operate within this window only.
	ActivityWindow = 1000

	// ActivityPageSize is the number of records per activity page.
	ActivityPageSize = 10
)

// ActivityQuery describes one operator activity-view request.
type ActivityQuery struct {
	// Kind narrows to one activity kind; zero value means all kinds.
	Kind entity.ActivityKind

	// Search is a case-insensitive match over product name, page path,
	// session ID and the recorded search query.
	Search string

	// Page is 1-based. Pages past the end return an empty item list.
	Page int
}

// ActivityCounters summarizes the filtered window.
type ActivityCounters struct {
	PageViews        int `json:"page_views"`
	ProductClicks    int `json:"product_clicks"`
	CartAdds         int `json:"cart_adds"`
	DistinctSessions int `json:"distinct_sessions"`
}

// ActivityView is one page of the operator activity feed.
type ActivityView struct {
	Items      []*entity.ActivityEvent
	TotalCount int
	Counters   ActivityCounters
	Page       int
}

// RecordActivityInput carries one tracked visitor action.
type RecordActivityInput struct {
	SessionID   string
	Kind        entity.ActivityKind
	PagePath    string
	ProductID   *uuid.UUID
	ProductName string
	Metadata    map[string]any
	UserAgent   string
	IPAddress   string
}

// RecordActivityResult reports the stored event and the session token in
// effect, minted when the client did not supply one.
type RecordActivityResult struct {
	Event     *entity.ActivityEvent
	SessionID string
}

// ActivityUsecase records visitor actions and serves the operator feed.
type ActivityUsecase interface {
	// Record appends one activity event, announces it on the realtime
	// activity channel, and forwards trackable kinds to the conversion
	// sink. Announcement and forwarding are best-effort.
	Record(ctx context.Context, input RecordActivityInput) (*RecordActivityResult, error)

	// Query returns one page of the recent-activity window with counters
	// computed over the whole filtered window, not just the page.
	Query(ctx context.Context, query ActivityQuery) (*ActivityView, error)
}
