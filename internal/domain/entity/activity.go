package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind is the kind of visitor action an ActivityEvent records.
type ActivityKind string

const (
	ActivityPageView       ActivityKind = "page_view"
	ActivityProductView    ActivityKind = "product_view"
	ActivityProductClick   ActivityKind = "product_click"
	ActivityAddToCart      ActivityKind = "add_to_cart"
	ActivityRemoveFromCart ActivityKind = "remove_from_cart"
	ActivityOrderPlaced    ActivityKind = "order_placed"
	ActivitySearch         ActivityKind = "search"
	ActivityButtonClick    ActivityKind = "button_click"
)

// Valid reports whether the kind is one of the known activity kinds.
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityPageView, ActivityProductView, ActivityProductClick,
		ActivityAddToCart, ActivityRemoveFromCart, ActivityOrderPlaced,
		ActivitySearch, ActivityButtonClick:
		return true
	}

	return false
}

// MetadataSearchQuery is the metadata key holding the query text of a search event.
const MetadataSearchQuery = "search_query"

// ActivityEvent is an append-only record of a single visitor action.
// Events are write-once facts; the core never mutates or deletes them.
type ActivityEvent struct {
	ID          uuid.UUID      `json:"id"`
	SessionID   string         `json:"session_id"`   // Opaque client session token, stable per browsing session.
	Kind        ActivityKind   `json:"activity_type"`
	PagePath    string         `json:"page_path"`
	ProductID   *uuid.UUID     `json:"product_id"`   // Optional product reference.
	ProductName string         `json:"product_name"`
	Metadata    map[string]any `json:"metadata"`     // Kind-specific payload (search query, order reference, price).
	UserAgent   string         `json:"user_agent"`
	IPAddress   string         `json:"ip_address"`   // Best-effort client address.
	CreatedAt   time.Time      `json:"created_at"`
}

// SearchQuery returns the search-query metadata field, or "" when absent.
func (e *ActivityEvent) SearchQuery() string {
	if e.Metadata == nil {
		return ""
	}
	if q, ok := e.Metadata[MetadataSearchQuery].(string); ok {
		return q
	}

	return ""
}
