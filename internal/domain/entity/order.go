package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// CommitsStock reports whether an order in this status has claimed stock.
// Entering a committing status from a non-committing one triggers the
// one-time stock decrement.
func (s OrderStatus) CommitsStock() bool {
	return s == OrderStatusConfirmed || s == OrderStatusDelivered
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCancelled
}

// LocationType classifies a delivery destination into one of the two fee zones.
type LocationType string

const (
	LocationInsideDhaka  LocationType = "inside_dhaka"
	LocationOutsideDhaka LocationType = "outside_dhaka"
)

// Valid reports whether the location type is a known delivery zone.
func (l LocationType) Valid() bool {
	return l == LocationInsideDhaka || l == LocationOutsideDhaka
}

// Order represents a customer order placed through the storefront checkout.
// The total amount is fixed at creation time: line items plus the zone fee.
type Order struct {
	ID           uuid.UUID    `json:"id"`            // The Global Unique Identifier (GUID) for the order.
	CustomerName string       `json:"customer_name"` // Name supplied at checkout.
	Phone        string       `json:"phone"`         // Contact phone number.
	Address      string       `json:"address"`       // Delivery address.
	LocationType LocationType `json:"location_type"` // Delivery zone used to pick the fee.
	TotalAmount  float64      `json:"total_amount"`  // Line items plus zone fee, immutable after creation.
	Status       OrderStatus  `json:"status"`        // Current lifecycle status.
	Items        []*OrderItem `json:"items"`         // Line items, created atomically with the order.
	CreatedAt    time.Time    `json:"created_at"`    // Timestamp of when the order was placed.
}

// OrderItem is a single line of an order. The unit price is a snapshot taken
// at order time and stays decoupled from later catalog price changes.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"` // Always positive.
	Price     float64   `json:"price"`    // Unit price captured at order time.
}
