// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPriority is the sentinel for products without an explicit display
// priority. Lower numbers are shown first, so 999 sorts last.
const DefaultPriority = 999

// Product represents a catalog item sold through the storefront.
type Product struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the product.
	Name        string    `json:"name"`         // Display name shown on the storefront.
	Description string    `json:"description"`  // Free-form description, may be empty.
	Price       float64   `json:"price"`        // Current sale price.
	CostPrice   float64   `json:"cost_price"`   // Purchase cost used for profit reporting; zero means unknown.
	ImageURL    string    `json:"image_url"`    // Legacy single-image field, kept for older schemas.
	Images      []string  `json:"images"`       // Ordered media URLs (images and videos).
	Stock       int       `json:"stock"`        // Available quantity; never negative after reconciliation.
	Priority    int       `json:"priority"`     // Display priority, lower shows first. Defaults to DefaultPriority.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when the product was created.
}

// MediaURLs returns the product's media list, falling back to the legacy
// single-image field when the list is empty.
func (p *Product) MediaURLs() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.ImageURL != "" {
		return []string{p.ImageURL}
	}

	return nil
}
