// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP storefront, worker push
// endpoint). Serve blocks until the server stops; shutdown is driven by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
