package service

import "context"

// Conversion event names understood by the third-party tracking sink.
const (
	ConversionPageView    = "PageView"
	ConversionSearch      = "Search"
	ConversionViewContent = "ViewContent"
	ConversionAddToCart   = "AddToCart"
)

// ConversionSink forwards storefront events to a third-party conversion
// tracker. Calls are fire-and-forget: callers log failures at debug level and
// never let them affect the local operation.
type ConversionSink interface {
	// Track forwards a single event with its parameters.
	Track(ctx context.Context, event string, params map[string]any) error
}
