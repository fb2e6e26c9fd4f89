// Package constants holds shared literal values used across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Change-notification channels. Each maps to a backend collection whose
// inserts are announced over the realtime transport.
const (
	ChannelOrders   = "orders"
	ChannelActivity = "user_activity"
)

// SessionHeader carries the client session token on tracking requests and
// echoes the minted token back when the client did not supply one.
const SessionHeader = "X-Session-Id"
