// Package session mints opaque tokens identifying anonymous browsing sessions.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"storefront/internal/domain/service"
)

const randomSuffixBytes = 5

// provider implements service.SessionIdentity.
type provider struct{}

// New returns the session token minter.
func New() service.SessionIdentity {
	return &provider{}
}

// Mint produces a new session token: a millisecond timestamp joined with a
// short random suffix. Tokens are opaque identifiers, not credentials.
func (*provider) Mint() string {
	suffix := make([]byte, randomSuffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		// Timestamp-only token still identifies a session uniquely enough
		// for activity grouping when the random source is unavailable.
		return fmt.Sprintf("%d", time.Now().UnixMilli())
	}

	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
