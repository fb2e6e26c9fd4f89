package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingsUnavailable is returned when the settings table cannot be
// written (for example, it has not been migrated yet). Reads never fail this
// way: they fall back to the hardcoded defaults instead.
var ErrSettingsUnavailable = errors.New("delivery charge settings unavailable")

// SettingsRepository defines the interface for operator-tunable settings.
type SettingsRepository interface {
	// DeliveryCharges returns the zone fee table. When the backing table is
	// absent the hardcoded defaults are returned, never an error.
	DeliveryCharges(ctx context.Context) (map[entity.LocationType]float64, error)

	// UpsertDeliveryCharge creates or updates the fee for one zone.
	UpsertDeliveryCharge(ctx context.Context, location entity.LocationType, charge float64) error
}
