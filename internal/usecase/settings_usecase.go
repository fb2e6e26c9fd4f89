package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase manages the operator-tunable delivery fee table.
type SettingsUsecase interface {
	// DeliveryCharges returns the fee for every zone, falling back to the
	// hardcoded defaults where no override is stored.
	DeliveryCharges(ctx context.Context) ([]*entity.DeliveryCharge, error)

	// SetDeliveryCharge stores the fee for one zone.
	SetDeliveryCharge(ctx context.Context, location entity.LocationType, charge float64) error
}
