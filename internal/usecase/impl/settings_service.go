package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo repository.SettingsRepository) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// DeliveryCharges returns the fee for every zone, inside-Dhaka first.
func (s *settingsService) DeliveryCharges(ctx context.Context) ([]*entity.DeliveryCharge, error) {
	charges, err := s.settingsRepo.DeliveryCharges(ctx)
	if err != nil {
		return nil, err
	}

	return []*entity.DeliveryCharge{
		{LocationType: entity.LocationInsideDhaka, Charge: charges[entity.LocationInsideDhaka]},
		{LocationType: entity.LocationOutsideDhaka, Charge: charges[entity.LocationOutsideDhaka]},
	}, nil
}

// SetDeliveryCharge stores the fee for one zone.
func (s *settingsService) SetDeliveryCharge(ctx context.Context, location entity.LocationType, charge float64) error {
	if !location.Valid() {
		return domainerrors.ErrInvalidLocationType.WithDetails(string(location))
	}
	if charge < 0 {
		return domainerrors.ErrSettingsUpdateFailed.WithDetails("charge must not be negative")
	}

	if err := s.settingsRepo.UpsertDeliveryCharge(ctx, location, charge); err != nil {
		return domainerrors.ErrSettingsUpdateFailed.WithDetails(err.Error())
	}

	return nil
}
