package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db   *gorm.DB
	caps *StoreCapabilities
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB, caps *StoreCapabilities) repository.SettingsRepository {
	return &settingsRepository{
		db:   db,
		caps: caps,
	}
}

// DeliveryCharges returns the zone fee table. Schemas without the
// delivery_charges table get the hardcoded defaults, never an error.
// Zones missing from the table also fall back to their default fee.
func (repo *settingsRepository) DeliveryCharges(ctx context.Context) (map[entity.LocationType]float64, error) {
	charges := entity.DefaultDeliveryCharges()
	if !repo.caps.DeliveryCharges {
		return charges, nil
	}

	var chargeModels []*model.DeliveryChargeModel
	if err := repo.db.WithContext(ctx).Find(&chargeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load delivery charges")
	}

	for _, chargeM := range chargeModels {
		location := entity.LocationType(chargeM.LocationType)
		if location.Valid() {
			charges[location] = chargeM.Charge
		}
	}

	return charges, nil
}

// UpsertDeliveryCharge creates or updates the fee for one zone.
func (repo *settingsRepository) UpsertDeliveryCharge(ctx context.Context, location entity.LocationType, charge float64) error {
	if !repo.caps.DeliveryCharges {
		return repository.ErrSettingsUnavailable
	}

	chargeM := &model.DeliveryChargeModel{
		LocationType: string(location),
		Charge:       charge,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"charge", "updated_at"}),
		}).
		Create(chargeM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert delivery charge")
	}

	return nil
}
