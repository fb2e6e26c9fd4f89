package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_DeliveryCharges_OrderedInsideFirst(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	service := NewSettingsService(settingsRepo)
	ctx := context.Background()

	settingsRepo.EXPECT().DeliveryCharges(ctx).Return(map[entity.LocationType]float64{
		entity.LocationInsideDhaka:  80,
		entity.LocationOutsideDhaka: 150,
	}, nil)

	charges, err := service.DeliveryCharges(ctx)
	require.NoError(t, err)
	require.Len(t, charges, 2)
	assert.Equal(t, entity.LocationInsideDhaka, charges[0].LocationType)
	assert.Equal(t, float64(80), charges[0].Charge)
	assert.Equal(t, entity.LocationOutsideDhaka, charges[1].LocationType)
	assert.Equal(t, float64(150), charges[1].Charge)
}

func TestSettingsService_SetDeliveryCharge(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	service := NewSettingsService(settingsRepo)
	ctx := context.Background()

	settingsRepo.EXPECT().UpsertDeliveryCharge(ctx, entity.LocationInsideDhaka, float64(70)).Return(nil)

	assert.NoError(t, service.SetDeliveryCharge(ctx, entity.LocationInsideDhaka, 70))
}

func TestSettingsService_SetDeliveryCharge_Invalid(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	service := NewSettingsService(settingsRepo)
	ctx := context.Background()

	assert.Error(t, service.SetDeliveryCharge(ctx, entity.LocationType("mars"), 70))
	assert.Error(t, service.SetDeliveryCharge(ctx, entity.LocationInsideDhaka, -5))
}
