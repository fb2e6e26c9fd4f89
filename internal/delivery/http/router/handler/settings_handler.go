package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler manages store-level settings.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{
		uc: uc,
	}
}

type deliveryChargeRequest struct {
	LocationType string  `json:"location_type" validate:"required"`
	Charge       float64 `json:"charge" validate:"gte=0"`
}

// DeliveryCharges returns the effective zone fee table.
func (h *SettingsHandler) DeliveryCharges(c echo.Context) error {
	charges, err := h.uc.DeliveryCharges(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, charges, "")
}

// SetDeliveryCharge updates one zone's fee.
func (h *SettingsHandler) SetDeliveryCharge(c echo.Context) error {
	var req deliveryChargeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery charge input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	location := entity.LocationType(req.LocationType)
	if err := h.uc.SetDeliveryCharge(c.Request().Context(), location, req.Charge); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.DeliveryCharge{
		LocationType: location,
		Charge:       req.Charge,
	}, "Delivery charge updated")
}
