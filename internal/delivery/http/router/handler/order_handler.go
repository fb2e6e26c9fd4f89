package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler handles checkout and the operator order views.
type OrderHandler struct {
	orders      usecase.OrderUsecase
	fulfillment usecase.FulfillmentUsecase
	activity    usecase.ActivityUsecase
	logger      *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	orders usecase.OrderUsecase,
	fulfillment usecase.FulfillmentUsecase,
	activity usecase.ActivityUsecase,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:      orders,
		fulfillment: fulfillment,
		activity:    activity,
		logger:      logger,
	}
}

type orderLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Phone        string             `json:"phone" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	LocationType string             `json:"location_type" validate:"required"`
	Items        []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles the checkout request. The buyer's session token, when
// present, links the resulting order_placed activity to the browsing session.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.CreateOrderInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		LocationType: entity.LocationType(req.LocationType),
		SessionID:    c.Request().Header.Get(constants.SessionHeader),
	}
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id: "+line.ProductID)
		}
		input.Items = append(input.Items, usecase.OrderLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.recordOrderPlaced(c, order, input.SessionID)

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// recordOrderPlaced appends the order_placed activity. Tracking never fails
// a checkout that already persisted.
func (h *OrderHandler) recordOrderPlaced(c echo.Context, order *entity.Order, sessionID string) {
	_, err := h.activity.Record(c.Request().Context(), usecase.RecordActivityInput{
		SessionID: sessionID,
		Kind:      entity.ActivityOrderPlaced,
		PagePath:  "/checkout",
		Metadata: map[string]any{
			"order_id":     order.ID.String(),
			"total_amount": order.TotalAmount,
		},
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	})
	if err != nil {
		h.logger.Warn("Failed to record order_placed activity",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// Get retrieves one order with its line items.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// List returns all orders newest-first for the operator view.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Transition sets an order's lifecycle status and reconciles stock on the
// commit edge.
func (h *OrderHandler) Transition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.fulfillment.Transition(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Order status updated")
}
