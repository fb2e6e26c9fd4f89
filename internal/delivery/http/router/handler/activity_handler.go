package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler records visitor actions and serves the operator feed.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		uc: uc,
	}
}

type trackRequest struct {
	ActivityType string         `json:"activity_type" validate:"required"`
	PagePath     string         `json:"page_path"`
	ProductID    string         `json:"product_id" validate:"omitempty,uuid"`
	ProductName  string         `json:"product_name"`
	Metadata     map[string]any `json:"metadata"`
}

type activityPageResponse struct {
	Items      []*entity.ActivityEvent  `json:"items"`
	TotalCount int                      `json:"total_count"`
	Counters   usecase.ActivityCounters `json:"counters"`
	Page       int                      `json:"page"`
}

// Track appends one visitor activity event. The session token travels in the
// X-Session-Id header both ways; a minted token is echoed back so the client
// can adopt it.
func (h *ActivityHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.RecordActivityInput{
		SessionID:   c.Request().Header.Get(constants.SessionHeader),
		Kind:        entity.ActivityKind(req.ActivityType),
		PagePath:    req.PagePath,
		ProductName: req.ProductName,
		Metadata:    req.Metadata,
		UserAgent:   c.Request().UserAgent(),
		IPAddress:   c.RealIP(),
	}
	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
		}
		input.ProductID = &productID
	}

	result, err := h.uc.Record(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(constants.SessionHeader, result.SessionID)

	return response.Success(c, http.StatusCreated, result.Event, "Activity recorded")
}

// Query returns one page of the recent-activity window for the operator.
func (h *ActivityHandler) Query(c echo.Context) error {
	query := usecase.ActivityQuery{
		Kind:   entity.ActivityKind(c.QueryParam("type")),
		Search: c.QueryParam("search"),
		Page:   parsePage(c.QueryParam("page")),
	}

	view, err := h.uc.Query(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityPageResponse{
		Items:      view.Items,
		TotalCount: view.TotalCount,
		Counters:   view.Counters,
		Page:       view.Page,
	}, "")
}
