package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the operator dashboard aggregates and the realtime
// change feed state.
type DashboardHandler struct {
	stats usecase.StatsUsecase
	feed  usecase.ChangeFeedUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(stats usecase.StatsUsecase, feed usecase.ChangeFeedUsecase) *DashboardHandler {
	return &DashboardHandler{
		stats: stats,
		feed:  feed,
	}
}

// Stats returns the current dashboard numbers.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Feed returns the current change-feed snapshot.
func (h *DashboardHandler) Feed(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Snapshot(), "")
}

// AcknowledgeOrders resets the new-order counter after the operator has seen
// the feed.
func (h *DashboardHandler) AcknowledgeOrders(c echo.Context) error {
	h.feed.AcknowledgeOrders()

	return response.Success(c, http.StatusOK, h.feed.Snapshot(), "New orders acknowledged")
}
