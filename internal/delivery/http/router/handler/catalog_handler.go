package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public storefront product view.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		uc: uc,
	}
}

type catalogPageResponse struct {
	Items      []*entity.Product `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	TotalItems int               `json:"total_items"`
}

// Browse handles the storefront catalog page request. Sort, search and page
// arrive as query parameters; an unknown sort key is rejected while an
// out-of-range page falls back to the first page.
func (h *CatalogHandler) Browse(c echo.Context) error {
	query := usecase.CatalogQuery{
		Sort:   usecase.CatalogSort(c.QueryParam("sort")),
		Search: c.QueryParam("search"),
		Page:   parsePage(c.QueryParam("page")),
	}

	view, err := h.uc.View(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalogPageResponse{
		Items:      view.Items,
		Page:       view.Page,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
	}, "")
}

// parsePage reads a 1-based page number, treating garbage as page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}
