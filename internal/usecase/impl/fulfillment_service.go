// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type fulfillmentService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewFulfillmentService creates a new fulfillment service instance
func NewFulfillmentService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Transition sets an order's status and reconciles stock on the commit edge.
//
// The status write is authoritative and happens first. Stock is adjusted
// only when the transition crosses the committing boundary: entering
// confirmed or delivered from outside that pair decrements, and leaving the
// pair for cancelled restores. Moves within the pair, or between the
// non-committing statuses, never touch stock, so repeating a transition is
// idempotent with respect to inventory.
func (s *fulfillmentService) Transition(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*usecase.TransitionResult, error) {
	if !next.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(next))
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	previous := order.Status

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	result := &usecase.TransitionResult{Status: next}

	switch {
	case next.CommitsStock() && !previous.CommitsStock():
		s.adjustStock(ctx, order, -1, result)
	case previous.CommitsStock() && next == entity.OrderStatusCancelled:
		s.adjustStock(ctx, order, +1, result)
	}

	if len(result.Adjusted) > 0 || len(result.Skipped) > 0 {
		s.logger.Info("order stock reconciled",
			slog.String("orderId", orderID.String()),
			slog.String("from", string(previous)),
			slog.String("to", string(next)),
			slog.Int("adjusted", len(result.Adjusted)),
			slog.Int("skipped", len(result.Skipped)),
		)
	}

	return result, nil
}

// adjustStock applies one signed stock adjustment per line item. A failed
// item is logged and skipped; the remaining items are still processed and
// the status change stands either way.
func (s *fulfillmentService) adjustStock(ctx context.Context, order *entity.Order, direction int, result *usecase.TransitionResult) {
	for _, item := range order.Items {
		current, err := s.productRepo.GetStock(ctx, item.ProductID)
		if err != nil {
			s.logger.Warn("skipping stock adjustment, read failed",
				slog.String("orderId", order.ID.String()),
				slog.String("productId", item.ProductID.String()),
				slog.String("error", err.Error()),
			)
			result.Skipped = append(result.Skipped, item.ProductID)

			continue
		}

		next := current + direction*item.Quantity
		if next < 0 {
			next = 0
		}

		if err := s.productRepo.SetStock(ctx, item.ProductID, next); err != nil {
			s.logger.Warn("skipping stock adjustment, write failed",
				slog.String("orderId", order.ID.String()),
				slog.String("productId", item.ProductID.String()),
				slog.String("error", err.Error()),
			)
			result.Skipped = append(result.Skipped, item.ProductID)

			continue
		}

		result.Adjusted = append(result.Adjusted, usecase.StockAdjustment{
			ProductID: item.ProductID,
			Previous:  current,
			Current:   next,
		})
	}
}
