package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// maxNotices bounds the retained order alerts.
const maxNotices = 20

type changeFeedService struct {
	stream service.ChangeStream
	logger *slog.Logger

	mu           sync.Mutex
	newOrders    int
	activitySeen int
	notices      []usecase.OrderNotice
}

// NewChangeFeedService creates a new change feed service instance
func NewChangeFeedService(stream service.ChangeStream, logger *slog.Logger) usecase.ChangeFeedUsecase {
	return &changeFeedService{
		stream: stream,
		logger: logger,
	}
}

// Run consumes change events from both channels until the context is
// cancelled or the stream shuts down.
func (s *changeFeedService) Run(ctx context.Context) error {
	orders, cancelOrders := s.stream.Stream(constants.ChannelOrders)
	defer cancelOrders()

	activity, cancelActivity := s.stream.Stream(constants.ChannelActivity)
	defer cancelActivity()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-orders:
			if !ok {
				return nil
			}
			s.handleOrderEvent(event)
		case event, ok := <-activity:
			if !ok {
				return nil
			}
			s.handleActivityEvent(event)
		}
	}
}

// orderRecord is the subset of the announced order row the feed reads.
type orderRecord struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
}

func (s *changeFeedService) handleOrderEvent(event *service.ChangeEvent) {
	var record orderRecord
	if err := json.Unmarshal(event.Record, &record); err != nil {
		s.logger.Warn("malformed order change event",
			slog.String("event_id", event.EventID),
			slog.String("error", err.Error()),
		)

		return
	}

	notice := usecase.OrderNotice{
		OrderID:      record.ID,
		CustomerName: record.CustomerName,
		Message:      fmt.Sprintf("New order from %s", record.CustomerName),
		ReceivedAt:   time.Now(),
	}

	s.mu.Lock()
	s.newOrders++
	s.notices = append([]usecase.OrderNotice{notice}, s.notices...)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[:maxNotices]
	}
	s.mu.Unlock()

	s.logger.Info("order change received",
		slog.String("orderId", record.ID.String()),
		slog.String("customer", record.CustomerName),
	)
}

func (s *changeFeedService) handleActivityEvent(event *service.ChangeEvent) {
	s.mu.Lock()
	s.activitySeen++
	s.mu.Unlock()

	s.logger.Debug("activity change received",
		slog.String("event_id", event.EventID),
	)
}

// Snapshot returns the current feed state.
func (s *changeFeedService) Snapshot() usecase.FeedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	notices := make([]usecase.OrderNotice, len(s.notices))
	copy(notices, s.notices)

	return usecase.FeedSnapshot{
		NewOrders:    s.newOrders,
		ActivitySeen: s.activitySeen,
		Notices:      notices,
	}
}

// AcknowledgeOrders resets the new-order counter.
func (s *changeFeedService) AcknowledgeOrders() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.newOrders = 0
}
