package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	publisher    service.EventPublisher
	sink         service.ConversionSink
	sessions     service.SessionIdentity
	logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	activityRepo repository.ActivityRepository,
	publisher service.EventPublisher,
	sink service.ConversionSink,
	sessions service.SessionIdentity,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: activityRepo,
		publisher:    publisher,
		sink:         sink,
		sessions:     sessions,
		logger:       logger,
	}
}

// conversionEvents maps activity kinds to conversion sink event names.
// Kinds outside this map are stored but not forwarded.
var conversionEvents = map[entity.ActivityKind]string{
	entity.ActivityPageView:    service.ConversionPageView,
	entity.ActivitySearch:      service.ConversionSearch,
	entity.ActivityProductView: service.ConversionViewContent,
	entity.ActivityAddToCart:   service.ConversionAddToCart,
}

// Record appends one activity event. The database write is the only step
// that can fail the call; the realtime announcement and the conversion
// forward are best-effort and merely logged on error.
func (s *activityService) Record(ctx context.Context, input usecase.RecordActivityInput) (*usecase.RecordActivityResult, error) {
	if !input.Kind.Valid() {
		return nil, domainerrors.ErrInvalidActivityKind.WithDetails(string(input.Kind))
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = s.sessions.Mint()
	}

	event := &entity.ActivityEvent{
		SessionID:   sessionID,
		Kind:        input.Kind,
		PagePath:    input.PagePath,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Metadata:    input.Metadata,
		UserAgent:   input.UserAgent,
		IPAddress:   input.IPAddress,
	}

	if err := s.activityRepo.CreateActivity(ctx, event); err != nil {
		return nil, err
	}

	s.announceActivity(ctx, event)
	s.forwardConversion(ctx, event)

	return &usecase.RecordActivityResult{
		Event:     event,
		SessionID: sessionID,
	}, nil
}

func (s *activityService) announceActivity(ctx context.Context, event *entity.ActivityEvent) {
	record, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("failed to encode activity change event",
			slog.String("activityId", event.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	changeEvent := &service.ChangeEvent{
		EventID: uuid.NewString(),
		Channel: constants.ChannelActivity,
		Record:  record,
	}
	if err := s.publisher.PublishChangeEvent(ctx, changeEvent); err != nil {
		s.logger.Warn("failed to publish activity change event",
			slog.String("activityId", event.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *activityService) forwardConversion(ctx context.Context, event *entity.ActivityEvent) {
	name, ok := conversionEvents[event.Kind]
	if !ok {
		return
	}

	params := map[string]any{}
	if event.ProductName != "" {
		params["content_name"] = event.ProductName
	}
	if query := event.SearchQuery(); query != "" {
		params["search_string"] = query
	}

	if err := s.sink.Track(ctx, name, params); err != nil {
		s.logger.Warn("conversion forward failed",
			slog.String("event", name),
			slog.String("error", err.Error()),
		)
	}
}

// Query returns one page of the recent-activity window. The window is the
// newest usecase.ActivityWindow records of the requested kind; search and
// the counters both operate on that window, never the full table.
func (s *activityService) Query(ctx context.Context, query usecase.ActivityQuery) (*usecase.ActivityView, error) {
	if query.Kind != "" && !query.Kind.Valid() {
		return nil, domainerrors.ErrInvalidActivityKind.WithDetails(string(query.Kind))
	}

	window, err := s.activityRepo.ListRecentActivities(ctx, query.Kind, usecase.ActivityWindow)
	if err != nil {
		return nil, err
	}

	filtered := filterActivities(window, query.Search)

	page := query.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * usecase.ActivityPageSize
	end := start + usecase.ActivityPageSize
	items := []*entity.ActivityEvent{}
	if start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		items = filtered[start:end]
	}

	return &usecase.ActivityView{
		Items:      items,
		TotalCount: len(filtered),
		Counters:   countActivities(filtered),
		Page:       page,
	}, nil
}

// filterActivities narrows the window to events matching the search text in
// their product name, page path, session ID or recorded search query.
func filterActivities(events []*entity.ActivityEvent, search string) []*entity.ActivityEvent {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return events
	}

	filtered := make([]*entity.ActivityEvent, 0, len(events))
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.ProductName), needle) ||
			strings.Contains(strings.ToLower(event.PagePath), needle) ||
			strings.Contains(strings.ToLower(event.SessionID), needle) ||
			strings.Contains(strings.ToLower(event.SearchQuery()), needle) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func countActivities(events []*entity.ActivityEvent) usecase.ActivityCounters {
	counters := usecase.ActivityCounters{}
	sessions := make(map[string]struct{})
	for _, event := range events {
		switch event.Kind {
		case entity.ActivityPageView:
			counters.PageViews++
		case entity.ActivityProductClick:
			counters.ProductClicks++
		case entity.ActivityAddToCart:
			counters.CartAdds++
		}
		if event.SessionID != "" {
			sessions[event.SessionID] = struct{}{}
		}
	}
	counters.DistinctSessions = len(sessions)

	return counters
}
