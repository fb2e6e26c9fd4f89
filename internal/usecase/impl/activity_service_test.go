package impl

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newActivityFixture(t *testing.T) (*mockRepo.MockActivityRepository, *mockSvc.MockEventPublisher, *mockSvc.MockConversionSink, *mockSvc.MockSessionIdentity, usecase.ActivityUsecase) {
	t.Helper()

	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := mockSvc.NewMockConversionSink(t)
	sessions := mockSvc.NewMockSessionIdentity(t)
	service := NewActivityService(activityRepo, publisher, sink, sessions, newTestLogger())

	return activityRepo, publisher, sink, sessions, service
}

func TestActivityService_Record_MintsSessionWhenAbsent(t *testing.T) {
	activityRepo, publisher, sink, sessions, service := newActivityFixture(t)
	ctx := context.Background()

	sessions.EXPECT().Mint().Return("1724800000000-ab12cd34ef")
	activityRepo.EXPECT().CreateActivity(ctx, mock.AnythingOfType("*entity.ActivityEvent")).Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).Return(nil)
	sink.EXPECT().Track(ctx, "PageView", mock.Anything).Return(nil)

	result, err := service.Record(ctx, usecase.RecordActivityInput{
		Kind:     entity.ActivityPageView,
		PagePath: "/",
	})
	require.NoError(t, err)
	assert.Equal(t, "1724800000000-ab12cd34ef", result.SessionID)
	assert.Equal(t, "1724800000000-ab12cd34ef", result.Event.SessionID)
}

func TestActivityService_Record_KeepsClientSession(t *testing.T) {
	activityRepo, publisher, sink, _, service := newActivityFixture(t)
	ctx := context.Background()

	activityRepo.EXPECT().CreateActivity(ctx, mock.AnythingOfType("*entity.ActivityEvent")).Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).Return(nil)
	sink.EXPECT().Track(ctx, "Search", mock.Anything).Return(nil)

	result, err := service.Record(ctx, usecase.RecordActivityInput{
		SessionID: "existing-session",
		Kind:      entity.ActivitySearch,
		Metadata:  map[string]any{entity.MetadataSearchQuery: "sharee"},
	})
	require.NoError(t, err)
	assert.Equal(t, "existing-session", result.SessionID)
}

func TestActivityService_Record_PublishFailureIsSwallowed(t *testing.T) {
	activityRepo, publisher, sink, _, service := newActivityFixture(t)
	ctx := context.Background()

	activityRepo.EXPECT().CreateActivity(ctx, mock.AnythingOfType("*entity.ActivityEvent")).Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(assert.AnError)
	sink.EXPECT().Track(ctx, "AddToCart", mock.Anything).Return(assert.AnError)

	_, err := service.Record(ctx, usecase.RecordActivityInput{
		SessionID:   "s-1",
		Kind:        entity.ActivityAddToCart,
		ProductName: "Cotton Sharee",
	})
	assert.NoError(t, err)
}

func TestActivityService_Record_UntrackedKindSkipsSink(t *testing.T) {
	activityRepo, publisher, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	activityRepo.EXPECT().CreateActivity(ctx, mock.AnythingOfType("*entity.ActivityEvent")).Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

	// No sink expectation: button clicks are stored but never forwarded.
	_, err := service.Record(ctx, usecase.RecordActivityInput{
		SessionID: "s-2",
		Kind:      entity.ActivityButtonClick,
	})
	assert.NoError(t, err)
}

func TestActivityService_Record_RejectsUnknownKind(t *testing.T) {
	_, _, _, _, service := newActivityFixture(t)

	_, err := service.Record(context.Background(), usecase.RecordActivityInput{
		SessionID: "s-3",
		Kind:      entity.ActivityKind("hover"),
	})
	assert.Error(t, err)
}

func makeActivityWindow(n int) []*entity.ActivityEvent {
	events := make([]*entity.ActivityEvent, 0, n)
	for i := 0; i < n; i++ {
		kind := entity.ActivityPageView
		switch i % 3 {
		case 1:
			kind = entity.ActivityProductClick
		case 2:
			kind = entity.ActivityAddToCart
		}
		events = append(events, &entity.ActivityEvent{
			SessionID:   fmt.Sprintf("session-%d", i%7),
			Kind:        kind,
			PagePath:    fmt.Sprintf("/products/%d", i),
			ProductName: fmt.Sprintf("Product %d", i),
		})
	}

	return events
}

func TestActivityService_Query_RequestsBoundedWindow(t *testing.T) {
	activityRepo, _, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	window := makeActivityWindow(25)
	activityRepo.EXPECT().
		ListRecentActivities(ctx, entity.ActivityKind(""), usecase.ActivityWindow).
		Return(window, nil)

	view, err := service.Query(ctx, usecase.ActivityQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, view.TotalCount)
	assert.Len(t, view.Items, usecase.ActivityPageSize)
	assert.Equal(t, 7, view.Counters.DistinctSessions)
	assert.Equal(t, 9, view.Counters.PageViews)
	assert.Equal(t, 8, view.Counters.ProductClicks)
	assert.Equal(t, 8, view.Counters.CartAdds)
}

func TestActivityService_Query_SearchNarrowsWindowAndCounters(t *testing.T) {
	activityRepo, _, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	window := []*entity.ActivityEvent{
		{SessionID: "alpha", Kind: entity.ActivityPageView, PagePath: "/"},
		{SessionID: "beta", Kind: entity.ActivityPageView, ProductName: "Silk Sharee"},
		{SessionID: "gamma", Kind: entity.ActivitySearch, Metadata: map[string]any{entity.MetadataSearchQuery: "sharee"}},
		{SessionID: "delta", Kind: entity.ActivityAddToCart, ProductName: "Panjabi"},
	}
	activityRepo.EXPECT().
		ListRecentActivities(ctx, entity.ActivityKind(""), usecase.ActivityWindow).
		Return(window, nil)

	view, err := service.Query(ctx, usecase.ActivityQuery{Search: "sharee", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalCount)
	assert.Equal(t, 1, view.Counters.PageViews)
	assert.Equal(t, 0, view.Counters.CartAdds)
	assert.Equal(t, 2, view.Counters.DistinctSessions)
}

func TestActivityService_Query_SessionIDSearchMatches(t *testing.T) {
	activityRepo, _, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	window := []*entity.ActivityEvent{
		{SessionID: "1724800000000-ab12cd", Kind: entity.ActivityPageView},
		{SessionID: "other", Kind: entity.ActivityPageView},
	}
	activityRepo.EXPECT().
		ListRecentActivities(ctx, entity.ActivityKind(""), usecase.ActivityWindow).
		Return(window, nil)

	view, err := service.Query(ctx, usecase.ActivityQuery{Search: "ab12cd"})
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalCount)
}

func TestActivityService_Query_KindFilterIsPushedToRepository(t *testing.T) {
	activityRepo, _, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	activityRepo.EXPECT().
		ListRecentActivities(ctx, entity.ActivityAddToCart, usecase.ActivityWindow).
		Return([]*entity.ActivityEvent{}, nil)

	view, err := service.Query(ctx, usecase.ActivityQuery{Kind: entity.ActivityAddToCart})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestActivityService_Query_PageBeyondEndReturnsEmpty(t *testing.T) {
	activityRepo, _, _, _, service := newActivityFixture(t)
	ctx := context.Background()

	window := makeActivityWindow(15)
	activityRepo.EXPECT().
		ListRecentActivities(ctx, entity.ActivityKind(""), usecase.ActivityWindow).
		Return(window, nil)

	view, err := service.Query(ctx, usecase.ActivityQuery{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 15, view.TotalCount)
	assert.Equal(t, 4, view.Page)
}
