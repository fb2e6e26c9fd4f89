package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startFeed(t *testing.T) (*changeFeedService, chan *service.ChangeEvent, chan *service.ChangeEvent, context.CancelFunc) {
	t.Helper()

	orders := make(chan *service.ChangeEvent, 8)
	activity := make(chan *service.ChangeEvent, 8)

	stream := mockSvc.NewMockChangeStream(t)
	stream.EXPECT().Stream(constants.ChannelOrders).Return((<-chan *service.ChangeEvent)(orders), func() {})
	stream.EXPECT().Stream(constants.ChannelActivity).Return((<-chan *service.ChangeEvent)(activity), func() {})

	feed := NewChangeFeedService(stream, newTestLogger()).(*changeFeedService)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return feed, orders, activity, cancel
}

func waitForSnapshot(t *testing.T, feed *changeFeedService, ready func(s usecase.FeedSnapshot) bool) usecase.FeedSnapshot {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		snapshot := feed.Snapshot()
		if ready(snapshot) {
			return snapshot
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for feed snapshot, last: %+v", snapshot)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestChangeFeedService_OrderInsertRaisesNoticeAndCounter(t *testing.T) {
	feed, orders, _, _ := startFeed(t)

	orderID := uuid.New()
	record, err := json.Marshal(map[string]any{
		"id":            orderID,
		"customer_name": "Karim",
	})
	require.NoError(t, err)

	orders <- &service.ChangeEvent{EventID: "evt-1", Channel: constants.ChannelOrders, Record: record}

	snapshot := waitForSnapshot(t, feed, func(s usecase.FeedSnapshot) bool { return s.NewOrders == 1 })
	require.Len(t, snapshot.Notices, 1)
	assert.Equal(t, orderID, snapshot.Notices[0].OrderID)
	assert.Equal(t, "Karim", snapshot.Notices[0].CustomerName)
	assert.Contains(t, snapshot.Notices[0].Message, "Karim")
}

func TestChangeFeedService_AcknowledgeResetsCounterKeepsNotices(t *testing.T) {
	feed, orders, _, _ := startFeed(t)

	record, _ := json.Marshal(map[string]any{"id": uuid.New(), "customer_name": "Rahima"})
	orders <- &service.ChangeEvent{EventID: "evt-2", Channel: constants.ChannelOrders, Record: record}

	waitForSnapshot(t, feed, func(s usecase.FeedSnapshot) bool { return s.NewOrders == 1 })

	feed.AcknowledgeOrders()
	snapshot := feed.Snapshot()
	assert.Zero(t, snapshot.NewOrders)
	assert.Len(t, snapshot.Notices, 1)
}

func TestChangeFeedService_ActivityInsertOnlyCounts(t *testing.T) {
	feed, _, activity, _ := startFeed(t)

	activity <- &service.ChangeEvent{EventID: "evt-3", Channel: constants.ChannelActivity, Record: json.RawMessage(`{}`)}

	snapshot := waitForSnapshot(t, feed, func(s usecase.FeedSnapshot) bool { return s.ActivitySeen == 1 })
	assert.Zero(t, snapshot.NewOrders)
	assert.Empty(t, snapshot.Notices)
}

func TestChangeFeedService_MalformedOrderRecordIsIgnored(t *testing.T) {
	feed, orders, activity, _ := startFeed(t)

	orders <- &service.ChangeEvent{EventID: "evt-4", Channel: constants.ChannelOrders, Record: json.RawMessage(`{"id": 42}`)}
	// A following activity event proves the loop survived the bad record.
	activity <- &service.ChangeEvent{EventID: "evt-5", Channel: constants.ChannelActivity, Record: json.RawMessage(`{}`)}

	snapshot := waitForSnapshot(t, feed, func(s usecase.FeedSnapshot) bool { return s.ActivitySeen == 1 })
	assert.Zero(t, snapshot.NewOrders)
}

func TestChangeFeedService_RunStopsWhenStreamCloses(t *testing.T) {
	orders := make(chan *service.ChangeEvent)
	activity := make(chan *service.ChangeEvent)

	stream := mockSvc.NewMockChangeStream(t)
	stream.EXPECT().Stream(constants.ChannelOrders).Return((<-chan *service.ChangeEvent)(orders), func() {})
	stream.EXPECT().Stream(constants.ChannelActivity).Return((<-chan *service.ChangeEvent)(activity), func() {})

	feed := NewChangeFeedService(stream, newTestLogger())

	done := make(chan error, 1)
	go func() {
		done <- feed.Run(context.Background())
	}()

	close(orders)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after stream closed")
	}
}
