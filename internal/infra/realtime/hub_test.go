package realtime

import (
	"fmt"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllChannelSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	defer hub.Close()

	first := hub.Subscribe(constants.ChannelOrders)
	second := hub.Subscribe(constants.ChannelOrders)

	event := &service.ChangeEvent{EventID: "evt-1", Channel: constants.ChannelOrders}
	hub.Publish(event)

	require.Len(t, first.C, 1)
	require.Len(t, second.C, 1)
	assert.Equal(t, "evt-1", (<-first.C).EventID)
	assert.Equal(t, "evt-1", (<-second.C).EventID)
}

func TestHub_ChannelsAreIsolated(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	defer hub.Close()

	orders := hub.Subscribe(constants.ChannelOrders)
	activity := hub.Subscribe(constants.ChannelActivity)

	hub.Publish(&service.ChangeEvent{EventID: "evt-2", Channel: constants.ChannelActivity})

	assert.Empty(t, orders.C)
	require.Len(t, activity.C, 1)
	assert.Equal(t, "evt-2", (<-activity.C).EventID)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	defer hub.Close()

	sub := hub.Subscribe(constants.ChannelOrders)

	// Overfill the subscriber queue; the extra events must be dropped
	// without Publish ever blocking.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(&service.ChangeEvent{
			EventID: fmt.Sprintf("evt-%d", i),
			Channel: constants.ChannelOrders,
		})
	}

	assert.Len(t, sub.C, subscriberBuffer)
	assert.Equal(t, uint64(5), hub.Dropped())
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	defer hub.Close()

	sub := hub.Subscribe(constants.ChannelOrders)
	sub.Cancel()
	sub.Cancel() // second cancel is a no-op

	hub.Publish(&service.ChangeEvent{EventID: "evt-3", Channel: constants.ChannelOrders})

	_, open := <-sub.C
	assert.False(t, open)
}

func TestHub_CloseClosesSubscriberChannels(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	sub := hub.Subscribe(constants.ChannelOrders)

	hub.Close()

	_, open := <-sub.C
	assert.False(t, open)

	// Publishing and subscribing after close are safe no-ops.
	hub.Publish(&service.ChangeEvent{EventID: "evt-4", Channel: constants.ChannelOrders})
	late := hub.Subscribe(constants.ChannelOrders)
	_, open = <-late.C
	assert.False(t, open)
}
