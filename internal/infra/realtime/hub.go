// Package realtime implements the in-process fan-out of change events to
// subscribed views. The worker's push handler publishes into the hub and
// every subscriber on the matching channel receives a copy.
package realtime

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"storefront/internal/domain/service"
)

// subscriberBuffer is the per-subscriber queue depth. A subscriber that
// stops draining loses events rather than blocking the publisher.
const subscriberBuffer = 64

// Subscription is one listener's handle on a channel. Events arrives on C
// until Cancel is called or the hub closes.
type Subscription struct {
	C      <-chan *service.ChangeEvent
	cancel func()
}

// Cancel detaches the subscription from the hub. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.cancel()
}

// Hub fans change events out to subscribers grouped by channel name.
// Publishing never blocks: slow subscribers drop events.
type Hub struct {
	mu      sync.RWMutex
	nextID  uint64
	subs    map[string]map[uint64]chan *service.ChangeEvent
	closed  bool
	logger  *slog.Logger
	dropped atomic.Uint64
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[uint64]chan *service.ChangeEvent),
		logger: logger,
	}
}

// Subscribe registers a listener on a channel.
func (h *Hub) Subscribe(channel string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan *service.ChangeEvent, subscriberBuffer)
	if h.closed {
		close(ch)

		return &Subscription{C: ch, cancel: func() {}}
	}

	id := h.nextID
	h.nextID++

	if h.subs[channel] == nil {
		h.subs[channel] = make(map[uint64]chan *service.ChangeEvent)
	}
	h.subs[channel][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if subs, ok := h.subs[channel]; ok {
				if _, ok := subs[id]; ok {
					delete(subs, id)
					close(ch)
				}
			}
		})
	}

	return &Subscription{C: ch, cancel: cancel}
}

// Publish delivers an event to every subscriber of its channel without
// blocking. Events for channels with no subscribers are discarded.
func (h *Hub) Publish(event *service.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, ch := range h.subs[event.Channel] {
		select {
		case ch <- event:
		default:
			h.dropped.Add(1)
			if h.logger != nil {
				h.logger.Warn("realtime subscriber queue full, dropping event",
					slog.String("channel", event.Channel),
					slog.String("event_id", event.EventID),
				)
			}
		}
	}
}

// Stream implements service.ChangeStream.
func (h *Hub) Stream(channel string) (<-chan *service.ChangeEvent, func()) {
	sub := h.Subscribe(channel)

	return sub.C, sub.Cancel
}

// Dropped returns how many events were discarded because a subscriber's
// queue was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close shuts the hub down and closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for channel, subs := range h.subs {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(h.subs, channel)
	}
}
