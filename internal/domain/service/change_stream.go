package service

// ChangeStream hands out live subscriptions to change-event channels.
// The returned cancel function detaches the subscription; after cancel or
// stream shutdown the event channel is closed.
type ChangeStream interface {
	Stream(channel string) (events <-chan *ChangeEvent, cancel func())
}
