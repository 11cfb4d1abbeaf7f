package notify

import (
	"context"

	"github.com/mfields/tally/internal/model"
)

// ChannelSink forwards notifications into a channel. The TUI registers
// one to drive its flash-and-alert rendering. Delivery never blocks;
// if the receiver is not draining, the notification is dropped, which
// is acceptable for a best-effort effect.
type ChannelSink struct {
	name string
	ch   chan *model.Notification
}

// NewChannelSink creates a channel sink with a small buffer.
func NewChannelSink(name string) *ChannelSink {
	return &ChannelSink{
		name: name,
		ch:   make(chan *model.Notification, 8),
	}
}

// Name identifies the sink.
func (s *ChannelSink) Name() string { return s.name }

// C returns the receive side of the sink.
func (s *ChannelSink) C() <-chan *model.Notification { return s.ch }

// Deliver forwards the notification without blocking.
func (s *ChannelSink) Deliver(ctx context.Context, n *model.Notification) error {
	select {
	case s.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Receiver backlogged; drop rather than stall the dispatcher.
		return nil
	}
}
