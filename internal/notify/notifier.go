// Package notify delivers user notifications for tally.
//
// A notification is one composite effect (sound, visual pulse, alert
// text) fanned out to every configured sink. Delivery is best-effort:
// sink failures are reported back to the dispatcher's caller and
// logged, never surfaced to the user.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/mfields/tally/internal/logging"
	"github.com/mfields/tally/internal/model"
)

// Sink is one delivery capability (bell, screen pulse, alert text).
type Sink interface {
	// Name identifies the sink in logs and dispatch results.
	Name() string
	// Deliver delivers the notification.
	Deliver(ctx context.Context, n *model.Notification) error
}

// DispatchResult contains the result of delivering to a single sink.
type DispatchResult struct {
	Sink     string
	Success  bool
	Duration time.Duration
	Error    error
}

// Dispatcher fans notifications out to all registered sinks.
type Dispatcher struct {
	mu    sync.RWMutex
	sinks []Sink
}

// NewDispatcher creates a dispatcher with the given sinks.
func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// Register adds a sink to the dispatcher.
func (d *Dispatcher) Register(s Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, s)
}

// SinkCount returns the number of registered sinks.
func (d *Dispatcher) SinkCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sinks)
}

// Send delivers n to all sinks concurrently and returns per-sink
// results. Failures are logged; the caller decides whether to care.
func (d *Dispatcher) Send(ctx context.Context, n *model.Notification) []DispatchResult {
	d.mu.RLock()
	sinks := make([]Sink, len(d.sinks))
	copy(sinks, d.sinks)
	d.mu.RUnlock()

	if len(sinks) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	results := make([]DispatchResult, len(sinks))

	for i, sink := range sinks {
		wg.Add(1)
		go func(idx int, s Sink) {
			defer wg.Done()
			results[idx] = deliver(ctx, s, n)
		}(i, sink)
	}

	wg.Wait()
	return results
}

func deliver(ctx context.Context, s Sink, n *model.Notification) DispatchResult {
	start := time.Now()
	err := s.Deliver(ctx, n)
	result := DispatchResult{
		Sink:     s.Name(),
		Success:  err == nil,
		Duration: time.Since(start),
		Error:    err,
	}

	if err != nil {
		logging.Warn("notification delivery failed",
			logging.KeySink, s.Name(),
			logging.KeyError, err)
	} else {
		logging.DebugLog("notification delivered",
			logging.KeySink, s.Name(),
			logging.KeyDuration, result.Duration.Milliseconds())
	}
	return result
}
