package notify

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/tally/internal/model"
)

type fakeSink struct {
	name string
	err  error

	mu    sync.Mutex
	notes []*model.Notification
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Deliver(_ context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n)
	return s.err
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func TestDispatcherFansOutToAllSinks(t *testing.T) {
	a := &fakeSink{name: "a"}
	b := &fakeSink{name: "b"}
	d := NewDispatcher(a, b)

	results := d.Send(context.Background(), model.NewTargetReached(10, 10))

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success)
		assert.NoError(t, r.Error)
	}
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestDispatcherNoSinks(t *testing.T) {
	d := NewDispatcher()
	assert.Nil(t, d.Send(context.Background(), model.NewTargetReached(1, 1)))
}

func TestDispatcherSinkFailureIsIsolated(t *testing.T) {
	broken := &fakeSink{name: "broken", err: errors.New("boom")}
	ok := &fakeSink{name: "ok"}
	d := NewDispatcher(broken, ok)

	results := d.Send(context.Background(), model.NewTargetReached(10, 10))

	require.Len(t, results, 2)
	byName := map[string]DispatchResult{}
	for _, r := range results {
		byName[r.Sink] = r
	}
	assert.False(t, byName["broken"].Success)
	assert.Error(t, byName["broken"].Error)
	assert.True(t, byName["ok"].Success)
}

func TestDispatcherRegister(t *testing.T) {
	d := NewDispatcher()
	assert.Equal(t, 0, d.SinkCount())

	d.Register(&fakeSink{name: "a"})
	assert.Equal(t, 1, d.SinkCount())
}

func TestBellSinkWritesBel(t *testing.T) {
	var buf bytes.Buffer
	s := NewBellSink(&buf)

	require.NoError(t, s.Deliver(context.Background(), model.NewTargetReached(1, 1)))
	assert.Equal(t, "\a", buf.String())
}

func TestAlertSinkWritesTitleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	s := NewAlertSink(&buf)

	n := model.NewTargetReached(108, 110)
	require.NoError(t, s.Deliver(context.Background(), n))
	assert.Contains(t, buf.String(), "Target reached")
	assert.Contains(t, buf.String(), "108")
}

func TestChannelSinkDelivers(t *testing.T) {
	s := NewChannelSink("screen")

	n := model.NewTargetReached(5, 5)
	require.NoError(t, s.Deliver(context.Background(), n))

	got := <-s.C()
	assert.Equal(t, n, got)
}

func TestChannelSinkDropsWhenBacklogged(t *testing.T) {
	s := NewChannelSink("screen")

	// Fill the buffer and keep going; Deliver must never block.
	for i := 0; i < 32; i++ {
		require.NoError(t, s.Deliver(context.Background(), model.NewTargetReached(i+1, i+1)))
	}
	assert.Len(t, s.ch, cap(s.ch))
}
