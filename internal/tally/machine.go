// Package tally implements the counter state machine.
//
// The machine owns three values: a non-negative count, an optional
// positive target (0 means unset), and a reached flag. Mutations are
// applied in memory first; persistence writes and notification
// dispatch run as detached best-effort tasks that never block the
// caller. Within one target epoch the reached notification fires at
// most once: NOT_REACHED flips to REACHED when count crosses the
// target, and only a target change or a count reset opens a new epoch.
package tally

import (
	"context"
	"sync"
	"time"

	"github.com/mfields/tally/internal/logging"
	"github.com/mfields/tally/internal/model"
	"github.com/mfields/tally/internal/notify"
	"github.com/mfields/tally/internal/storage"
	"github.com/mfields/tally/internal/validate"
)

// State is a snapshot of the machine. Target == 0 means no target.
type State struct {
	Count   int  `json:"count"`
	Target  int  `json:"target,omitempty"`
	Reached bool `json:"reached"`
}

// HasTarget reports whether a target is set.
func (s State) HasTarget() bool { return s.Target > 0 }

// Progress returns completion toward the target in percent. It can
// exceed 100 once the count passes the target; without a target it
// is always 0.
func (s State) Progress() float64 {
	if s.Target <= 0 {
		return 0
	}
	return float64(s.Count) / float64(s.Target) * 100
}

// Machine is the counter state machine. All exported methods are safe
// for concurrent use, though the expected caller is a single event
// loop.
type Machine struct {
	mu    sync.Mutex
	state State

	repo       *storage.TallyRepo
	milestones *storage.MilestoneRepo
	dispatcher *notify.Dispatcher

	subsMu sync.RWMutex
	subs   []func(State)

	// detached tracks fire-and-forget persistence/notification work so
	// Close and tests can drain it.
	detached sync.WaitGroup
}

// Deps are the machine's collaborators. Repo is required; Milestones
// and Dispatcher may be nil, which disables the milestone log and
// notifications respectively.
type Deps struct {
	Repo       *storage.TallyRepo
	Milestones *storage.MilestoneRepo
	Dispatcher *notify.Dispatcher
}

// Load builds a machine from persisted state. Missing slots default to
// count 0 and no target. The reached flag is recomputed from the
// loaded pair rather than stored: a restart with count already at or
// past the target comes up reached without re-firing the
// notification.
func Load(deps Deps) (*Machine, error) {
	m := &Machine{
		repo:       deps.Repo,
		milestones: deps.Milestones,
		dispatcher: deps.Dispatcher,
	}

	count, err := deps.Repo.LoadCount()
	if err != nil {
		return nil, err
	}
	target, err := deps.Repo.LoadTarget()
	if err != nil {
		return nil, err
	}

	m.state = State{
		Count:   count,
		Target:  target,
		Reached: target > 0 && count >= target,
	}

	logging.DebugLog("state loaded",
		logging.KeyCount, count,
		logging.KeyTarget, target,
		"reached", m.state.Reached)
	return m, nil
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to be called with a snapshot after every
// state change. Callbacks run synchronously on the mutating call.
func (m *Machine) Subscribe(fn func(State)) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	m.subs = append(m.subs, fn)
}

// Increment adds 1 to the count.
func (m *Machine) Increment() State {
	return m.IncrementBy(1)
}

// IncrementBy adds n to the count. The count never drops below 0.
func (m *Machine) IncrementBy(n int) State {
	m.mu.Lock()
	m.state.Count += n
	if m.state.Count < 0 {
		m.state.Count = 0
	}
	st, crossed := m.evaluateLocked()
	m.mu.Unlock()

	m.persistCount(st.Count)
	if crossed {
		m.announceReached(st)
	}
	m.publish(st)
	return st
}

// Reset sets the count back to 0 and opens a new target epoch. The
// target itself is untouched. Confirmation is the caller's concern.
func (m *Machine) Reset() State {
	m.mu.Lock()
	m.state.Count = 0
	st, _ := m.evaluateLocked()
	m.mu.Unlock()

	m.persistCount(0)
	m.publish(st)
	return st
}

// SetTarget parses raw input and applies it as the new target. Empty
// or whitespace-only input clears the target. Invalid input returns
// ErrInvalidTarget and leaves the state untouched. A valid target
// always starts a fresh epoch, so a count already at or past it
// notifies again immediately.
func (m *Machine) SetTarget(raw string) (State, error) {
	value, unset, err := validate.Target(raw)
	if err != nil {
		return m.State(), err
	}
	if unset {
		return m.ClearTarget(), nil
	}

	m.mu.Lock()
	m.state.Target = value
	m.state.Reached = false
	st, crossed := m.evaluateLocked()
	m.mu.Unlock()

	m.persistTarget(value)
	if crossed {
		m.announceReached(st)
	}
	m.publish(st)
	return st, nil
}

// ClearTarget removes the target. Confirmation is the caller's
// concern.
func (m *Machine) ClearTarget() State {
	m.mu.Lock()
	m.state.Target = 0
	st, _ := m.evaluateLocked()
	m.mu.Unlock()

	m.persistTarget(0)
	m.publish(st)
	return st
}

// evaluateLocked recomputes the reached flag and reports whether this
// mutation crossed from not-reached to reached. Callers must hold mu.
func (m *Machine) evaluateLocked() (State, bool) {
	crossed := false
	if m.state.Target > 0 && m.state.Count >= m.state.Target {
		if !m.state.Reached {
			m.state.Reached = true
			crossed = true
		}
	} else {
		m.state.Reached = false
	}
	return m.state, crossed
}

// announceReached records a milestone and dispatches the composite
// notification, both detached.
func (m *Machine) announceReached(st State) {
	reachedAt := time.Now()

	if m.milestones != nil {
		m.detached.Add(1)
		go func() {
			defer m.detached.Done()
			if _, err := m.milestones.Record(st.Target, st.Count, reachedAt); err != nil {
				logging.Warn("milestone record failed",
					logging.KeyTarget, st.Target,
					logging.KeyError, err)
			}
		}()
	}

	if m.dispatcher != nil {
		m.detached.Add(1)
		go func() {
			defer m.detached.Done()
			m.dispatcher.Send(context.Background(), model.NewTargetReached(st.Target, st.Count))
		}()
	}
}

// persistCount writes the full count through to storage, detached.
func (m *Machine) persistCount(count int) {
	m.detached.Add(1)
	go func() {
		defer m.detached.Done()
		if err := m.repo.SaveCount(count); err != nil {
			logging.Warn("count write failed",
				logging.KeyKey, model.KeyCount,
				logging.KeyError, err)
		}
	}()
}

// persistTarget writes the target through to storage, detached.
func (m *Machine) persistTarget(target int) {
	m.detached.Add(1)
	go func() {
		defer m.detached.Done()
		if err := m.repo.SaveTarget(target); err != nil {
			logging.Warn("target write failed",
				logging.KeyKey, model.KeyTarget,
				logging.KeyError, err)
		}
	}()
}

// publish notifies subscribers with a snapshot.
func (m *Machine) publish(st State) {
	m.subsMu.RLock()
	subs := make([]func(State), len(m.subs))
	copy(subs, m.subs)
	m.subsMu.RUnlock()

	for _, fn := range subs {
		fn(st)
	}
}

// Drain blocks until all detached persistence and notification work
// has completed. Used by Close and by tests that need deterministic
// writes.
func (m *Machine) Drain() {
	m.detached.Wait()
}

// Close drains outstanding detached work. The machine remains usable
// afterwards; Close exists so callers can hand it to defer chains.
func (m *Machine) Close() error {
	m.Drain()
	return nil
}
