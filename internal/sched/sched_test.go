package sched

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFired(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled callback never ran")
	}
}

func TestScheduleFiresAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, nil)

	fired := make(chan struct{}, 1)
	s.Schedule(time.Second, func() { fired <- struct{}{} })

	clock.Advance(999 * time.Millisecond)
	select {
	case <-fired:
		t.Fatal("callback ran before its delay elapsed")
	case <-time.After(50 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)
	waitFired(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestCancelPreventsCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, nil)

	cancelled := make(chan struct{}, 1)
	tok := s.Schedule(time.Second, func() { cancelled <- struct{}{} })
	s.Cancel(tok)
	require.Equal(t, 0, s.Pending())

	clock.Advance(2 * time.Second)

	// A sentinel timer proves time moved past the cancelled deadline.
	sentinel := make(chan struct{}, 1)
	s.Schedule(time.Second, func() { sentinel <- struct{}{} })
	clock.Advance(time.Second)
	waitFired(t, sentinel)

	select {
	case <-cancelled:
		t.Fatal("cancelled callback still ran")
	default:
	}
}

func TestCancelUnknownTokenIsNoop(t *testing.T) {
	s := New(clockwork.NewFakeClock(), nil)
	s.Cancel(0)
	s.Cancel(42)
	assert.Equal(t, 0, s.Pending())
}

func TestCallbacksGoThroughDispatch(t *testing.T) {
	clock := clockwork.NewFakeClock()

	dispatched := make(chan func(), 1)
	s := New(clock, func(fn func()) { dispatched <- fn })

	fired := false
	s.Schedule(time.Second, func() { fired = true })
	clock.Advance(time.Second)

	// The callback is parked on the dispatch hook, not run on the timer
	// goroutine.
	var fn func()
	select {
	case fn = <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch hook never received the callback")
	}
	require.False(t, fired)
	fn()
	assert.True(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestCancelAfterFireBeforeDispatchRun(t *testing.T) {
	clock := clockwork.NewFakeClock()

	dispatched := make(chan func(), 1)
	s := New(clock, func(fn func()) { dispatched <- fn })

	fired := false
	tok := s.Schedule(time.Second, func() { fired = true })
	clock.Advance(time.Second)

	var fn func()
	select {
	case fn = <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch hook never received the callback")
	}

	// Cancellation between timer expiry and dispatch execution must still
	// win; this is the reset-versus-stale-timer race.
	s.Cancel(tok)
	fn()
	assert.False(t, fired)
}

func TestRealClockSmoke(t *testing.T) {
	s := New(nil, nil)
	fired := make(chan struct{}, 1)
	s.Schedule(10*time.Millisecond, func() { fired <- struct{}{} })
	waitFired(t, fired)
}
