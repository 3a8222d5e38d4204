// Package sched provides cancellable one-shot timers for game logic.
//
// Game state must only mutate on the UI loop, so expired timers are handed
// to a dispatch hook instead of running on the timer goroutine. Cancellation
// is authoritative: a token cancelled before its callback is dispatched will
// never run, even if the underlying timer already fired.
package sched

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Token identifies a scheduled callback. The zero Token is never issued and
// is safe to Cancel.
type Token int

// Scheduler schedules a callback after a delay and can cancel it.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Token
	Cancel(t Token)
}

// TimerScheduler implements Scheduler on top of a clockwork.Clock.
type TimerScheduler struct {
	clock    clockwork.Clock
	dispatch func(fn func())

	mu     sync.Mutex
	next   Token
	timers map[Token]clockwork.Timer
}

// New creates a TimerScheduler. A nil clock defaults to the real clock; a
// nil dispatch runs callbacks inline on the timer goroutine.
func New(clock clockwork.Clock, dispatch func(fn func())) *TimerScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TimerScheduler{
		clock:    clock,
		dispatch: dispatch,
		timers:   make(map[Token]clockwork.Timer),
	}
}

// SetDispatch replaces the dispatch hook. It must be called before any
// Schedule, typically right after the UI program that owns the loop exists.
func (s *TimerScheduler) SetDispatch(dispatch func(fn func())) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch = dispatch
}

// Schedule runs fn after d on the dispatch hook, unless cancelled first.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tok := s.next
	s.timers[tok] = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		dispatch := s.dispatch
		s.mu.Unlock()
		dispatch(func() {
			s.mu.Lock()
			_, live := s.timers[tok]
			delete(s.timers, tok)
			s.mu.Unlock()
			if live {
				fn()
			}
		})
	})
	return tok
}

// Cancel stops the callback for t. Cancelling an unknown, expired or zero
// token is a no-op.
func (s *TimerScheduler) Cancel(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[t]
	if !ok {
		return
	}
	delete(s.timers, t)
	timer.Stop()
}

// Pending reports how many callbacks are scheduled and not yet run.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
