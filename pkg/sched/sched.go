package sched

import (
	"sync/atomic"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns true if the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler schedules one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}

// Dispatcher delivers a callback onto an event loop.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatchFunc) Dispatch(fn func()) { f(fn) }

// Inline runs callbacks directly on the timer goroutine.
var Inline Dispatcher = DispatchFunc(func(fn func()) { fn() })

// Real returns a Scheduler backed by the wall clock. Callbacks are delivered
// through d; a nil d runs them inline.
func Real(d Dispatcher) Scheduler {
	if d == nil {
		d = Inline
	}
	return &realScheduler{dispatch: d}
}

type realScheduler struct {
	dispatch Dispatcher
}

type realTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

func (s *realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	t := &realTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.dispatch.Dispatch(func() {
			// Stop may have won the race while this callback was queued.
			if t.done.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

func (s *realScheduler) Now() time.Time {
	return time.Now()
}

func (t *realTimer) Stop() bool {
	t.timer.Stop()
	return t.done.CompareAndSwap(false, true)
}
