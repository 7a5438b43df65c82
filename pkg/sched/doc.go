// Package sched provides the timers and event loop VangoUI controllers run on.
//
// Controllers follow a single-threaded model: their state is only mutated by
// callbacks delivered on one loop. Real timers are backed by time.AfterFunc
// but their callbacks are handed to a Dispatcher, so they run on the owning
// loop rather than on the timer goroutine. Stopping a timer after it has
// been queued but before it runs still prevents the callback.
//
// Fake is a manual clock for tests:
//
//	clock := sched.NewFake()
//	t := toast.New(clock, toast.AutoClose(3*time.Second))
//	clock.Advance(3 * time.Second)
package sched
