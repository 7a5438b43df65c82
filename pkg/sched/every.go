package sched

import (
	"sync"
	"time"
)

// MinInterval is the smallest interval Every accepts.
const MinInterval = time.Millisecond

// Every calls fn every d until the returned stop func is called.
func Every(s Scheduler, d time.Duration, fn func()) (stop func()) {
	if d < MinInterval {
		d = MinInterval
	}

	var (
		mu      sync.Mutex
		stopped bool
		timer   Timer
	)

	var schedule func()
	schedule = func() {
		timer = s.AfterFunc(d, func() {
			mu.Lock()
			if stopped {
				mu.Unlock()
				return
			}
			mu.Unlock()

			fn()

			mu.Lock()
			if !stopped {
				schedule()
			}
			mu.Unlock()
		})
	}

	mu.Lock()
	schedule()
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		stopped = true
		if timer != nil {
			timer.Stop()
		}
	}
}
