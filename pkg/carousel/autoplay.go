package carousel

import (
	"sync"
	"time"

	"github.com/vango-dev/vangoui/pkg/sched"
)

// DefaultAutoplayInterval is the advance interval used when none is given.
const DefaultAutoplayInterval = 3 * time.Second

// Autoplay advances a carousel on a fixed interval. At the last snap it
// returns to the first one.
type Autoplay struct {
	mu       sync.Mutex
	s        sched.Scheduler
	nav      Navigator
	interval time.Duration
	stop     func()
	stopped  bool
}

// NewAutoplay creates a paused autoplay for nav.
func NewAutoplay(s sched.Scheduler, nav Navigator, interval time.Duration) *Autoplay {
	if interval <= 0 {
		interval = DefaultAutoplayInterval
	}
	return &Autoplay{s: s, nav: nav, interval: interval}
}

// Interval returns the advance interval.
func (a *Autoplay) Interval() time.Duration { return a.interval }

// Play starts advancing. It is a no-op when already playing or stopped.
func (a *Autoplay) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil || a.stopped {
		return
	}
	a.stop = sched.Every(a.s, a.interval, a.tick)
}

// Pause stops advancing until the next Play.
func (a *Autoplay) Pause() {
	a.mu.Lock()
	stop := a.stop
	a.stop = nil
	a.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Toggle switches between playing and paused and returns the new state.
func (a *Autoplay) Toggle() bool {
	if a.Playing() {
		a.Pause()
		return false
	}
	a.Play()
	return a.Playing()
}

// Playing reports whether the autoplay is advancing.
func (a *Autoplay) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

// Stop pauses permanently; later Play calls are ignored.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.Pause()
}

func (a *Autoplay) tick() {
	if a.nav.CanScrollNext() {
		a.nav.ScrollNext()
		return
	}
	a.nav.ScrollTo(0)
}
