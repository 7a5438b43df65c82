package sched

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Loop runs dispatched callbacks one at a time on a single goroutine.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake chan struct{}
	done chan struct{}
	exit chan struct{}

	logger *slog.Logger
}

// NewLoop starts a loop. A nil logger discards panic reports.
func NewLoop(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		exit:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l
}

// Dispatch queues fn. Callbacks dispatched after Close are dropped.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do dispatches fn and waits for it to run. It returns false if the loop
// closed before fn ran. Do must not be called from the loop goroutine.
func (l *Loop) Do(fn func()) bool {
	ran := make(chan struct{})
	l.Dispatch(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return true
	case <-l.exit:
		select {
		case <-ran:
			return true
		default:
			return false
		}
	}
}

// Close stops the loop after the callback currently running, dropping
// anything still queued, and waits for the goroutine to exit.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.exit
		return
	}
	l.closed = true
	l.pending = nil
	l.mu.Unlock()

	close(l.done)
	<-l.exit
}

func (l *Loop) run() {
	defer close(l.exit)
	for {
		select {
		case <-l.done:
			return
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			if l.closed || len(l.pending) == 0 {
				l.mu.Unlock()
				break
			}
			fn := l.pending[0]
			l.pending[0] = nil
			l.pending = l.pending[1:]
			l.mu.Unlock()

			l.call(fn)
		}
	}
}

func (l *Loop) call(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("loop callback panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
