package toast

import (
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/vangoui/pkg/sched"
)

// State is the toast lifecycle state.
type State uint8

const (
	StateVisible   State = iota // rendered, may still be dismissed
	StateDismissed              // terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

var idCounter atomic.Uint64

func nextID() string {
	return "toast-" + strconv.FormatUint(idCounter.Add(1), 10)
}

// Toast is the lifecycle controller for a single notification.
type Toast struct {
	mu       sync.Mutex
	cfg      Config
	state    State
	timer    sched.Timer
	tornDown bool
	logger   *slog.Logger
}

// New creates a visible toast. If auto-close is enabled the dismissal timer
// is scheduled on s.
func New(s sched.Scheduler, opts ...Option) *Toast {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(s, cfg)
}

// NewWithConfig creates a visible toast from an explicit configuration.
func NewWithConfig(s sched.Scheduler, cfg Config) *Toast {
	if cfg.ID == "" {
		cfg.ID = nextID()
	}
	if cfg.Variant == "" {
		cfg.Variant = VariantInfo
	}
	if cfg.Position == "" {
		cfg.Position = TopRight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t := &Toast{
		cfg:    cfg,
		state:  StateVisible,
		logger: logger.With("toast", cfg.ID),
	}

	if cfg.AutoClose {
		if s == nil {
			s = sched.Real(nil)
		}
		// Hold the lock so a zero-delay timer firing on another goroutine
		// cannot observe t before the handle is stored.
		t.mu.Lock()
		t.timer = s.AfterFunc(cfg.AutoCloseDelay, t.expire)
		t.mu.Unlock()
	}

	return t
}

// ID returns the toast id.
func (t *Toast) ID() string { return t.cfg.ID }

// Config returns a copy of the configuration.
func (t *Toast) Config() Config { return t.cfg }

// State returns the lifecycle state.
func (t *Toast) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Visible reports whether the toast is still rendered.
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == StateVisible && !t.tornDown
}

// Close dismisses the toast. Only the first call has an effect: it stops
// the auto-close timer and then runs OnClose.
func (t *Toast) Close() {
	t.dismiss("manual")
}

func (t *Toast) expire() {
	t.dismiss("timer")
}

func (t *Toast) dismiss(reason string) {
	t.mu.Lock()
	if t.state == StateDismissed || t.tornDown {
		t.mu.Unlock()
		return
	}
	t.state = StateDismissed
	timer := t.timer
	t.timer = nil
	onClose := t.cfg.OnClose
	t.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	t.logger.Debug("toast dismissed", "reason", reason)

	if onClose != nil {
		onClose()
	}
}

// Teardown releases the toast when its view unmounts. A pending auto-close
// timer is cancelled and no callback runs afterwards.
func (t *Toast) Teardown() {
	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	t.tornDown = true
	timer := t.timer
	t.timer = nil
	t.mu.Unlock()

	if timer != nil {
		timer.Stop()
		t.logger.Debug("toast torn down with pending timer")
	}
}
