package toast

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Toaster keeps the visible toasts of a view, grouped by position.
type Toaster struct {
	mu       sync.Mutex
	sched    sched.Scheduler
	toasts   []*Toast
	defaults []Option
	limit    int
	onChange func()
	logger   *slog.Logger
}

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithDefaults applies opts to every toast before its own options.
func WithDefaults(opts ...Option) ToasterOption {
	return func(tr *Toaster) { tr.defaults = append(tr.defaults, opts...) }
}

// WithLimit closes the oldest toast once more than n are visible.
func WithLimit(n int) ToasterOption {
	return func(tr *Toaster) { tr.limit = n }
}

// OnChange is called after a toast is added or removed.
func OnChange(fn func()) ToasterOption {
	return func(tr *Toaster) { tr.onChange = fn }
}

// WithToasterLogger sets the logger handed to toasts.
func WithToasterLogger(l *slog.Logger) ToasterOption {
	return func(tr *Toaster) { tr.logger = l }
}

// NewToaster creates an empty Toaster scheduling timers on s.
func NewToaster(s sched.Scheduler, opts ...ToasterOption) *Toaster {
	tr := &Toaster{sched: s}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Push creates a toast and adds it to the stack.
func (tr *Toaster) Push(opts ...Option) *Toast {
	cfg := DefaultConfig()
	cfg.Logger = tr.logger
	for _, opt := range tr.defaults {
		opt(&cfg)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ID == "" {
		cfg.ID = nextID()
	}

	id := cfg.ID
	userOnClose := cfg.OnClose
	cfg.OnClose = func() {
		if userOnClose != nil {
			userOnClose()
		}
		tr.remove(id)
	}

	t := NewWithConfig(tr.sched, cfg)

	tr.mu.Lock()
	tr.toasts = append(tr.toasts, t)
	tr.mu.Unlock()
	// A zero-delay timer may have expired the toast before it was appended.
	if !t.Visible() {
		tr.remove(id)
		return t
	}

	var evict *Toast
	tr.mu.Lock()
	if tr.limit > 0 && len(tr.toasts) > tr.limit {
		evict = tr.toasts[0]
	}
	tr.mu.Unlock()
	if evict != nil {
		evict.Close()
	}

	tr.changed()
	return t
}

// Success pushes a success toast.
func (tr *Toaster) Success(message string, opts ...Option) *Toast {
	return tr.Push(append([]Option{Success(), WithMessage(message)}, opts...)...)
}

// Error pushes an error toast.
func (tr *Toaster) Error(message string, opts ...Option) *Toast {
	return tr.Push(append([]Option{Error(), WithMessage(message)}, opts...)...)
}

// Warning pushes a warning toast.
func (tr *Toaster) Warning(message string, opts ...Option) *Toast {
	return tr.Push(append([]Option{Warning(), WithMessage(message)}, opts...)...)
}

// Info pushes an info toast.
func (tr *Toaster) Info(message string, opts ...Option) *Toast {
	return tr.Push(append([]Option{Info(), WithMessage(message)}, opts...)...)
}

// Dismiss closes the toast with the given id.
func (tr *Toaster) Dismiss(id string) bool {
	t := tr.Get(id)
	if t == nil {
		return false
	}
	t.Close()
	return true
}

// Get returns the toast with the given id, or nil.
func (tr *Toaster) Get(id string) *Toast {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	for _, t := range tr.toasts {
		if t.cfg.ID == id {
			return t
		}
	}
	return nil
}

// Toasts returns the toasts still on screen, oldest first.
func (tr *Toaster) Toasts() []*Toast {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := make([]*Toast, 0, len(tr.toasts))
	for _, t := range tr.toasts {
		if t.Visible() {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of toasts on screen.
func (tr *Toaster) Len() int {
	return len(tr.Toasts())
}

// TeardownAll tears down every toast; used when the view unmounts.
func (tr *Toaster) TeardownAll() {
	tr.mu.Lock()
	toasts := tr.toasts
	tr.toasts = nil
	tr.mu.Unlock()

	for _, t := range toasts {
		t.Teardown()
	}
}

// Render returns one viewport per occupied position.
func (tr *Toaster) Render() *vdom.VNode {
	toasts := tr.Toasts()
	if len(toasts) == 0 {
		return nil
	}

	byPos := make(map[Position][]*vdom.VNode)
	for _, t := range toasts {
		if node := t.Render(); node != nil {
			byPos[t.cfg.Position] = append(byPos[t.cfg.Position], node)
		}
	}

	var viewports []*vdom.VNode
	for _, pos := range Positions {
		nodes := byPos[pos]
		if len(nodes) == 0 {
			continue
		}
		viewports = append(viewports, vdom.Section(
			vdom.AriaLabel("Notifications "+string(pos)),
			vdom.Data("position", string(pos)),
			vdom.Class("fixed z-50 flex flex-col gap-2 w-full max-w-sm", positionClass(pos)),
			nodes,
		))
	}
	return vdom.Fragment(viewports)
}

func (tr *Toaster) remove(id string) {
	tr.mu.Lock()
	removed := false
	for i, t := range tr.toasts {
		if t.cfg.ID == id {
			tr.toasts = append(tr.toasts[:i], tr.toasts[i+1:]...)
			removed = true
			break
		}
	}
	tr.mu.Unlock()
	if removed {
		tr.changed()
	}
}

func (tr *Toaster) changed() {
	tr.mu.Lock()
	fn := tr.onChange
	tr.mu.Unlock()
	if fn != nil {
		fn()
	}
}
