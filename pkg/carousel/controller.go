package carousel

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Config configures a Controller.
type Config struct {
	Orientation Orientation
	Options     Options
	// SetAPI receives the read-only handle each time an engine is attached.
	SetAPI func(*API)
	Label  string
	Class  string
	Logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Config)

// WithOrientation sets the scroll axis.
func WithOrientation(o Orientation) Option {
	return func(c *Config) { c.Orientation = o }
}

// WithOptions sets the engine options.
func WithOptions(opts Options) Option {
	return func(c *Config) { c.Options = opts }
}

// WithAPI registers a receiver for the controller handle.
func WithAPI(fn func(*API)) Option {
	return func(c *Config) { c.SetAPI = fn }
}

// WithLabel sets the accessible name of the carousel region.
func WithLabel(label string) Option {
	return func(c *Config) { c.Label = label }
}

// WithClass appends classes to the carousel region.
func WithClass(className string) Option {
	return func(c *Config) { c.Class = className }
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// State is the controller's projection of the engine.
type State struct {
	Attached      bool
	SelectedIndex int
	SlideCount    int
	CanScrollPrev bool
	CanScrollNext bool
}

// Controller tracks the selection of an attached Engine.
type Controller struct {
	mu        sync.Mutex
	cfg       Config
	engine    Engine
	gen       uint64
	offs      []func()
	state     State
	listeners map[int]func(State)
	nextID    int
	api       *API
	logger    *slog.Logger
}

// New creates an unattached controller.
func New(opts ...Option) *Controller {
	cfg := Config{Orientation: Horizontal}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates an unattached controller from an explicit
// configuration.
func NewWithConfig(cfg Config) *Controller {
	if cfg.Orientation == "" {
		cfg.Orientation = Horizontal
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{
		cfg:       cfg,
		listeners: make(map[int]func(State)),
		logger:    logger,
	}
	c.api = &API{c: c}
	return c
}

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// Orientation returns the scroll axis.
func (c *Controller) Orientation() Orientation { return c.cfg.Orientation }

// API returns the read-only handle.
func (c *Controller) API() *API { return c.api }

// Attach binds the controller to e, reads its state and subscribes to its
// "select" and "reInit" events. A previously attached engine is detached
// first.
func (c *Controller) Attach(e Engine) {
	if e == nil {
		c.Detach()
		return
	}
	c.Detach()

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.engine = e
	c.mu.Unlock()

	offs := []func(){
		e.On(EventSelect, func() { c.sync(gen, e) }),
		e.On(EventReInit, func() { c.sync(gen, e) }),
	}

	c.mu.Lock()
	if c.gen != gen {
		// Detached while subscribing.
		c.mu.Unlock()
		for _, off := range offs {
			off()
		}
		return
	}
	c.offs = offs
	c.mu.Unlock()

	c.sync(gen, e)

	count := c.SlideCount()
	c.logger.Debug("carousel attached", "slides", count, "orientation", string(c.cfg.Orientation))
	if count == 0 {
		c.logger.Warn("carousel attached to an engine with no slides")
	}

	if c.cfg.SetAPI != nil {
		c.cfg.SetAPI(c.api)
	}
}

// Detach unsubscribes from the engine. The state is frozen at its last
// value and later engine events have no effect.
func (c *Controller) Detach() {
	c.mu.Lock()
	if c.engine == nil {
		c.mu.Unlock()
		return
	}
	c.gen++
	c.engine = nil
	offs := c.offs
	c.offs = nil
	c.state.Attached = false
	c.mu.Unlock()

	for _, off := range offs {
		off()
	}
	c.logger.Debug("carousel detached")
}

// sync re-reads the engine. Engine calls happen outside the lock because
// engines may emit synchronously.
func (c *Controller) sync(gen uint64, e Engine) {
	next := State{
		Attached:      true,
		SelectedIndex: e.SelectedScrollSnap(),
		SlideCount:    len(e.ScrollSnapList()),
		CanScrollPrev: e.CanScrollPrev(),
		CanScrollNext: e.CanScrollNext(),
	}
	if next.SlideCount == 0 {
		next.SelectedIndex = 0
		next.CanScrollPrev = false
		next.CanScrollNext = false
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.state = next
	fns := make([]func(State), 0, len(c.listeners))
	for _, id := range sortedKeys(c.listeners) {
		fns = append(fns, c.listeners[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// State returns the last state read from the engine.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attached reports whether an engine is attached.
func (c *Controller) Attached() bool { return c.State().Attached }

// SelectedIndex returns the zero-based selected slide.
func (c *Controller) SelectedIndex() int { return c.State().SelectedIndex }

// SlideCount returns the number of snap points.
func (c *Controller) SlideCount() int { return c.State().SlideCount }

// CanScrollPrev reports the engine's previous-boundary flag.
func (c *Controller) CanScrollPrev() bool { return c.State().CanScrollPrev }

// CanScrollNext reports the engine's next-boundary flag.
func (c *Controller) CanScrollNext() bool { return c.State().CanScrollNext }

// OnSelect registers fn to run after every state refresh.
func (c *Controller) OnSelect(fn func(State)) (off func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// navigable returns the engine when navigation should reach it.
func (c *Controller) navigable() Engine {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine == nil || c.state.SlideCount == 0 {
		return nil
	}
	return c.engine
}

// ScrollNext asks the engine for the next snap.
func (c *Controller) ScrollNext() {
	if e := c.navigable(); e != nil {
		e.ScrollNext()
	}
}

// ScrollPrev asks the engine for the previous snap.
func (c *Controller) ScrollPrev() {
	if e := c.navigable(); e != nil {
		e.ScrollPrev()
	}
}

// ScrollTo asks the engine for snap index. The index is passed through
// unchanged; range handling belongs to the engine.
func (c *Controller) ScrollTo(index int) {
	if e := c.navigable(); e != nil {
		e.ScrollTo(index)
	}
}

// HandleKey navigates for arrow keys on the controller's axis and reports
// whether the key's default action should be prevented.
func (c *Controller) HandleKey(e vdom.KeyboardEvent) bool {
	prev, next := c.navKeys()
	switch e.Key {
	case prev:
		c.ScrollPrev()
		return true
	case next:
		c.ScrollNext()
		return true
	}
	return false
}

func (c *Controller) navKeys() (prev, next string) {
	if c.cfg.Orientation == Vertical {
		return vdom.KeyArrowUp, vdom.KeyArrowDown
	}
	return vdom.KeyArrowLeft, vdom.KeyArrowRight
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
