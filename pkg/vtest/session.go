package vtest

import (
	"errors"
	"fmt"
	"time"

	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Common errors for test session operations.
var (
	ErrNotRendered = errors.New("session has not rendered yet")
	ErrNoHandler   = errors.New("no handler registered for event")
	ErrClosed      = errors.New("session closed")
)

// Session simulates a live session: it renders a view with hydration ids,
// routes events by id the way a connected client would, and owns a fake
// clock for the view's timers.
type Session struct {
	Clock    *sched.Fake
	view     func() *vdom.VNode
	tree     *vdom.VNode
	handlers map[string]any
	teardown func()
	closed   bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTeardown registers the func run by SimulateDisconnect.
func WithTeardown(fn func()) SessionOption {
	return func(s *Session) { s.teardown = fn }
}

// NewSession creates a session around view. Build the view's controllers on
// s.Clock so timers are driven by Advance.
//
// Example:
//
//	sess := vtest.NewSession(nil)
//	t := toast.New(sess.Clock, toast.AutoClose(3*time.Second))
//	sess.SetView(t.Render)
//	sess.Render()
//	sess.Advance(3 * time.Second)
func NewSession(view func() *vdom.VNode, opts ...SessionOption) *Session {
	s := &Session{
		Clock: sched.NewFake(),
		view:  view,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetView replaces the view func.
func (s *Session) SetView(view func() *vdom.VNode) {
	s.view = view
}

// Render renders the view with hydration ids and returns the HTML.
func (s *Session) Render() string {
	if s.closed || s.view == nil {
		s.tree = nil
		s.handlers = nil
		return ""
	}
	r := render.NewRenderer(render.RendererConfig{Hydrate: true})
	s.tree = s.view()
	html, err := r.RenderToString(s.tree)
	if err != nil {
		return ""
	}
	s.handlers = r.Handlers()
	return html
}

// Tree returns the tree produced by the last Render.
func (s *Session) Tree() *vdom.VNode { return s.tree }

// HID returns the hydration id of the element labelled label in the last
// render, or "".
func (s *Session) HID(label string) string {
	if n := FindByLabel(s.tree, label); n != nil {
		return n.HID
	}
	return ""
}

// Dispatch routes e to the handler registered under hid and re-renders.
func (s *Session) Dispatch(hid string, e vdom.Event) error {
	if s.closed {
		return ErrClosed
	}
	if s.handlers == nil {
		return ErrNotRendered
	}
	h, ok := s.handlers[hid+"_on"+e.Type]
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrNoHandler, hid, e.Type)
	}
	if err := vdom.Invoke(h, e); err != nil {
		return err
	}
	s.Render()
	return nil
}

// Click dispatches a click to the element labelled label.
func (s *Session) Click(label string) error {
	return s.Dispatch(s.HID(label), vdom.Event{Type: "click"})
}

// Advance moves the clock forward and re-renders.
func (s *Session) Advance(d time.Duration) string {
	s.Clock.Advance(d)
	return s.Render()
}

// SimulateDisconnect runs the teardown and closes the session. Later
// dispatches fail with ErrClosed.
func (s *Session) SimulateDisconnect() {
	if s.closed {
		return
	}
	s.closed = true
	if s.teardown != nil {
		s.teardown()
	}
	s.tree = nil
	s.handlers = nil
}
