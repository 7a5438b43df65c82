package vdom

import "errors"

// ErrUnsupportedHandler is returned by Invoke when the handler signature is
// not one of the supported shapes.
var ErrUnsupportedHandler = errors.New("vdom: unsupported handler signature")

// Event is a client event routed back to a node's handler.
type Event struct {
	Type  string // "click", "keydown", "input"
	Key   KeyboardEvent
	Value string
}

// Invoke calls handler with the payload appropriate for its signature.
func Invoke(handler any, e Event) error {
	if m, ok := handler.(Modified); ok {
		handler = m.Handler
	}
	switch h := handler.(type) {
	case func():
		h()
	case func(KeyboardEvent):
		h(e.Key)
	case func(string):
		h(e.Value)
	case func(Event):
		h(e)
	default:
		return ErrUnsupportedHandler
	}
	return nil
}
