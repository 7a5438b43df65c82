package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw
	HID      string   // Hydration ID (assigned during render)
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsHandlerKey(key) {
			return true
		}
	}
	return false
}

// Handler returns the handler registered for the given event ("click",
// "keydown"), unwrapping modifiers.
func (v *VNode) Handler(event string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	h, ok := v.Props["on"+strings.ToLower(event)]
	if !ok || h == nil {
		return nil, false
	}
	if m, ok := h.(Modified); ok {
		return m.Handler, true
	}
	return h, true
}

// Attr returns the string form of an attribute, or "" if absent.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Props == nil {
		return ""
	}
	return AttrString(v.Props[key])
}

// IsHandlerKey reports whether a prop key names an event handler.
func IsHandlerKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "onkeydown", etc.
	Handler any    // Function to call
}

// Modified carries a handler together with client-side event modifiers.
type Modified struct {
	Handler         any
	PreventDefault  bool
	StopPropagation bool
	Keys            []string // limits PreventDefault to these keys
}

// PreventDefault marks the handler so the client suppresses the browser's
// default action for the event.
func PreventDefault(h EventHandler) EventHandler {
	m, ok := h.Handler.(Modified)
	if !ok {
		m = Modified{Handler: h.Handler}
	}
	m.PreventDefault = true
	return EventHandler{Event: h.Event, Handler: m}
}

// PreventDefaultKeys is PreventDefault restricted to key events whose key
// is one of keys.
func PreventDefaultKeys(h EventHandler, keys ...string) EventHandler {
	h = PreventDefault(h)
	m := h.Handler.(Modified)
	m.Keys = append([]string(nil), keys...)
	return EventHandler{Event: h.Event, Handler: m}
}

// StopPropagation marks the handler so the client stops event bubbling.
func StopPropagation(h EventHandler) EventHandler {
	m, ok := h.Handler.(Modified)
	if !ok {
		m = Modified{Handler: h.Handler}
	}
	m.StopPropagation = true
	return EventHandler{Event: h.Event, Handler: m}
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
