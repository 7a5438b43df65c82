// Package vdom provides the virtual DOM used by VangoUI components.
//
// Components build a tree of VNodes with variadic factory functions and the
// renderer turns that tree into HTML. Event handlers stay attached to the
// tree so a live session can route client events back to Go code.
//
// # Element API
//
//	Div(Class("card"), ID("main"),
//	    H4(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Handlers
//
// Handlers may be func(), func(KeyboardEvent) or func(string). Wrap a handler
// with PreventDefault to ask the client to suppress the browser default for
// that event; the renderer emits a data-pd-<event> marker for it.
package vdom
