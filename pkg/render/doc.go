// Package render converts VangoUI VNode trees into HTML.
//
// It handles escaping of text and attribute values, void and boolean
// attributes, deterministic attribute order and hydration ids for
// interactive elements:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// With Hydrate enabled, elements carrying event handlers receive a
// data-hid attribute and the handlers are collected so a live session can
// route client events back to them (see Handlers).
//
// Templ adapts a node into a templ.Component for use inside templ pages.
package render
