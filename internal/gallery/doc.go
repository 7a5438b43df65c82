// Package gallery serves the story catalog over HTTP.
//
// Routes:
//
//	GET /                      index of stories grouped by kind
//	GET /stories/{id}          story page, first render cached per story
//	GET /stories/{id}/fragment story markup alone
//	GET /live/{id}             WebSocket live session
//	GET /metrics               Prometheus metrics, when enabled
//	GET /healthz               liveness
//
// # Live sessions
//
// Each connection gets its own story instance and its own sched.Loop.
// Client frames name a hydration id and an event:
//
//	{"hid":"h3","event":"click"}
//	{"hid":"h1","event":"keydown","key":"ArrowRight"}
//	{"hid":"h2","event":"input","value":"ada@example.com"}
//
// The handler runs on the loop, the story is re-rendered and pushed as
// {"type":"html","html":"..."}. Toast and autoplay timers are delivered to
// the same loop, so handlers and timers never run concurrently. Closing the
// connection tears the instance down.
package gallery
