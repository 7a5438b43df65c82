// Package vtest provides testing helpers for VangoUI components.
//
// The vtest package reduces boilerplate when testing components by
// providing render assertions, event helpers, a simulated live session and
// a scripted carousel engine.
//
// # Quick Start
//
//	func TestToastCloses(t *testing.T) {
//	    closed := false
//	    tst := toast.New(sched.NewFake(), toast.OnClose(func() { closed = true }))
//	    vtest.ExpectContains(t, tst.Render(), "Close notification")
//
//	    vtest.Click(t, tst.Render(), "Close notification")
//	    if !closed {
//	        t.Error("expected OnClose")
//	    }
//	    vtest.ExpectEmpty(t, tst.Render())
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, "Slide 1 of 5")
//	vtest.ExpectNotContains(t, node, "disabled")
//	vtest.ExpectAttribute(t, node, "role", "region")
//
// # Sessions
//
// A Session renders with hydration ids and dispatches events by id the way
// the gallery's live endpoint does. Its fake clock drives timers:
//
//	sess := vtest.NewSession(nil)
//	tst := toast.New(sess.Clock, toast.AutoClose(3*time.Second))
//	sess.SetView(tst.Render)
//	sess.Render()
//	html := sess.Advance(3 * time.Second) // ""
//
// # Carousel Engines
//
// FakeEngine reports a scripted snap count, index and boundary flags:
//
//	engine := vtest.NewFakeEngine(5, false)
//	c := carousel.New()
//	c.Attach(engine)
//	c.ScrollNext()
//	engine.Calls() // ["next"]
package vtest
