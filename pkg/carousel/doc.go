// Package carousel implements the carousel selection controller.
//
// A Controller wraps a sliding-window Engine. It never computes slide
// positions itself: on attach and on every "select" notification it reads
// the selected snap, the snap count and the two boundary flags back from the
// engine, and navigation commands are forwarded unchanged.
//
//	engine := carousel.NewSnapEngine(5, carousel.Options{Loop: false})
//	c := carousel.New(carousel.WithAPI(func(api *carousel.API) { ... }))
//	c.Attach(engine)
//	defer c.Detach()
//
//	c.ScrollNext()
//	c.SelectedIndex() // 1
//
// # Keyboard
//
// HandleKey maps ArrowLeft/ArrowRight (horizontal) or ArrowUp/ArrowDown
// (vertical) to ScrollPrev/ScrollNext and reports whether the browser's
// default action should be suppressed.
//
// # Autoplay
//
// Autoplay advances an attached carousel on a fixed interval and wraps to
// the first slide when the engine cannot scroll further.
package carousel
