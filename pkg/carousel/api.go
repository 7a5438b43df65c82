package carousel

// API is the handle published to code outside the carousel, such as dot
// indicators or a play/pause control. It can read state and navigate but
// cannot set the selection directly.
type API struct {
	c *Controller
}

// SelectedIndex returns the zero-based selected slide.
func (a *API) SelectedIndex() int { return a.c.SelectedIndex() }

// SlideCount returns the number of snap points.
func (a *API) SlideCount() int { return a.c.SlideCount() }

// CanScrollPrev reports whether a previous snap exists.
func (a *API) CanScrollPrev() bool { return a.c.CanScrollPrev() }

// CanScrollNext reports whether a next snap exists.
func (a *API) CanScrollNext() bool { return a.c.CanScrollNext() }

// ScrollNext navigates forward.
func (a *API) ScrollNext() { a.c.ScrollNext() }

// ScrollPrev navigates backward.
func (a *API) ScrollPrev() { a.c.ScrollPrev() }

// ScrollTo navigates to a snap.
func (a *API) ScrollTo(index int) { a.c.ScrollTo(index) }

// OnSelect registers fn to run after every selection refresh.
func (a *API) OnSelect(fn func(State)) (off func()) { return a.c.OnSelect(fn) }

// Navigator is the part of a carousel Autoplay drives. Both *Controller and
// *API implement it.
type Navigator interface {
	CanScrollNext() bool
	ScrollNext()
	ScrollTo(index int)
}

var (
	_ Navigator = (*Controller)(nil)
	_ Navigator = (*API)(nil)
)
