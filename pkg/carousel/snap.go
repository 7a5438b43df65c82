package carousel

import (
	"sync"
)

// SnapEngine is an in-process Engine over a fixed number of slides. It keeps
// a snap list derived from the slide count, SlidesPerView and Align, clamps
// or wraps navigation, and emits "select" whenever the selection changes.
type SnapEngine struct {
	mu        sync.Mutex
	slides    int
	opts      Options
	snaps     int
	selected  int
	listeners map[string]map[int]func()
	nextID    int
}

// NewSnapEngine creates an engine for slides slides.
func NewSnapEngine(slides int, opts Options) *SnapEngine {
	e := &SnapEngine{listeners: make(map[string]map[int]func())}
	e.configure(slides, opts)
	e.selected = e.clamp(opts.StartIndex)
	return e
}

func (e *SnapEngine) configure(slides int, opts Options) {
	if slides < 0 {
		slides = 0
	}
	if opts.SlidesPerView < 1 {
		opts.SlidesPerView = 1
	}
	if opts.SlidesToScroll < 1 {
		opts.SlidesToScroll = 1
	}
	if opts.Align == "" {
		opts.Align = AlignStart
	}
	e.slides = slides
	e.opts = opts

	switch {
	case slides == 0:
		e.snaps = 0
	case opts.Loop || opts.Align != AlignStart:
		e.snaps = ceilDiv(slides, opts.SlidesToScroll)
	default:
		// Trailing snaps that would leave empty space are trimmed.
		last := slides - opts.SlidesPerView
		if last < 0 {
			last = 0
		}
		e.snaps = ceilDiv(last, opts.SlidesToScroll) + 1
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (e *SnapEngine) clamp(i int) int {
	if e.snaps == 0 {
		return 0
	}
	if e.opts.Loop {
		i %= e.snaps
		if i < 0 {
			i += e.snaps
		}
		return i
	}
	if i < 0 {
		return 0
	}
	if i >= e.snaps {
		return e.snaps - 1
	}
	return i
}

// Options returns the effective options.
func (e *SnapEngine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SlideCount returns the number of slides, which may exceed the snap count.
func (e *SnapEngine) SlideCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slides
}

// SelectedScrollSnap implements Engine.
func (e *SnapEngine) SelectedScrollSnap() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// ScrollSnapList implements Engine.
func (e *SnapEngine) ScrollSnapList() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := make([]float64, e.snaps)
	for i := range list {
		if e.snaps > 1 {
			list[i] = float64(i) / float64(e.snaps-1)
		}
	}
	return list
}

// CanScrollPrev implements Engine.
func (e *SnapEngine) CanScrollPrev() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opts.Loop {
		return e.snaps > 1
	}
	return e.selected > 0
}

// CanScrollNext implements Engine.
func (e *SnapEngine) CanScrollNext() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opts.Loop {
		return e.snaps > 1
	}
	return e.selected < e.snaps-1
}

// ScrollNext implements Engine.
func (e *SnapEngine) ScrollNext() { e.scrollBy(1) }

// ScrollPrev implements Engine.
func (e *SnapEngine) ScrollPrev() { e.scrollBy(-1) }

func (e *SnapEngine) scrollBy(delta int) {
	e.mu.Lock()
	target := e.selected + delta
	e.mu.Unlock()
	e.ScrollTo(target)
}

// ScrollTo implements Engine. Out-of-range indexes are clamped, or wrapped
// when looping.
func (e *SnapEngine) ScrollTo(index int) {
	e.mu.Lock()
	if e.snaps == 0 {
		e.mu.Unlock()
		return
	}
	next := e.clamp(index)
	changed := next != e.selected
	e.selected = next
	e.mu.Unlock()

	if changed {
		e.emit(EventSelect)
	}
}

// ReInit replaces the slide count and options, keeping the selection when
// it is still valid. It emits "reInit" followed by "select".
func (e *SnapEngine) ReInit(slides int, opts Options) {
	e.mu.Lock()
	e.configure(slides, opts)
	e.selected = e.clamp(e.selected)
	e.mu.Unlock()

	e.emit(EventReInit)
	e.emit(EventSelect)
}

// On implements Engine.
func (e *SnapEngine) On(event string, listener func()) (off func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	if e.listeners[event] == nil {
		e.listeners[event] = make(map[int]func())
	}
	e.listeners[event][id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.listeners[event], id)
			e.mu.Unlock()
		})
	}
}

func (e *SnapEngine) emit(event string) {
	e.mu.Lock()
	ids := sortedKeys(e.listeners[event])
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, e.listeners[event][id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
