package vtest

import (
	"fmt"
	"sync"

	"github.com/vango-dev/vangoui/pkg/carousel"
)

// FakeEngine is a scripted carousel.Engine. By default navigation moves the
// selection within [0, count) and emits "select"; tests can also set the
// reported state directly and emit events by hand.
type FakeEngine struct {
	mu        sync.Mutex
	count     int
	index     int
	loop      bool
	prev      *bool
	next      *bool
	manual    bool
	calls     []string
	listeners map[string]map[int]func()
	nextID    int
}

// NewFakeEngine creates an engine reporting count snaps with the first
// selected.
func NewFakeEngine(count int, loop bool) *FakeEngine {
	return &FakeEngine{
		count:     count,
		loop:      loop,
		listeners: make(map[string]map[int]func()),
	}
}

// Manual stops navigation from changing the selection; the test drives it
// with Set and Emit.
func (f *FakeEngine) Manual() *FakeEngine {
	f.mu.Lock()
	f.manual = true
	f.mu.Unlock()
	return f
}

// Set overrides the reported index and boundary flags without emitting.
func (f *FakeEngine) Set(index int, canPrev, canNext bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index = index
	f.prev = &canPrev
	f.next = &canNext
}

// SetCount overrides the reported snap count without emitting.
func (f *FakeEngine) SetCount(count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count = count
}

// Calls returns the navigation calls received, e.g. "next", "prev",
// "to(7)".
func (f *FakeEngine) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Listeners returns the number of subscribers for event.
func (f *FakeEngine) Listeners(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners[event])
}

// SelectedScrollSnap implements carousel.Engine.
func (f *FakeEngine) SelectedScrollSnap() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index
}

// ScrollSnapList implements carousel.Engine.
func (f *FakeEngine) ScrollSnapList() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return make([]float64, f.count)
}

// CanScrollPrev implements carousel.Engine.
func (f *FakeEngine) CanScrollPrev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.prev != nil {
		return *f.prev
	}
	return f.count > 1 && (f.loop || f.index > 0)
}

// CanScrollNext implements carousel.Engine.
func (f *FakeEngine) CanScrollNext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.next != nil {
		return *f.next
	}
	return f.count > 1 && (f.loop || f.index < f.count-1)
}

// ScrollNext implements carousel.Engine.
func (f *FakeEngine) ScrollNext() { f.move("next", 1, false) }

// ScrollPrev implements carousel.Engine.
func (f *FakeEngine) ScrollPrev() { f.move("prev", -1, false) }

// ScrollTo implements carousel.Engine. Out-of-range indexes are ignored.
func (f *FakeEngine) ScrollTo(index int) { f.move(fmt.Sprintf("to(%d)", index), index, true) }

func (f *FakeEngine) move(call string, n int, absolute bool) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	if f.manual || f.count == 0 {
		f.mu.Unlock()
		return
	}
	target := n
	if !absolute {
		target = f.index + n
		if f.loop {
			target = (target%f.count + f.count) % f.count
		}
	}
	if target < 0 || target >= f.count || target == f.index {
		f.mu.Unlock()
		return
	}
	f.index = target
	f.prev, f.next = nil, nil
	f.mu.Unlock()

	f.Emit(carousel.EventSelect)
}

// On implements carousel.Engine.
func (f *FakeEngine) On(event string, listener func()) (off func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	if f.listeners[event] == nil {
		f.listeners[event] = make(map[int]func())
	}
	f.listeners[event][id] = listener
	return func() {
		f.mu.Lock()
		delete(f.listeners[event], id)
		f.mu.Unlock()
	}
}

// Emit calls every listener of event.
func (f *FakeEngine) Emit(event string) {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.listeners[event]))
	for _, fn := range f.listeners[event] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

var _ carousel.Engine = (*FakeEngine)(nil)
