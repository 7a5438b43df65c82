package carousel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func TestAttachReadsEngine(t *testing.T) {
	engine := vtest.NewFakeEngine(5, false)
	c := carousel.New()
	require.False(t, c.Attached())

	c.Attach(engine)
	st := c.State()
	assert.True(t, st.Attached)
	assert.Equal(t, 5, st.SlideCount)
	assert.Equal(t, 0, st.SelectedIndex)
	assert.False(t, st.CanScrollPrev)
	assert.True(t, st.CanScrollNext)
	assert.Equal(t, 1, engine.Listeners(carousel.EventSelect))
}

func TestScrollNextThreeTimes(t *testing.T) {
	engine := vtest.NewFakeEngine(5, false)
	c := carousel.New()
	c.Attach(engine)

	var seen []int
	c.OnSelect(func(st carousel.State) { seen = append(seen, st.SelectedIndex) })

	c.ScrollNext()
	c.ScrollNext()
	c.ScrollNext()

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 3, c.SelectedIndex())
	assert.True(t, c.CanScrollPrev())
	assert.True(t, c.CanScrollNext())
}

func TestIndexStaysInBounds(t *testing.T) {
	for _, loop := range []bool{false, true} {
		engine := carousel.NewSnapEngine(6, carousel.Options{Loop: loop})
		c := carousel.New()
		c.Attach(engine)

		violations := 0
		c.OnSelect(func(st carousel.State) {
			if st.SelectedIndex < 0 || st.SelectedIndex >= st.SlideCount {
				violations++
			}
		})

		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			switch rng.Intn(3) {
			case 0:
				c.ScrollNext()
			case 1:
				c.ScrollPrev()
			default:
				c.ScrollTo(rng.Intn(20) - 10)
			}
		}
		assert.Zero(t, violations, "loop=%v", loop)
	}
}

func TestBoundaryFlagsWithoutLoop(t *testing.T) {
	engine := carousel.NewSnapEngine(4, carousel.Options{})
	c := carousel.New()
	c.Attach(engine)

	assert.Equal(t, 0, c.SelectedIndex())
	assert.False(t, c.CanScrollPrev())
	assert.True(t, c.CanScrollNext())

	c.ScrollTo(3)
	assert.Equal(t, 3, c.SelectedIndex())
	assert.True(t, c.CanScrollPrev())
	assert.False(t, c.CanScrollNext())

	// At the boundary navigation is a harmless no-op.
	c.ScrollNext()
	assert.Equal(t, 3, c.SelectedIndex())
}

func TestScrollToPassesIndexThrough(t *testing.T) {
	engine := vtest.NewFakeEngine(3, false)
	c := carousel.New()
	c.Attach(engine)

	c.ScrollTo(42)
	c.ScrollTo(-1)

	assert.Equal(t, []string{"to(42)", "to(-1)"}, engine.Calls())
	assert.Equal(t, 0, c.SelectedIndex())
}

func TestDetachStopsUpdates(t *testing.T) {
	engine := vtest.NewFakeEngine(5, false).Manual()
	c := carousel.New()
	c.Attach(engine)

	engine.Set(2, true, true)
	engine.Emit(carousel.EventSelect)
	require.Equal(t, 2, c.SelectedIndex())

	c.Detach()
	assert.Equal(t, 0, engine.Listeners(carousel.EventSelect))

	engine.Set(4, true, false)
	engine.Emit(carousel.EventSelect)
	assert.Equal(t, 2, c.SelectedIndex())
	assert.True(t, c.CanScrollNext())
	assert.False(t, c.Attached())

	c.ScrollNext()
	assert.Empty(t, engine.Calls())
}

// leakyEngine keeps its listeners after unsubscribe.
type leakyEngine struct {
	*vtest.FakeEngine
	kept []func()
}

func (e *leakyEngine) On(event string, fn func()) func() {
	e.kept = append(e.kept, fn)
	return func() {}
}

func TestDetachIgnoresLateEvents(t *testing.T) {
	engine := &leakyEngine{FakeEngine: vtest.NewFakeEngine(5, false).Manual()}
	c := carousel.New()
	c.Attach(engine)
	c.Detach()

	engine.Set(3, true, true)
	for _, fn := range engine.kept {
		fn()
	}
	assert.Equal(t, 0, c.SelectedIndex())
	assert.False(t, c.Attached())
}

func TestZeroSlides(t *testing.T) {
	engine := vtest.NewFakeEngine(0, false)
	engine.Set(0, true, true)
	c := carousel.New()
	c.Attach(engine)

	st := c.State()
	assert.True(t, st.Attached)
	assert.Zero(t, st.SlideCount)
	assert.False(t, st.CanScrollPrev)
	assert.False(t, st.CanScrollNext)

	c.ScrollNext()
	c.ScrollPrev()
	c.ScrollTo(1)
	assert.Empty(t, engine.Calls())

	html := vtest.RenderToString(c.Render())
	assert.NotContains(t, html, "Slide 1 of 0")
}

func TestUnattachedNavigationIsNoop(t *testing.T) {
	c := carousel.New()
	c.ScrollNext()
	c.ScrollPrev()
	c.ScrollTo(2)
	assert.False(t, c.HandleKey(vdom.KeyboardEvent{Key: vdom.KeyEnter}))
	assert.Equal(t, carousel.State{}, c.State())
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		orientation carousel.Orientation
		key         string
		prevented   bool
		calls       []string
	}{
		{carousel.Horizontal, vdom.KeyArrowRight, true, []string{"next"}},
		{carousel.Horizontal, vdom.KeyArrowLeft, true, []string{"prev"}},
		{carousel.Horizontal, vdom.KeyArrowDown, false, nil},
		{carousel.Vertical, vdom.KeyArrowDown, true, []string{"next"}},
		{carousel.Vertical, vdom.KeyArrowUp, true, []string{"prev"}},
		{carousel.Vertical, vdom.KeyArrowRight, false, nil},
		{carousel.Horizontal, vdom.KeySpace, false, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.orientation)+"/"+tt.key, func(t *testing.T) {
			engine := vtest.NewFakeEngine(3, true)
			c := carousel.New(carousel.WithOrientation(tt.orientation))
			c.Attach(engine)

			assert.Equal(t, tt.prevented, c.HandleKey(vdom.KeyboardEvent{Key: tt.key}))
			if tt.calls == nil {
				assert.Empty(t, engine.Calls())
			} else {
				assert.Equal(t, tt.calls, engine.Calls())
			}
		})
	}
}

func TestSetAPI(t *testing.T) {
	var api *carousel.API
	c := carousel.New(carousel.WithAPI(func(a *carousel.API) { api = a }))
	require.Nil(t, api)

	engine := vtest.NewFakeEngine(5, false)
	c.Attach(engine)
	require.NotNil(t, api)
	assert.Same(t, c.API(), api)

	current := 0
	api.OnSelect(func(st carousel.State) { current = st.SelectedIndex + 1 })
	api.ScrollTo(2)
	assert.Equal(t, 3, current)
	assert.Equal(t, 5, api.SlideCount())
	assert.Equal(t, 2, api.SelectedIndex())
	assert.True(t, api.CanScrollPrev())

	api.ScrollPrev()
	api.ScrollNext()
	api.ScrollNext()
	assert.Equal(t, 3, api.SelectedIndex())
}

func TestReattachSwitchesEngine(t *testing.T) {
	first := vtest.NewFakeEngine(3, false)
	second := vtest.NewFakeEngine(7, false)
	c := carousel.New()

	c.Attach(first)
	c.Attach(second)
	assert.Equal(t, 0, first.Listeners(carousel.EventSelect))
	assert.Equal(t, 7, c.SlideCount())
}

func TestReInitRereadsCount(t *testing.T) {
	engine := carousel.NewSnapEngine(5, carousel.Options{})
	c := carousel.New()
	c.Attach(engine)
	c.ScrollTo(4)

	engine.ReInit(3, carousel.Options{})
	assert.Equal(t, 3, c.SlideCount())
	assert.Equal(t, 2, c.SelectedIndex())
	assert.False(t, c.CanScrollNext())
}
