package stories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Stories)
	assert.Equal(t, DefaultSource, c.Source())

	byKind := c.ByKind()
	for _, k := range Kinds {
		assert.NotEmptyf(t, byKind[k], "embedded catalog has no %s story", k)
	}

	ids := c.IDs()
	assert.IsNonDecreasing(t, ids)
	assert.Len(t, ids, len(c.List()))
}

func TestEveryStoryBuildsAndRenders(t *testing.T) {
	for _, s := range Default().List() {
		t.Run(s.ID, func(t *testing.T) {
			in, err := Build(s, sched.NewFake())
			require.NoError(t, err)
			defer in.Teardown()

			html := vtest.RenderToString(in.Render())
			assert.Contains(t, html, `data-story="`+s.ID+`"`)
			assert.Contains(t, html, `data-kind="`+string(s.Kind)+`"`)
		})
	}
}

func TestGet(t *testing.T) {
	c := Default()

	s, err := c.Get("carousel-basic")
	require.NoError(t, err)
	assert.Equal(t, KindCarousel, s.Kind)
	assert.Positive(t, s.Line())

	_, err = c.Get("nope")
	assert.True(t, errors.HasCode(err, "E112"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
		line int
	}{
		{
			name: "syntax",
			yaml: "version: 1\nstories:\n  - id: a\n   title: broken\n",
			code: "E110",
		},
		{
			name: "bad version",
			yaml: "version: 2\nstories:\n  - {id: a, title: A, kind: badge, args: {text: x}}\n",
			code: "E111",
		},
		{
			name: "bad id",
			yaml: "version: 1\nstories:\n  - {id: Bad_Id, title: A, kind: badge, args: {text: x}}\n",
			code: "E111",
			line: 3,
		},
		{
			name: "unknown kind",
			yaml: "version: 1\nstories:\n  - {id: a, title: A, kind: slider}\n",
			code: "E111",
			line: 3,
		},
		{
			name: "duplicate",
			yaml: "version: 1\nstories:\n  - {id: a, title: A, kind: badge, args: {text: x}}\n  - {id: a, title: B, kind: badge, args: {text: y}}\n",
			code: "E113",
			line: 4,
		},
		{
			name: "invalid args",
			yaml: "version: 1\nstories:\n  - id: a\n    title: A\n    kind: toast\n    args:\n      message: hi\n      variant: purple\n",
			code: "E114",
			line: 7,
		},
		{
			name: "missing required arg",
			yaml: "version: 1\nstories:\n  - {id: a, title: A, kind: breadcrumb}\n",
			code: "E114",
			line: 3,
		},
		{
			name: "bad carousel align",
			yaml: "version: 1\nstories:\n  - {id: a, title: A, kind: carousel, args: {count: 3, align: left}}\n",
			code: "E114",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			require.Error(t, err)
			assert.Truef(t, errors.HasCode(err, tt.code), "got %v, want %s", err, tt.code)

			if tt.line > 0 {
				e := errors.FromError(err, "")
				require.NotNil(t, e.Location)
				assert.Equal(t, tt.line, e.Location.Line)
				assert.Equal(t, "test.yaml", e.Location.File)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSource, c.Source())

	_, err = Open(t.TempDir() + "/missing.yaml")
	assert.True(t, errors.HasCode(err, "E110"))
}

func mustBuild(t *testing.T, id string, s sched.Scheduler, opts ...BuildOption) *Instance {
	t.Helper()
	story, err := Default().Get(id)
	require.NoError(t, err)
	in, err := Build(story, s, opts...)
	require.NoError(t, err)
	return in
}

func TestToastStoryClosesAtDelay(t *testing.T) {
	clock := sched.NewFake()
	changes := 0
	in := mustBuild(t, "toast-error", clock, OnChange(func() { changes++ }))
	defer in.Teardown()

	require.NotNil(t, in.Toaster)
	assert.Equal(t, 1, in.Toaster.Len())
	html := vtest.RenderToString(in.Render())
	assert.Contains(t, html, `aria-live="assertive"`)
	assert.Contains(t, html, "Upload failed")

	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, 1, in.Toaster.Len())

	before := changes
	clock.Advance(time.Millisecond)
	assert.Equal(t, 0, in.Toaster.Len())
	assert.Greater(t, changes, before)
	assert.NotContains(t, vtest.RenderToString(in.Render()), "Upload failed")
}

func TestToastStoryTriggerAndLimit(t *testing.T) {
	sess := vtest.NewSession(nil)
	in := mustBuild(t, "toast-stack", sess.Clock)
	sess.SetView(in.Render)

	sess.Render()
	assert.Equal(t, 0, in.Toaster.Len())

	for i := 0; i < 4; i++ {
		require.NoError(t, sess.Click("Add to cart"))
	}
	assert.Equal(t, 3, in.Toaster.Len())

	in.Teardown()
	sess.Advance(time.Minute)
	assert.Equal(t, 0, in.Toaster.Len())
}

func TestToastStoryTeardownCancelsTimers(t *testing.T) {
	clock := sched.NewFake()
	closed := 0
	in := mustBuild(t, "toast-success", clock,
		WithToasterOptions(toast.WithDefaults(toast.OnClose(func() { closed++ }))))

	clock.Advance(time.Second)
	in.Teardown()
	in.Teardown()
	clock.Advance(time.Minute)

	assert.Zero(t, closed)
	assert.Zero(t, clock.Pending())
}

func TestToastStoryPersistent(t *testing.T) {
	sess := vtest.NewSession(nil)
	in := mustBuild(t, "toast-persistent", sess.Clock)
	defer in.Teardown()
	sess.SetView(in.Render)

	html := sess.Advance(time.Hour)
	assert.Contains(t, html, "A new version is available.")

	require.NoError(t, sess.Click(toast.CloseLabel))
	assert.NotContains(t, sess.Render(), "A new version is available.")
}

func TestCarouselStoryNavigation(t *testing.T) {
	sess := vtest.NewSession(nil)
	in := mustBuild(t, "carousel-basic", sess.Clock)
	sess.SetView(in.Render)

	html := sess.Render()
	assert.Contains(t, html, "Slide 1 of 5")

	for i := 0; i < 3; i++ {
		require.NoError(t, sess.Click("Next slide"))
	}
	assert.Equal(t, 3, in.Carousel.SelectedIndex())
	assert.Contains(t, sess.Render(), "Slide 4 of 5")

	require.NoError(t, sess.Click("Go to slide 1"))
	assert.Equal(t, 0, in.Carousel.SelectedIndex())

	in.Teardown()
	assert.False(t, in.Carousel.Attached())
}

func TestCarouselStoryKeyboard(t *testing.T) {
	in := mustBuild(t, "carousel-vertical", sched.NewFake())
	defer in.Teardown()

	vtest.KeyDown(t, in.Render(), "Planets", "ArrowDown")
	assert.Equal(t, 1, in.Carousel.SelectedIndex())

	vtest.KeyDown(t, in.Render(), "Planets", "ArrowRight")
	assert.Equal(t, 1, in.Carousel.SelectedIndex(), "horizontal keys are ignored when vertical")
}

func TestCarouselStoryAutoplay(t *testing.T) {
	clock := sched.NewFake()
	changes := 0
	in := mustBuild(t, "carousel-autoplay", clock, OnChange(func() { changes++ }))

	require.NotNil(t, in.Autoplay)
	assert.True(t, in.Autoplay.Playing())

	clock.Advance(9 * time.Second)
	assert.Equal(t, 3, in.Carousel.SelectedIndex())
	clock.Advance(3 * time.Second)
	assert.Equal(t, 0, in.Carousel.SelectedIndex(), "autoplay wraps to the first slide")
	assert.Equal(t, 4, changes)

	vtest.Click(t, in.Render(), "Pause")
	assert.False(t, in.Autoplay.Playing())
	vtest.ExpectContains(t, in.Render(), ">Play<")

	in.Teardown()
	clock.Advance(time.Minute)
	assert.Equal(t, 0, in.Carousel.SelectedIndex())
	assert.Zero(t, clock.Pending())
}

func TestCarouselStoryEmpty(t *testing.T) {
	in := mustBuild(t, "carousel-empty", sched.NewFake())
	defer in.Teardown()

	assert.Equal(t, 0, in.Carousel.SlideCount())
	assert.False(t, in.Carousel.CanScrollPrev())
	assert.False(t, in.Carousel.CanScrollNext())

	tree := in.Render()
	for _, label := range []string{"Previous slide", "Next slide"} {
		btn := vtest.FindByLabel(tree, label)
		require.NotNil(t, btn, label)
		assert.Equal(t, true, btn.Props["disabled"], label)
	}
	assert.NotContains(t, vtest.RenderToString(tree), "Slide 1 of")
}

func TestButtonStoryCounter(t *testing.T) {
	sess := vtest.NewSession(nil)
	in := mustBuild(t, "button-default", sess.Clock)
	sess.SetView(in.Render)

	assert.Contains(t, sess.Render(), "Clicked 0 times")
	require.NoError(t, sess.Click("Click me"))
	require.NoError(t, sess.Click("Click me"))
	assert.Contains(t, sess.Render(), "Clicked 2 times")
}

func TestInputStoryValidates(t *testing.T) {
	sess := vtest.NewSession(nil)
	in := mustBuild(t, "input-email", sess.Clock)
	sess.SetView(in.Render)
	sess.Render()

	input := func() *vdom.VNode {
		return vdom.Find(sess.Tree(), func(n *vdom.VNode) bool { return n.Tag == "input" })
	}
	require.NotNil(t, input())

	require.NoError(t, sess.Dispatch(input().HID, vdom.Event{Type: "input", Value: "not-an-email"}))
	assert.Contains(t, sess.Render(), "Enter a valid email address")

	require.NoError(t, sess.Dispatch(input().HID, vdom.Event{Type: "input", Value: "ada@example.com"}))
	html := sess.Render()
	assert.NotContains(t, html, "Enter a valid email address")
	assert.Contains(t, html, `value="ada@example.com"`)
}

func TestStaticStories(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"badge-success", []string{"Active", "bg-green-100"}},
		{"card-full", []string{"Create project", "Deploy", "Updated 2 minutes ago"}},
		{"avatar-group", []string{"AL", "GH", "AT"}},
		{"breadcrumb-collapsed", []string{"Home", "…", `aria-current="page"`, "&gt;"}},
		{"textarea-counter", []string{"0 characters", `rows="4"`}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			in := mustBuild(t, tt.id, sched.NewFake())
			html := vtest.RenderToString(in.Render())
			for _, w := range tt.want {
				assert.Contains(t, html, w)
			}
		})
	}
}
