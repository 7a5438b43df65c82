package carousel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/sched"
)

func TestAutoplayAdvancesAndWraps(t *testing.T) {
	clock := sched.NewFake()
	engine := carousel.NewSnapEngine(3, carousel.Options{})
	c := carousel.New()
	c.Attach(engine)

	ap := carousel.NewAutoplay(clock, c.API(), 3*time.Second)
	assert.False(t, ap.Playing())
	ap.Play()
	assert.True(t, ap.Playing())

	var seen []int
	for i := 0; i < 4; i++ {
		clock.Advance(3 * time.Second)
		seen = append(seen, c.SelectedIndex())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
}

func TestAutoplayPauseAndToggle(t *testing.T) {
	clock := sched.NewFake()
	engine := carousel.NewSnapEngine(5, carousel.Options{})
	c := carousel.New()
	c.Attach(engine)

	ap := carousel.NewAutoplay(clock, c, 0)
	assert.Equal(t, carousel.DefaultAutoplayInterval, ap.Interval())

	assert.True(t, ap.Toggle())
	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, 0, c.SelectedIndex())
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.SelectedIndex())

	assert.False(t, ap.Toggle())
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.SelectedIndex())

	ap.Play()
	ap.Play()
	assert.Equal(t, 1, clock.Pending())
}

func TestAutoplayStop(t *testing.T) {
	clock := sched.NewFake()
	c := carousel.New()
	c.Attach(carousel.NewSnapEngine(3, carousel.Options{}))

	ap := carousel.NewAutoplay(clock, c, time.Second)
	ap.Play()
	ap.Stop()
	ap.Play()

	assert.False(t, ap.Playing())
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.SelectedIndex())
}

func TestAutoplayAfterDetach(t *testing.T) {
	clock := sched.NewFake()
	c := carousel.New()
	c.Attach(carousel.NewSnapEngine(3, carousel.Options{}))
	ap := carousel.NewAutoplay(clock, c, time.Second)
	ap.Play()

	clock.Advance(time.Second)
	c.Detach()
	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, c.SelectedIndex())
}
