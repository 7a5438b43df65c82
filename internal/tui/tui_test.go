package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/toast"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestCarouselNavigation(t *testing.T) {
	m := NewModel(sched.NewFake(), Options{})
	assert.Contains(t, m.View(), "Slide 1 of 5")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	assert.Equal(t, 3, m.Carousel().SelectedIndex())
	assert.Contains(t, m.View(), "Slide 4 of 5")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Carousel().SelectedIndex())

	// Vertical keys do nothing on a horizontal carousel.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Carousel().SelectedIndex())

	m = send(t, m, runes("5"))
	assert.Equal(t, 4, m.Carousel().SelectedIndex())
	assert.False(t, m.Carousel().CanScrollNext())

	m = send(t, m, runes("9"))
	assert.Equal(t, 4, m.Carousel().SelectedIndex(), "out of range jumps are clamped")
}

func TestVerticalCarousel(t *testing.T) {
	m := NewModel(sched.NewFake(), Options{
		Slides:      []string{"A", "B", "C"},
		Orientation: carousel.Vertical,
	})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Carousel().SelectedIndex())
	assert.Contains(t, m.View(), "▼")
}

func TestToastLifecycle(t *testing.T) {
	clock := sched.NewFake()
	m := NewModel(clock, Options{
		ToasterOptions: []toast.ToasterOption{
			toast.WithDefaults(toast.WithDelay(2 * time.Second)),
			toast.WithLimit(2),
		},
	})

	m = send(t, m, runes("t"))
	require.Equal(t, 1, m.Toaster().Len())
	assert.Contains(t, m.View(), "Notification #1")

	clock.Advance(time.Second)
	m = send(t, m, runes("t"), runes("t"))
	assert.Equal(t, 2, m.Toaster().Len(), "limit evicts the oldest")
	assert.NotContains(t, m.View(), "Notification #1")

	m = send(t, m, runes("x"))
	assert.Equal(t, 1, m.Toaster().Len())
	assert.Contains(t, m.View(), "Notification #2")
	assert.NotContains(t, m.View(), "Notification #3")

	clock.Advance(2 * time.Second)
	assert.Zero(t, m.Toaster().Len())
	assert.NotContains(t, m.View(), "Notification #2")
}

func TestAutoplay(t *testing.T) {
	clock := sched.NewFake()
	m := NewModel(clock, Options{Autoplay: time.Second})
	require.NotNil(t, m.Autoplay())
	assert.Contains(t, m.View(), "playing")

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, m.Carousel().SelectedIndex())

	m = send(t, m, runes("p"))
	assert.False(t, m.Autoplay().Playing())
	assert.Contains(t, m.View(), "paused")

	clock.Advance(5 * time.Second)
	assert.Equal(t, 2, m.Carousel().SelectedIndex())
}

func TestRunMsgExecutesOnUpdate(t *testing.T) {
	m := NewModel(sched.NewFake(), Options{})
	ran := false
	send(t, m, runMsg(func() { ran = true }))
	assert.True(t, ran)
}

func TestQuitTearsDown(t *testing.T) {
	clock := sched.NewFake()
	m := NewModel(clock, Options{Autoplay: time.Second})
	m = send(t, m, runes("t"))

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.False(t, m.Carousel().Attached())
	assert.False(t, m.Autoplay().Playing())
	assert.Zero(t, m.Toaster().Len())
	assert.Zero(t, clock.Pending())
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(sched.NewFake(), Options{})
	short := m.View()
	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}

func TestDispatcherWithoutProgram(t *testing.T) {
	d := &programDispatcher{}
	called := false
	d.Dispatch(func() { called = true })
	assert.False(t, called)
}
