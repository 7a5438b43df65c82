package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Options configures the preview.
type Options struct {
	// Slides are the carousel labels. Empty means "1".."5".
	Slides []string

	Orientation carousel.Orientation
	Carousel    carousel.Options

	// Autoplay advances the carousel at this interval. Zero disables it.
	Autoplay time.Duration

	// ToasterOptions are applied to the toaster, usually from config.
	ToasterOptions []toast.ToasterOption

	Logger *slog.Logger
}

// runMsg carries a timer callback onto the Update goroutine.
type runMsg func()

// Model is the bubbletea model of the preview. The controllers it holds
// are only touched from Update, either directly for keys or through
// runMsg for timers.
type Model struct {
	keys keyMap
	help help.Model

	toaster  *toast.Toaster
	carousel *carousel.Controller
	autoplay *carousel.Autoplay
	slides   []string

	pushed int
	width  int
}

// NewModel builds the controllers on s. In a running program s must deliver
// callbacks through Program.Send; see Run.
func NewModel(s sched.Scheduler, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	slides := opts.Slides
	if len(slides) == 0 {
		slides = []string{"1", "2", "3", "4", "5"}
	}

	ctrl := carousel.New(
		carousel.WithOrientation(opts.Orientation),
		carousel.WithOptions(opts.Carousel),
		carousel.WithLogger(logger),
	)
	ctrl.Attach(carousel.NewSnapEngine(len(slides), opts.Carousel))

	topts := append([]toast.ToasterOption{toast.WithToasterLogger(logger)}, opts.ToasterOptions...)
	m := Model{
		keys:     defaultKeyMap(),
		help:     help.New(),
		toaster:  toast.NewToaster(s, topts...),
		carousel: ctrl,
		slides:   slides,
		width:    80,
	}
	if opts.Autoplay > 0 {
		m.autoplay = carousel.NewAutoplay(s, ctrl, opts.Autoplay)
		m.autoplay.Play()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.carousel.HandleKey(vdom.KeyboardEvent{Key: vdom.KeyArrowLeft})
	case key.Matches(msg, m.keys.Next):
		m.carousel.HandleKey(vdom.KeyboardEvent{Key: vdom.KeyArrowRight})
	case key.Matches(msg, m.keys.Up):
		m.carousel.HandleKey(vdom.KeyboardEvent{Key: vdom.KeyArrowUp})
	case key.Matches(msg, m.keys.Down):
		m.carousel.HandleKey(vdom.KeyboardEvent{Key: vdom.KeyArrowDown})

	case key.Matches(msg, m.keys.Toast):
		m.pushed++
		variant := toast.Variants[(m.pushed-1)%len(toast.Variants)]
		m.toaster.Push(
			toast.WithVariant(variant),
			toast.WithTitle(fmt.Sprintf("Notification #%d", m.pushed)),
			toast.WithMessage("Pushed from the terminal preview."),
			toast.WithAutoClose(true),
		)

	case key.Matches(msg, m.keys.Close):
		if ts := m.toaster.Toasts(); len(ts) > 0 {
			ts[len(ts)-1].Close()
		}

	case key.Matches(msg, m.keys.Autoplay):
		if m.autoplay != nil {
			m.autoplay.Toggle()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		// Digits jump to a slide.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 {
			m.carousel.ScrollTo(n - 1)
		}
	}
	return m, nil
}

// Teardown cancels toast timers, stops autoplay and detaches the carousel.
func (m Model) Teardown() {
	m.toaster.TeardownAll()
	if m.autoplay != nil {
		m.autoplay.Stop()
	}
	m.carousel.Detach()
}

// Toaster returns the preview's toaster.
func (m Model) Toaster() *toast.Toaster { return m.toaster }

// Carousel returns the preview's carousel controller.
func (m Model) Carousel() *carousel.Controller { return m.carousel }

// Autoplay returns the autoplay driver, or nil when disabled.
func (m Model) Autoplay() *carousel.Autoplay { return m.autoplay }
