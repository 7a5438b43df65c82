package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/vangoui/pkg/carousel"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VangoUI preview"))
	b.WriteString("\n")
	b.WriteString(m.carouselView())
	b.WriteString("\n")
	if toasts := m.toastsView(); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) carouselView() string {
	st := m.carousel.State()
	vertical := m.carousel.Orientation() == carousel.Vertical

	cells := make([]string, len(m.slides))
	for i, label := range m.slides {
		if i == st.SelectedIndex && st.SlideCount > 0 {
			cells[i] = selectedSlideStyle.Render(label)
		} else {
			cells[i] = slideStyle.Render(label)
		}
	}

	prev, next := "◀", "▶"
	if vertical {
		prev, next = "▲", "▼"
	}
	prev = arrow(prev, st.CanScrollPrev)
	next = arrow(next, st.CanScrollNext)

	var track string
	if vertical {
		track = lipgloss.JoinVertical(lipgloss.Center, prev, lipgloss.JoinVertical(lipgloss.Center, cells...), next)
	} else {
		track = lipgloss.JoinHorizontal(lipgloss.Center, prev, lipgloss.JoinHorizontal(lipgloss.Center, cells...), next)
	}

	status := "no slides"
	if st.SlideCount > 0 {
		status = fmt.Sprintf("Slide %d of %d", st.SelectedIndex+1, st.SlideCount)
	}
	if m.autoplay != nil {
		if m.autoplay.Playing() {
			status += " · playing"
		} else {
			status += " · paused"
		}
	}
	return track + "\n" + indicatorStyle.Render(status)
}

func arrow(glyph string, enabled bool) string {
	if enabled {
		return arrowStyle.Render(glyph)
	}
	return disabledArrowStyle.Render(glyph)
}

func (m Model) toastsView() string {
	toasts := m.toaster.Toasts()
	if len(toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(toasts))
	// Newest first, like a stack.
	for i := len(toasts) - 1; i >= 0; i-- {
		cfg := toasts[i].Config()
		color := variantColor(cfg.Variant)

		head := variantIcon(cfg.Variant)
		if cfg.Title != "" {
			head += " " + toastTitleStyle.Render(cfg.Title)
		}
		body := head
		if cfg.Message != "" {
			body += "\n" + cfg.Message
		}
		rendered = append(rendered, toastStyle.BorderForeground(color).Foreground(color).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
