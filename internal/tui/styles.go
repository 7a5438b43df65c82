package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/vangoui/pkg/toast"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	infoColor    = lipgloss.Color("39")  // Blue
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	slideStyle = lipgloss.NewStyle().
			Width(9).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Foreground(mutedColor)

	selectedSlideStyle = slideStyle.
				BorderForeground(primaryColor).
				Foreground(primaryColor).
				Bold(true)

	arrowStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	disabledArrowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238")).
				Padding(0, 1)

	indicatorStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	toastStyle = lipgloss.NewStyle().
			Width(40).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true)

	toastTitleStyle = lipgloss.NewStyle().Bold(true)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

func variantColor(v toast.Variant) lipgloss.Color {
	switch v {
	case toast.VariantSuccess:
		return successColor
	case toast.VariantError:
		return errorColor
	case toast.VariantWarning:
		return warningColor
	default:
		return infoColor
	}
}

func variantIcon(v toast.Variant) string {
	switch v {
	case toast.VariantSuccess:
		return "✓"
	case toast.VariantError:
		return "✗"
	case toast.VariantWarning:
		return "!"
	default:
		return "i"
	}
}
