package ui

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// BadgeVariant selects a badge colour.
type BadgeVariant string

const (
	BadgeNeutralVariant BadgeVariant = "neutral"
	BadgeSuccessVariant BadgeVariant = "success"
	BadgeErrorVariant   BadgeVariant = "error"
	BadgeWarningVariant BadgeVariant = "warning"
	BadgeInfoVariant    BadgeVariant = "info"
)

// ParseBadgeVariant converts a string to a BadgeVariant. The empty string
// is neutral.
func ParseBadgeVariant(s string) (BadgeVariant, error) {
	switch v := BadgeVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return BadgeNeutralVariant, nil
	case BadgeNeutralVariant, BadgeSuccessVariant, BadgeErrorVariant, BadgeWarningVariant, BadgeInfoVariant:
		return v, nil
	default:
		return "", fmt.Errorf("ui: unknown badge variant %q", s)
	}
}

// BadgeOption configures a Badge component.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	variant   BadgeVariant
	size      Size
	className string
	text      string
	children  []any
}

// BadgeWithVariant sets the badge variant.
func BadgeWithVariant(v BadgeVariant) BadgeOption {
	return func(c *badgeConfig) { c.variant = v }
}

// BadgeSuccess sets the success variant.
func BadgeSuccess() BadgeOption { return BadgeWithVariant(BadgeSuccessVariant) }

// BadgeError sets the error variant.
func BadgeError() BadgeOption { return BadgeWithVariant(BadgeErrorVariant) }

// BadgeWarning sets the warning variant.
func BadgeWarning() BadgeOption { return BadgeWithVariant(BadgeWarningVariant) }

// BadgeInfo sets the info variant.
func BadgeInfo() BadgeOption { return BadgeWithVariant(BadgeInfoVariant) }

// BadgeSize sets the badge size.
func BadgeSize(s Size) BadgeOption {
	return func(c *badgeConfig) { c.size = s }
}

// BadgeClass adds additional CSS classes.
func BadgeClass(className string) BadgeOption {
	return func(c *badgeConfig) { c.className = className }
}

// BadgeText sets the badge text.
func BadgeText(text string) BadgeOption {
	return func(c *badgeConfig) { c.text = text }
}

// BadgeChildren sets the badge children.
func BadgeChildren(children ...any) BadgeOption {
	return func(c *badgeConfig) { c.children = children }
}

func badgeVariantClass(v BadgeVariant) string {
	switch v {
	case BadgeSuccessVariant:
		return "bg-green-100 text-green-800 border-green-200"
	case BadgeErrorVariant:
		return "bg-red-100 text-red-800 border-red-200"
	case BadgeWarningVariant:
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case BadgeInfoVariant:
		return "bg-blue-100 text-blue-800 border-blue-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}

func badgeSizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "px-2 py-0.5 text-xs"
	case SizeLg:
		return "px-3 py-1 text-base"
	default:
		return "px-2.5 py-0.5 text-sm"
	}
}

// Badge renders a badge/tag element.
func Badge(opts ...BadgeOption) *vdom.VNode {
	cfg := badgeConfig{variant: BadgeNeutralVariant, size: SizeMd}
	for _, opt := range opts {
		opt(&cfg)
	}

	return vdom.Span(
		vdom.Class(
			"inline-flex items-center rounded-full border font-medium",
			badgeVariantClass(cfg.variant),
			badgeSizeClass(cfg.size),
			cfg.className,
		),
		vdom.If(cfg.text != "", vdom.Text(cfg.text)),
		cfg.children,
	)
}
