package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Scale is the none/small/medium/large scale used by card shadow and
// padding.
type Scale string

const (
	ScaleNone   Scale = "none"
	ScaleSmall  Scale = "small"
	ScaleMedium Scale = "medium"
	ScaleLarge  Scale = "large"
)

// CardOption configures a Card component.
type CardOption func(*cardConfig)

type cardConfig struct {
	title       string
	subtitle    string
	description string
	image       string
	actions     []any
	content     []any
	footer      []any
	shadow      Scale
	padding     Scale
	hoverable   bool
	className   string
}

// CardTitle sets the card heading.
func CardTitle(title string) CardOption {
	return func(c *cardConfig) { c.title = title }
}

// CardSubtitle sets the line under the heading.
func CardSubtitle(subtitle string) CardOption {
	return func(c *cardConfig) { c.subtitle = subtitle }
}

// CardDescription sets a muted description paragraph in the header.
func CardDescription(description string) CardOption {
	return func(c *cardConfig) { c.description = description }
}

// CardImage sets a cover image, using the title as alt text.
func CardImage(src string) CardOption {
	return func(c *cardConfig) { c.image = src }
}

// CardActions sets header actions shown next to the title.
func CardActions(actions ...any) CardOption {
	return func(c *cardConfig) { c.actions = actions }
}

// CardContent sets the card body.
func CardContent(children ...any) CardOption {
	return func(c *cardConfig) { c.content = children }
}

// CardFooter sets the footer, separated by a top border.
func CardFooter(children ...any) CardOption {
	return func(c *cardConfig) { c.footer = children }
}

// CardShadow sets the shadow scale.
func CardShadow(s Scale) CardOption {
	return func(c *cardConfig) { c.shadow = s }
}

// CardPadding sets the padding scale.
func CardPadding(s Scale) CardOption {
	return func(c *cardConfig) { c.padding = s }
}

// CardHoverable lifts the card on hover.
func CardHoverable() CardOption {
	return func(c *cardConfig) { c.hoverable = true }
}

// CardClass adds additional CSS classes.
func CardClass(className string) CardOption {
	return func(c *cardConfig) { c.className = className }
}

func shadowClass(s Scale) string {
	switch s {
	case ScaleNone:
		return ""
	case ScaleSmall:
		return "shadow-sm"
	case ScaleLarge:
		return "shadow-lg"
	default:
		return "shadow-md"
	}
}

func paddingClass(s Scale) string {
	switch s {
	case ScaleNone:
		return ""
	case ScaleSmall:
		return "p-2"
	case ScaleLarge:
		return "p-6"
	default:
		return "p-4"
	}
}

func hoverClass(hoverable bool) string {
	if hoverable {
		return "transition-shadow hover:shadow-lg"
	}
	return ""
}

// Card renders a card container.
func Card(opts ...CardOption) *vdom.VNode {
	cfg := cardConfig{shadow: ScaleMedium, padding: ScaleMedium}
	for _, opt := range opts {
		opt(&cfg)
	}

	hasHeader := cfg.title != "" || cfg.subtitle != "" || cfg.description != "" || len(cfg.actions) > 0

	return vdom.Div(
		vdom.Class(
			"bg-white rounded-2xl border border-gray-200",
			shadowClass(cfg.shadow),
			paddingClass(cfg.padding),
			hoverClass(cfg.hoverable),
			cfg.className,
		),
		vdom.If(cfg.image != "", vdom.Img(
			vdom.Src(cfg.image),
			vdom.Alt(cfg.title),
			vdom.Class("w-full h-48 object-cover rounded-t-2xl mb-4"),
		)),
		vdom.If(hasHeader, vdom.Div(
			vdom.Class("mb-4 flex justify-between items-start gap-2"),
			vdom.Div(
				vdom.If(cfg.title != "", vdom.H3(vdom.Class("text-xl font-semibold text-gray-900"), vdom.Text(cfg.title))),
				vdom.If(cfg.subtitle != "", vdom.P(vdom.Class("text-sm text-gray-500"), vdom.Text(cfg.subtitle))),
				vdom.If(cfg.description != "", vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Text(cfg.description))),
			),
			vdom.If(len(cfg.actions) > 0, vdom.Div(vdom.Class("flex gap-2"), cfg.actions)),
		)),
		vdom.Div(vdom.Class("mb-4"), cfg.content),
		vdom.If(len(cfg.footer) > 0, vdom.Div(vdom.Class("border-t pt-3 mt-4"), cfg.footer)),
	)
}
