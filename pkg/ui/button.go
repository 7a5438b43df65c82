package ui

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// ButtonVariant selects a button style.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonVariants lists every button variant.
var ButtonVariants = []ButtonVariant{ButtonDefault, ButtonDestructive, ButtonOutline, ButtonSecondary, ButtonGhost, ButtonLink}

// ParseButtonVariant converts a string to a ButtonVariant. "primary" and
// "danger" are accepted as aliases of default and destructive.
func ParseButtonVariant(s string) (ButtonVariant, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "default", "primary":
		return ButtonDefault, nil
	case "danger", "destructive":
		return ButtonDestructive, nil
	case "outline", "secondary", "ghost", "link":
		return ButtonVariant(v), nil
	default:
		return "", fmt.Errorf("ui: unknown button variant %q", s)
	}
}

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   ButtonVariant
	size      Size
	buttonType string
	disabled  bool
	loading   bool
	className string
	label     string
	children  []any
	onClick   func()
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant:   ButtonDefault,
		size:      SizeMd,
		buttonType: "button",
	}
}

// WithVariant sets the button variant.
func WithVariant(v ButtonVariant) ButtonOption {
	return func(c *buttonConfig) { c.variant = v }
}

// Primary sets the default variant.
func Primary() ButtonOption { return WithVariant(ButtonDefault) }

// Destructive sets the destructive variant.
func Destructive() ButtonOption { return WithVariant(ButtonDestructive) }

// Outline sets the outline variant.
func Outline() ButtonOption { return WithVariant(ButtonOutline) }

// Secondary sets the secondary variant.
func Secondary() ButtonOption { return WithVariant(ButtonSecondary) }

// Ghost sets the ghost variant.
func Ghost() ButtonOption { return WithVariant(ButtonGhost) }

// Link sets the link variant.
func Link() ButtonOption { return WithVariant(ButtonLink) }

// WithSize sets the button size.
func WithSize(s Size) ButtonOption {
	return func(c *buttonConfig) { c.size = s }
}

// Sm sets the small size.
func Sm() ButtonOption { return WithSize(SizeSm) }

// Lg sets the large size.
func Lg() ButtonOption { return WithSize(SizeLg) }

// Icon sets the square icon size.
func Icon() ButtonOption { return WithSize(SizeIcon) }

// Submit renders a submit button.
func Submit() ButtonOption {
	return func(c *buttonConfig) { c.buttonType = "submit" }
}

// WithDisabled sets the disabled state.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) { c.disabled = d }
}

// WithLoading shows a spinner and disables the button.
func WithLoading(l bool) ButtonOption {
	return func(c *buttonConfig) { c.loading = l }
}

// WithOnClick sets the click handler.
func WithOnClick(handler func()) ButtonOption {
	return func(c *buttonConfig) { c.onClick = handler }
}

// WithLabel sets the accessible name, for icon buttons.
func WithLabel(label string) ButtonOption {
	return func(c *buttonConfig) { c.label = label }
}

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) { c.children = children }
}

// WithClass adds additional CSS classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) { c.className = className }
}

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

func buttonVariantClass(v ButtonVariant) string {
	switch v {
	case ButtonDestructive:
		return "bg-destructive text-white shadow-xs hover:bg-destructive/90"
	case ButtonOutline:
		return "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground"
	case ButtonSecondary:
		return "bg-secondary text-secondary-foreground shadow-xs hover:bg-secondary/80"
	case ButtonGhost:
		return "hover:bg-accent hover:text-accent-foreground"
	case ButtonLink:
		return "text-primary underline-offset-4 hover:underline"
	default:
		return "bg-primary text-primary-foreground shadow-xs hover:bg-primary/90"
	}
}

func buttonSizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "h-8 rounded-md gap-1.5 px-3"
	case SizeLg:
		return "h-10 rounded-md px-6"
	case SizeIcon:
		return "size-9"
	default:
		return "h-9 px-4 py-2"
	}
}

// Button renders a button element with the configured options.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	inert := cfg.disabled || cfg.loading

	return vdom.El("button",
		vdom.Type(cfg.buttonType),
		vdom.Class(buttonBase, buttonVariantClass(cfg.variant), buttonSizeClass(cfg.size), cfg.className),
		vdom.Data("variant", string(cfg.variant)),
		vdom.AttrIf(cfg.label != "", vdom.AriaLabel(cfg.label)),
		vdom.AttrIf(inert, vdom.Disabled()),
		vdom.AttrIf(cfg.loading, vdom.AttrOf("aria-busy", "true")),
		clickHandler(cfg.onClick, inert),
		vdom.If(cfg.loading, spinnerIcon()),
		cfg.children,
	)
}

func clickHandler(fn func(), inert bool) any {
	if fn == nil || inert {
		return nil
	}
	return vdom.OnClick(fn)
}

// spinnerIcon returns an SVG spinner icon for loading state.
func spinnerIcon() *vdom.VNode {
	return vdom.Svg(
		vdom.Class("h-4 w-4 animate-spin"),
		vdom.AttrOf("xmlns", "http://www.w3.org/2000/svg"),
		vdom.AttrOf("fill", "none"),
		vdom.AttrOf("viewBox", "0 0 24 24"),
		vdom.AriaHidden(true),
		vdom.El("circle",
			vdom.Class("opacity-25"),
			vdom.AttrOf("cx", "12"),
			vdom.AttrOf("cy", "12"),
			vdom.AttrOf("r", "10"),
			vdom.AttrOf("stroke", "currentColor"),
			vdom.AttrOf("stroke-width", "4"),
		),
		vdom.Path(
			vdom.Class("opacity-75"),
			vdom.AttrOf("fill", "currentColor"),
			vdom.AttrOf("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
		),
	)
}
