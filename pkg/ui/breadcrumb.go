package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Crumb is one breadcrumb entry. The last crumb is the current page and is
// not linked.
type Crumb struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href,omitempty"`
}

// BreadcrumbOption configures a Breadcrumb component.
type BreadcrumbOption func(*breadcrumbConfig)

type breadcrumbConfig struct {
	separator string
	maxItems  int
	className string
}

// BreadcrumbSeparator replaces the default "/" separator.
func BreadcrumbSeparator(sep string) BreadcrumbOption {
	return func(c *breadcrumbConfig) { c.separator = sep }
}

// BreadcrumbMax collapses middle crumbs into an ellipsis once there are
// more than n items. n below 3 disables collapsing.
func BreadcrumbMax(n int) BreadcrumbOption {
	return func(c *breadcrumbConfig) { c.maxItems = n }
}

// BreadcrumbClass adds additional CSS classes.
func BreadcrumbClass(className string) BreadcrumbOption {
	return func(c *breadcrumbConfig) { c.className = className }
}

// Breadcrumb renders a navigation trail.
func Breadcrumb(items []Crumb, opts ...BreadcrumbOption) *vdom.VNode {
	cfg := breadcrumbConfig{separator: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(items) == 0 {
		return nil
	}

	visible := items
	collapsed := false
	if cfg.maxItems >= 3 && len(items) > cfg.maxItems {
		visible = append([]Crumb{items[0]}, items[len(items)-(cfg.maxItems-1):]...)
		collapsed = true
	}

	var lis []*vdom.VNode
	for i, item := range visible {
		if i > 0 {
			lis = append(lis, separator(cfg.separator))
		}
		if collapsed && i == 1 {
			lis = append(lis,
				vdom.Li(vdom.Span(vdom.Role("presentation"), vdom.AriaHidden(true), vdom.Text("…"))),
				separator(cfg.separator),
			)
		}
		lis = append(lis, crumb(item, i == len(visible)-1))
	}

	return vdom.Nav(
		vdom.AriaLabel("breadcrumb"),
		vdom.Class(cfg.className),
		vdom.Ol(
			vdom.Class("flex flex-wrap items-center gap-1.5 text-sm break-words text-muted-foreground"),
			lis,
		),
	)
}

func crumb(item Crumb, current bool) *vdom.VNode {
	if current || item.Href == "" {
		return vdom.Li(
			vdom.Class("inline-flex items-center gap-1.5"),
			vdom.Span(
				vdom.AttrIf(current, vdom.AriaCurrent("page")),
				vdom.AttrIf(current, vdom.AriaDisabled(true)),
				vdom.Class("text-foreground font-normal"),
				vdom.Text(item.Label),
			),
		)
	}
	return vdom.Li(
		vdom.Class("inline-flex items-center gap-1.5"),
		vdom.A(vdom.Href(item.Href), vdom.Class("hover:text-foreground transition-colors"), vdom.Text(item.Label)),
	)
}

func separator(sep string) *vdom.VNode {
	return vdom.Li(vdom.Role("presentation"), vdom.AriaHidden(true), vdom.Text(sep))
}
