package toast

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

const (
	containerClass   = "relative flex items-start p-4 border rounded-lg shadow-md"
	iconWrapperClass = "flex-shrink-0 w-8 h-8 rounded-full flex items-center justify-center mr-3"
	closeButtonClass = "flex-shrink-0 ml-3 p-1 rounded-md hover:bg-black hover:bg-opacity-10 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-gray-400 transition-colors duration-200"
)

// CloseLabel is the accessible name of the close button.
const CloseLabel = "Close notification"

// Render returns the toast markup, or nil once the toast is dismissed or
// torn down.
func (t *Toast) Render() *vdom.VNode {
	if !t.Visible() {
		return nil
	}

	cfg := t.cfg
	style := StyleFor(cfg.Variant)

	live := "polite"
	if cfg.Variant == VariantError {
		live = "assertive"
	}

	return vdom.Div(
		vdom.ID(cfg.ID),
		vdom.Role("status"),
		vdom.AriaLive(live),
		vdom.Data("variant", string(cfg.Variant)),
		vdom.Class(containerClass, style.Container, cfg.Class),

		vdom.Div(
			vdom.Class(iconWrapperClass, style.IconBackground),
			vdom.Span(
				vdom.Role("img"),
				vdom.AriaLabel(string(cfg.Variant)+" icon"),
				vdom.Class("text-sm font-bold"),
				vdom.Text(style.Icon),
			),
		),

		vdom.Div(
			vdom.Class("flex-1 min-w-0"),
			vdom.If(cfg.Title != "", vdom.H4(vdom.Class("text-sm font-semibold mb-1"), vdom.Text(cfg.Title))),
			vdom.Div(
				vdom.Class("text-sm"),
				vdom.If(cfg.Message != "", vdom.Text(cfg.Message)),
				cfg.Children,
			),
		),

		vdom.When(cfg.ShowCloseButton, func() *vdom.VNode {
			return vdom.Button(
				vdom.Type("button"),
				vdom.AriaLabel(CloseLabel),
				vdom.Class(closeButtonClass),
				vdom.OnClick(t.Close),
				vdom.Span(vdom.Class("text-lg leading-none"), vdom.Text("×")),
			)
		}),
	)
}
