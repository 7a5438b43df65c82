package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Templ adapts a node into a templ.Component so VangoUI widgets can be
// embedded in templ pages:
//
//	@render.Templ(toast.Render())
func Templ(node *vdom.VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return NewRenderer(RendererConfig{}).RenderToWriter(w, node)
	})
}

// TemplFunc is like Templ but renders lazily, so controllers are read at
// render time rather than when the component is built.
func TemplFunc(c vdom.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return NewRenderer(RendererConfig{}).RenderToWriter(w, c.Render())
	})
}
