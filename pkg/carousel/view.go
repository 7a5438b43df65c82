package carousel

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

const navButtonClass = "absolute h-8 w-8 rounded-full inline-flex items-center justify-center border border-input bg-background hover:bg-accent hover:text-accent-foreground disabled:pointer-events-none disabled:opacity-50"

// Render returns the carousel region for slides. Navigation buttons reflect
// the boundary flags and the indicator shows "Slide N of M".
func (c *Controller) Render(slides ...*vdom.VNode) *vdom.VNode {
	st := c.State()
	vertical := c.cfg.Orientation == Vertical
	prevKey, nextKey := c.navKeys()

	label := c.cfg.Label
	if label == "" {
		label = "Carousel"
	}

	return vdom.Div(
		vdom.Role("region"),
		vdom.AriaRoleDescription("carousel"),
		vdom.AriaLabel(label),
		vdom.TabIndex(0),
		vdom.Data("orientation", string(c.cfg.Orientation)),
		vdom.Class("relative", c.cfg.Class),
		vdom.PreventDefaultKeys(vdom.OnKeyDown(func(e vdom.KeyboardEvent) { c.HandleKey(e) }), prevKey, nextKey),

		vdom.Div(
			vdom.Class("overflow-hidden"),
			vdom.Div(
				vdom.Class("flex", trackClass(vertical)),
				vdom.StyleAttr(trackTransform(vertical, st.SelectedIndex, c.cfg.Options.SlidesPerView)),
				vdom.Range(slides, func(slide *vdom.VNode, i int) *vdom.VNode {
					return vdom.Div(
						vdom.Role("group"),
						vdom.AriaRoleDescription("slide"),
						vdom.AriaLabel(fmt.Sprintf("%d of %d", i+1, len(slides))),
						vdom.Data("active", strconv.FormatBool(st.Attached && i == st.SelectedIndex)),
						vdom.Class("min-w-0 shrink-0 grow-0", itemClass(vertical, c.cfg.Options.SlidesPerView)),
						slide,
					)
				}),
			),
		),

		vdom.Button(
			vdom.Type("button"),
			vdom.Class(navButtonClass, prevButtonClass(vertical)),
			vdom.DisabledIf(!st.CanScrollPrev),
			vdom.OnClick(c.ScrollPrev),
			arrowIcon(false),
			vdom.Span(vdom.Class("sr-only"), vdom.Text("Previous slide")),
		),
		vdom.Button(
			vdom.Type("button"),
			vdom.Class(navButtonClass, nextButtonClass(vertical)),
			vdom.DisabledIf(!st.CanScrollNext),
			vdom.OnClick(c.ScrollNext),
			arrowIcon(true),
			vdom.Span(vdom.Class("sr-only"), vdom.Text("Next slide")),
		),

		vdom.If(st.SlideCount > 0, vdom.P(
			vdom.Class("py-2 text-center text-sm text-muted-foreground"),
			vdom.AriaLive("polite"),
			vdom.Textf("Slide %d of %d", st.SelectedIndex+1, st.SlideCount),
		)),
	)
}

// Dots renders one indicator button per snap point, each scrolling to its
// snap.
func (c *Controller) Dots() *vdom.VNode {
	st := c.State()
	if st.SlideCount == 0 {
		return nil
	}
	dots := make([]*vdom.VNode, st.SlideCount)
	for i := range dots {
		index := i
		active := i == st.SelectedIndex
		dotClass := "h-2 w-2 rounded-full bg-muted"
		if active {
			dotClass = "h-2 w-2 rounded-full bg-primary"
		}
		dots[i] = vdom.Button(
			vdom.Type("button"),
			vdom.Class(dotClass),
			vdom.AriaLabel(fmt.Sprintf("Go to slide %d", i+1)),
			vdom.AttrIf(active, vdom.AriaCurrent("true")),
			vdom.OnClick(func() { c.ScrollTo(index) }),
		)
	}
	return vdom.Div(vdom.Class("flex justify-center gap-2 py-2"), dots)
}

func trackClass(vertical bool) string {
	if vertical {
		return "-mt-4 flex-col"
	}
	return "-ml-4"
}

func itemClass(vertical bool, perView int) string {
	pad := "pl-4"
	if vertical {
		pad = "pt-4"
	}
	switch perView {
	case 2:
		return pad + " basis-1/2"
	case 3:
		return pad + " basis-1/3"
	case 4:
		return pad + " basis-1/4"
	default:
		return pad + " basis-full"
	}
}

func trackTransform(vertical bool, index, perView int) string {
	if perView < 1 {
		perView = 1
	}
	offset := strconv.FormatFloat(float64(index)*100/float64(perView), 'f', -1, 64)
	if vertical {
		return "transform: translate3d(0, -" + offset + "%, 0)"
	}
	return "transform: translate3d(-" + offset + "%, 0, 0)"
}

func prevButtonClass(vertical bool) string {
	if vertical {
		return "-top-12 left-1/2 -translate-x-1/2 rotate-90"
	}
	return "-left-12 top-1/2 -translate-y-1/2"
}

func nextButtonClass(vertical bool) string {
	if vertical {
		return "-bottom-12 left-1/2 -translate-x-1/2 rotate-90"
	}
	return "-right-12 top-1/2 -translate-y-1/2"
}

func arrowIcon(forward bool) *vdom.VNode {
	d := "m12 19-7-7 7-7M19 12H5"
	if forward {
		d = "M5 12h14m-7-7 7 7-7 7"
	}
	return vdom.Svg(
		vdom.AttrOf("xmlns", "http://www.w3.org/2000/svg"),
		vdom.AttrOf("viewBox", "0 0 24 24"),
		vdom.AttrOf("fill", "none"),
		vdom.AttrOf("stroke", "currentColor"),
		vdom.AttrOf("stroke-width", "2"),
		vdom.Class("h-4 w-4"),
		vdom.AriaHidden(true),
		vdom.Path(vdom.AttrOf("d", d)),
	)
}
