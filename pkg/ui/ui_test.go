package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func TestButtonVariants(t *testing.T) {
	tests := []struct {
		variant ButtonVariant
		want    string
	}{
		{ButtonDefault, "bg-primary"},
		{ButtonDestructive, "bg-destructive"},
		{ButtonOutline, "border bg-background"},
		{ButtonSecondary, "bg-secondary"},
		{ButtonGhost, "hover:bg-accent"},
		{ButtonLink, "underline-offset-4"},
		{ButtonVariant("unknown"), "bg-primary"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			node := Button(WithVariant(tt.variant), WithChildren("Go"))
			assert.Contains(t, node.Attr("class"), tt.want)
			assert.Equal(t, "button", node.Attr("type"))
		})
	}
}

func TestButtonClickAndDisabled(t *testing.T) {
	clicks := 0
	btn := Button(WithOnClick(func() { clicks++ }), WithChildren("Save"))
	vtest.Click(t, btn, "Save")
	assert.Equal(t, 1, clicks)

	disabled := Button(WithOnClick(func() { clicks++ }), WithDisabled(true), WithChildren("Save"))
	_, ok := disabled.Handler("click")
	assert.False(t, ok)
	vtest.ExpectContains(t, disabled, " disabled")
}

func TestButtonLoading(t *testing.T) {
	node := Button(WithLoading(true), Sm(), WithChildren("Saving"))
	vtest.ExpectElement(t, node, "svg")
	vtest.ExpectAttribute(t, node, "aria-busy", "true")
	assert.Contains(t, node.Attr("class"), "h-8")
	assert.Equal(t, true, node.Props["disabled"])
}

func TestParseButtonVariant(t *testing.T) {
	v, err := ParseButtonVariant("danger")
	require.NoError(t, err)
	assert.Equal(t, ButtonDestructive, v)

	v, err = ParseButtonVariant("primary")
	require.NoError(t, err)
	assert.Equal(t, ButtonDefault, v)

	_, err = ParseButtonVariant("loud")
	assert.Error(t, err)
}

func TestBadge(t *testing.T) {
	node := Badge(BadgeText("Default Badge"))
	class := node.Attr("class")
	assert.Contains(t, class, "bg-gray-100")
	assert.Contains(t, class, "text-gray-800")
	assert.Contains(t, class, "text-sm")

	node = Badge(BadgeSuccess(), BadgeText("Success"))
	assert.Contains(t, node.Attr("class"), "bg-green-100")
	assert.Contains(t, node.Attr("class"), "border-green-200")

	node = Badge(BadgeSize(SizeLg), BadgeClass("custom-class"), BadgeText("Large"))
	assert.Contains(t, node.Attr("class"), "text-base")
	assert.Contains(t, node.Attr("class"), "custom-class")
	assert.Equal(t, "Large", vdom.TextContent(node))
}

func TestCard(t *testing.T) {
	node := Card(
		CardTitle("Card Title"),
		CardSubtitle("Sub"),
		CardImage("/cover.png"),
		CardContent("Card content"),
		CardFooter("Footer"),
		CardShadow(ScaleLarge),
		CardPadding(ScaleSmall),
		CardHoverable(),
	)

	class := node.Attr("class")
	assert.Contains(t, class, "shadow-lg")
	assert.Contains(t, class, "p-2")
	assert.Contains(t, class, "hover:shadow-lg")

	img := vdom.Find(node, func(n *vdom.VNode) bool { return n.Tag == "img" })
	require.NotNil(t, img)
	assert.Equal(t, "Card Title", img.Attr("alt"))

	html := vtest.RenderToString(node)
	assert.Contains(t, html, "<h3")
	assert.Contains(t, html, "Card content")
	assert.Contains(t, html, "border-t pt-3 mt-4")
}

func TestCardWithoutHeader(t *testing.T) {
	node := Card(CardContent("Content"), CardShadow(ScaleNone), CardPadding(ScaleNone))
	html := vtest.RenderToString(node)
	assert.NotContains(t, html, "<h3")
	assert.NotContains(t, html, "shadow-")
	assert.Equal(t, "Content", vdom.TextContent(node))
}

func TestInput(t *testing.T) {
	node := Input(InputID("email"), InputLabel("Email"), InputHelper("We never share it"), InputType("email"))
	html := vtest.RenderToString(node)
	assert.Contains(t, html, `for="email"`)
	assert.Contains(t, html, `aria-describedby="email-message"`)
	assert.Contains(t, html, "We never share it")
	assert.Contains(t, html, "border-gray-300")

	node = Input(InputID("email"), InputError("Required"), InputHelper("hidden"))
	html = vtest.RenderToString(node)
	assert.Contains(t, html, "border-red-500")
	assert.Contains(t, html, `aria-invalid="true"`)
	assert.Contains(t, html, `role="alert"`)
	assert.NotContains(t, html, "hidden")
}

func TestInputHandlers(t *testing.T) {
	var got string
	node := Input(InputOnInput(func(v string) { got = v }))
	input := vdom.Find(node, func(n *vdom.VNode) bool { return n.Tag == "input" })
	require.NotNil(t, input)

	h, ok := input.Handler("input")
	require.True(t, ok)
	require.NoError(t, vdom.Invoke(h, vdom.Event{Type: "input", Value: "abc"}))
	assert.Equal(t, "abc", got)
}

func TestTextarea(t *testing.T) {
	node := Textarea(TextareaPlaceholder("Type here"), TextareaValue("hello <b>"), TextareaRows(5))
	html := vtest.RenderToString(node)
	assert.Contains(t, html, `rows="5"`)
	assert.Contains(t, html, `placeholder="Type here"`)
	assert.Contains(t, html, "hello &lt;b&gt;")
}

func TestAvatar(t *testing.T) {
	node := Avatar(AvatarSrc("/me.png"), AvatarAlt("Ada Lovelace"))
	html := vtest.RenderToString(node)
	assert.Contains(t, html, `src="/me.png"`)
	assert.Contains(t, html, ">AL<")

	node = Avatar(AvatarFallback("CN"), AvatarSize(SizeLg))
	html = vtest.RenderToString(node)
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "size-12")
	assert.Contains(t, html, "CN")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("ada lovelace byron"))
	assert.Equal(t, "É", Initials("élodie"))
	assert.Equal(t, "", Initials("  "))
}

func TestBreadcrumb(t *testing.T) {
	items := []Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Components", Href: "/components"},
		{Label: "Breadcrumb"},
	}
	node := Breadcrumb(items)
	html := vtest.RenderToString(node)

	assert.Contains(t, html, `aria-label="breadcrumb"`)
	assert.Contains(t, html, `href="/components"`)
	assert.Contains(t, html, `aria-current="page"`)
	assert.Equal(t, 2, strings.Count(html, `role="presentation"`))

	assert.Nil(t, Breadcrumb(nil))
}

func TestBreadcrumbCollapse(t *testing.T) {
	items := []Crumb{{"A", "/a"}, {"B", "/b"}, {"C", "/c"}, {"D", "/d"}, {"E", ""}}
	node := Breadcrumb(items, BreadcrumbMax(3), BreadcrumbSeparator(">"))
	text := vdom.TextContent(node)
	assert.Equal(t, "A>…>D>E", text)
}

func TestPage(t *testing.T) {
	node := Page("Settings", vdom.P(vdom.Text("body")))
	vtest.ExpectElement(t, node, "h1")
	vtest.ExpectContains(t, node, "Settings")
	vtest.ExpectContains(t, node, "<p>body</p>")
}

func TestParseSize(t *testing.T) {
	for in, want := range map[string]Size{"": SizeMd, "small": SizeSm, "LARGE": SizeLg, "icon": SizeIcon} {
		got, err := ParseSize(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSize("huge")
	assert.Error(t, err)
}
