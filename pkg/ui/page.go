package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Page renders a titled content panel.
func Page(title string, children ...any) *vdom.VNode {
	return vdom.Div(
		vdom.Class("p-6 bg-white rounded-lg shadow-md space-y-4"),
		vdom.H1(vdom.Class("text-2xl font-bold text-gray-800"), vdom.Text(title)),
		vdom.Div(vdom.Class("text-gray-700"), children),
	)
}
