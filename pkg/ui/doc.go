// Package ui contains the presentational components: Button, Badge, Card,
// Input, Textarea, Avatar, Breadcrumb and Page.
//
// Each component is a pure function from functional options to a
// *vdom.VNode. Variants and sizes are closed enums; the class strings for
// each value come from a switch, and unknown values fall back to the
// default.
//
//	ui.Button(ui.Destructive(), ui.Sm(), ui.WithChildren("Delete"))
//	ui.Badge(ui.BadgeSuccess(), ui.BadgeText("Active"))
package ui
