package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// TextareaOption configures a Textarea component.
type TextareaOption func(*textareaConfig)

type textareaConfig struct {
	id          string
	name        string
	placeholder string
	value       string
	rows        int
	disabled    bool
	required    bool
	readonly    bool
	className   string
	onInput     func(string)
	onChange    func(string)
}

// TextareaID sets the element id.
func TextareaID(id string) TextareaOption {
	return func(c *textareaConfig) { c.id = id }
}

// TextareaName sets the name attribute.
func TextareaName(name string) TextareaOption {
	return func(c *textareaConfig) { c.name = name }
}

// TextareaPlaceholder sets the placeholder text.
func TextareaPlaceholder(placeholder string) TextareaOption {
	return func(c *textareaConfig) { c.placeholder = placeholder }
}

// TextareaValue sets the initial content.
func TextareaValue(value string) TextareaOption {
	return func(c *textareaConfig) { c.value = value }
}

// TextareaRows sets the visible row count.
func TextareaRows(rows int) TextareaOption {
	return func(c *textareaConfig) { c.rows = rows }
}

// TextareaDisabled sets the disabled state.
func TextareaDisabled(disabled bool) TextareaOption {
	return func(c *textareaConfig) { c.disabled = disabled }
}

// TextareaRequired sets the required state.
func TextareaRequired(required bool) TextareaOption {
	return func(c *textareaConfig) { c.required = required }
}

// TextareaReadonly sets the readonly state.
func TextareaReadonly(readonly bool) TextareaOption {
	return func(c *textareaConfig) { c.readonly = readonly }
}

// TextareaClass adds additional CSS classes.
func TextareaClass(className string) TextareaOption {
	return func(c *textareaConfig) { c.className = className }
}

// TextareaOnInput sets the input event handler.
func TextareaOnInput(handler func(string)) TextareaOption {
	return func(c *textareaConfig) { c.onInput = handler }
}

// TextareaOnChange sets the change event handler.
func TextareaOnChange(handler func(string)) TextareaOption {
	return func(c *textareaConfig) { c.onChange = handler }
}

// Textarea renders a textarea element.
func Textarea(opts ...TextareaOption) *vdom.VNode {
	cfg := textareaConfig{rows: 3}
	for _, opt := range opts {
		opt(&cfg)
	}

	return vdom.Textarea(
		vdom.Class("border rounded px-3 py-2 focus:outline-none focus:ring-2 focus:ring-blue-500", cfg.className),
		vdom.Rows(cfg.rows),
		vdom.AttrIf(cfg.id != "", vdom.ID(cfg.id)),
		vdom.AttrIf(cfg.name != "", vdom.Name(cfg.name)),
		vdom.AttrIf(cfg.placeholder != "", vdom.Placeholder(cfg.placeholder)),
		vdom.AttrIf(cfg.disabled, vdom.Disabled()),
		vdom.AttrIf(cfg.required, vdom.Required()),
		vdom.AttrIf(cfg.readonly, vdom.Readonly()),
		stringHandler(vdom.OnInput, cfg.onInput),
		stringHandler(vdom.OnChange, cfg.onChange),
		// Value is content for textarea
		vdom.If(cfg.value != "", vdom.Text(cfg.value)),
	)
}
