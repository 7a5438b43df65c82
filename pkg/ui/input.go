package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// InputState colours the input border.
type InputState string

const (
	InputStateDefault InputState = "default"
	InputStateError   InputState = "error"
	InputStateSuccess InputState = "success"
)

// InputOption configures an Input component.
type InputOption func(*inputConfig)

type inputConfig struct {
	id          string
	inputType   string
	name        string
	label       string
	placeholder string
	value       string
	errText     string
	helperText  string
	size        Size
	state       InputState
	fullWidth   bool
	disabled    bool
	required    bool
	readonly    bool
	className   string
	onInput     func(string)
	onChange    func(string)
}

// InputID sets the element id, which links the label and messages.
func InputID(id string) InputOption {
	return func(c *inputConfig) { c.id = id }
}

// InputType sets the input type (text, email, password, etc.).
func InputType(t string) InputOption {
	return func(c *inputConfig) { c.inputType = t }
}

// InputName sets the input name attribute.
func InputName(name string) InputOption {
	return func(c *inputConfig) { c.name = name }
}

// InputLabel renders a label above the input.
func InputLabel(label string) InputOption {
	return func(c *inputConfig) { c.label = label }
}

// InputPlaceholder sets the placeholder text.
func InputPlaceholder(placeholder string) InputOption {
	return func(c *inputConfig) { c.placeholder = placeholder }
}

// InputValue sets the input value.
func InputValue(value string) InputOption {
	return func(c *inputConfig) { c.value = value }
}

// InputError shows an error message and switches to the error state.
func InputError(msg string) InputOption {
	return func(c *inputConfig) { c.errText = msg }
}

// InputHelper shows helper text when there is no error.
func InputHelper(text string) InputOption {
	return func(c *inputConfig) { c.helperText = text }
}

// InputSize sets the input size.
func InputSize(s Size) InputOption {
	return func(c *inputConfig) { c.size = s }
}

// InputWithState sets the border state.
func InputWithState(s InputState) InputOption {
	return func(c *inputConfig) { c.state = s }
}

// InputFullWidth stretches the wrapper to the container.
func InputFullWidth() InputOption {
	return func(c *inputConfig) { c.fullWidth = true }
}

// InputDisabled sets the disabled state.
func InputDisabled(disabled bool) InputOption {
	return func(c *inputConfig) { c.disabled = disabled }
}

// InputRequired sets the required state.
func InputRequired(required bool) InputOption {
	return func(c *inputConfig) { c.required = required }
}

// InputReadonly sets the readonly state.
func InputReadonly(readonly bool) InputOption {
	return func(c *inputConfig) { c.readonly = readonly }
}

// InputClass adds additional CSS classes to the input element.
func InputClass(className string) InputOption {
	return func(c *inputConfig) { c.className = className }
}

// InputOnInput sets the input event handler.
func InputOnInput(handler func(string)) InputOption {
	return func(c *inputConfig) { c.onInput = handler }
}

// InputOnChange sets the change event handler.
func InputOnChange(handler func(string)) InputOption {
	return func(c *inputConfig) { c.onChange = handler }
}

func inputSizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "px-2 py-1 text-sm"
	case SizeLg:
		return "px-4 py-3 text-lg"
	default:
		return "px-3 py-2"
	}
}

func inputStateClass(s InputState) string {
	switch s {
	case InputStateError:
		return "border-red-500 focus:border-red-500 focus:ring-red-200"
	case InputStateSuccess:
		return "border-green-500 focus:border-green-500 focus:ring-green-200"
	default:
		return "border-gray-300 focus:border-blue-500 focus:ring-blue-200"
	}
}

// Input renders a labelled input with optional error and helper text.
func Input(opts ...InputOption) *vdom.VNode {
	cfg := inputConfig{inputType: "text", size: SizeMd, state: InputStateDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.errText != "" {
		cfg.state = InputStateError
	}

	var messageID string
	if cfg.id != "" && (cfg.errText != "" || cfg.helperText != "") {
		messageID = cfg.id + "-message"
	}

	wrapper := ""
	if cfg.fullWidth {
		wrapper = "w-full"
	}

	return vdom.Div(
		vdom.Class(wrapper),
		vdom.If(cfg.label != "", vdom.Label(
			vdom.Class("block text-sm font-medium text-gray-700 mb-1"),
			vdom.AttrIf(cfg.id != "", vdom.For(cfg.id)),
			vdom.Text(cfg.label),
		)),
		vdom.El("input",
			vdom.Class(
				"w-full border rounded-md focus:outline-none focus:ring-2 transition-colors duration-200",
				inputSizeClass(cfg.size),
				inputStateClass(cfg.state),
				cfg.className,
			),
			vdom.Type(cfg.inputType),
			vdom.AttrIf(cfg.id != "", vdom.ID(cfg.id)),
			vdom.AttrIf(cfg.name != "", vdom.Name(cfg.name)),
			vdom.AttrIf(cfg.placeholder != "", vdom.Placeholder(cfg.placeholder)),
			vdom.AttrIf(cfg.value != "", vdom.Value(cfg.value)),
			vdom.AttrIf(cfg.disabled, vdom.Disabled()),
			vdom.AttrIf(cfg.required, vdom.Required()),
			vdom.AttrIf(cfg.readonly, vdom.Readonly()),
			vdom.AttrIf(cfg.errText != "", vdom.AriaInvalid(true)),
			vdom.AttrIf(messageID != "", vdom.AriaDescribedBy(messageID)),
			stringHandler(vdom.OnInput, cfg.onInput),
			stringHandler(vdom.OnChange, cfg.onChange),
		),
		vdom.If(cfg.errText != "", vdom.P(
			vdom.Class("mt-1 text-sm text-red-600"),
			vdom.AttrIf(messageID != "", vdom.ID(messageID)),
			vdom.Role("alert"),
			vdom.Text(cfg.errText),
		)),
		vdom.If(cfg.helperText != "" && cfg.errText == "", vdom.P(
			vdom.Class("mt-1 text-sm text-gray-500"),
			vdom.AttrIf(messageID != "", vdom.ID(messageID)),
			vdom.Text(cfg.helperText),
		)),
	)
}

func stringHandler(on func(any) vdom.EventHandler, fn func(string)) any {
	if fn == nil {
		return nil
	}
	return on(fn)
}

// EmailInput is a convenience wrapper for email inputs.
func EmailInput(opts ...InputOption) *vdom.VNode {
	return Input(append([]InputOption{InputType("email")}, opts...)...)
}

// PasswordInput is a convenience wrapper for password inputs.
func PasswordInput(opts ...InputOption) *vdom.VNode {
	return Input(append([]InputOption{InputType("password")}, opts...)...)
}
