package vdom

// Common key constants matching JavaScript KeyboardEvent.key values.
const (
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeySpace      = " "
	KeyTab        = "Tab"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// KeyboardEvent represents a keyboard event with key and modifiers.
type KeyboardEvent struct {
	// The key value (e.g., "Enter", "a", "Escape")
	Key string

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool

	// True if key is being held down (auto-repeat)
	Repeat bool
}

// HasModifier reports whether any modifier key was held.
func (e KeyboardEvent) HasModifier() bool {
	return e.CtrlKey || e.ShiftKey || e.AltKey || e.MetaKey
}
