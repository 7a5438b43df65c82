package toast

import (
	"log/slog"
	"time"
)

// DefaultAutoCloseDelay is used when auto-close is enabled without a delay.
const DefaultAutoCloseDelay = 5 * time.Second

// Config is the toast configuration. It is fixed once the toast is created.
type Config struct {
	// ID identifies the toast inside a Toaster. Generated when empty.
	ID string

	// Variant selects icon and colours (default info).
	Variant Variant

	Title   string
	Message string

	// Children are extra body nodes rendered after Message.
	Children []any

	// AutoClose schedules a dismissal AutoCloseDelay after creation.
	// A non-positive delay dismisses at the next scheduling opportunity.
	AutoClose      bool
	AutoCloseDelay time.Duration

	// ShowCloseButton renders the manual close affordance (default true).
	ShowCloseButton bool

	// OnClose runs once, after the toast is dismissed.
	OnClose func()

	Position Position
	Class    string

	Logger *slog.Logger
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		Variant:         VariantInfo,
		AutoCloseDelay:  DefaultAutoCloseDelay,
		ShowCloseButton: true,
		Position:        TopRight,
	}
}

// Option configures a Toast.
type Option func(*Config)

// WithVariant sets the variant.
func WithVariant(v Variant) Option {
	return func(c *Config) { c.Variant = v }
}

// Success sets the success variant.
func Success() Option { return WithVariant(VariantSuccess) }

// Error sets the error variant.
func Error() Option { return WithVariant(VariantError) }

// Warning sets the warning variant.
func Warning() Option { return WithVariant(VariantWarning) }

// Info sets the info variant.
func Info() Option { return WithVariant(VariantInfo) }

// WithID sets the toast id.
func WithID(id string) Option {
	return func(c *Config) { c.ID = id }
}

// WithTitle sets the heading.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithMessage sets the body text.
func WithMessage(message string) Option {
	return func(c *Config) { c.Message = message }
}

// WithChildren appends body nodes.
func WithChildren(children ...any) Option {
	return func(c *Config) { c.Children = append(c.Children, children...) }
}

// AutoClose enables auto-dismissal after d.
func AutoClose(d time.Duration) Option {
	return func(c *Config) {
		c.AutoClose = true
		c.AutoCloseDelay = d
	}
}

// WithDelay sets the auto-close delay without enabling auto-close.
func WithDelay(d time.Duration) Option {
	return func(c *Config) { c.AutoCloseDelay = d }
}

// WithAutoClose toggles auto-dismissal, keeping the configured delay.
func WithAutoClose(enabled bool) Option {
	return func(c *Config) { c.AutoClose = enabled }
}

// WithCloseButton toggles the close button.
func WithCloseButton(show bool) Option {
	return func(c *Config) { c.ShowCloseButton = show }
}

// HideCloseButton removes the close button.
func HideCloseButton() Option { return WithCloseButton(false) }

// OnClose sets the dismissal callback.
func OnClose(fn func()) Option {
	return func(c *Config) { c.OnClose = fn }
}

// WithPosition sets the screen placement.
func WithPosition(p Position) Option {
	return func(c *Config) { c.Position = p }
}

// WithClass adds CSS classes to the container.
func WithClass(className string) Option {
	return func(c *Config) { c.Class = className }
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
