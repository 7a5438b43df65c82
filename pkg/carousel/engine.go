package carousel

import (
	"fmt"
	"strings"
)

// Engine events.
const (
	EventSelect = "select"
	EventReInit = "reInit"
)

// Engine is the sliding-window engine a Controller drives. Implementations
// own snapping, looping and clamping.
type Engine interface {
	// SelectedScrollSnap returns the index of the selected snap point.
	SelectedScrollSnap() int
	// ScrollSnapList returns the snap points as scroll progress in [0, 1].
	ScrollSnapList() []float64
	CanScrollPrev() bool
	CanScrollNext() bool
	ScrollNext()
	ScrollPrev()
	ScrollTo(index int)
	// On subscribes to an engine event and returns its unsubscribe func.
	On(event string, listener func()) (off func())
}

// Orientation selects the scroll axis and the arrow keys that navigate.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParseOrientation converts a string to an Orientation. The empty string is
// horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return Horizontal, nil
	case Horizontal, Vertical:
		return o, nil
	default:
		return "", fmt.Errorf("carousel: unknown orientation %q", s)
	}
}

// Align is where a snap point sits inside the viewport.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Options are handed to the engine unchanged. The controller does not
// interpret them.
type Options struct {
	Align          Align `yaml:"align" json:"align,omitempty" validate:"omitempty,oneof=start center end"`
	Loop           bool  `yaml:"loop" json:"loop,omitempty"`
	SlidesPerView  int   `yaml:"slidesPerView" json:"slidesPerView,omitempty" validate:"min=0"`
	SlidesToScroll int   `yaml:"slidesToScroll" json:"slidesToScroll,omitempty" validate:"min=0"`
	StartIndex     int   `yaml:"startIndex" json:"startIndex,omitempty" validate:"min=0"`
}
