package toast

import (
	"fmt"
	"strings"
)

// Variant selects the toast's icon and colours.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantSuccess, VariantError, VariantWarning, VariantInfo}

// ParseVariant converts a string to a Variant. The empty string is info.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantInfo, nil
	case VariantSuccess, VariantError, VariantWarning, VariantInfo:
		return v, nil
	default:
		return "", fmt.Errorf("toast: unknown variant %q", s)
	}
}

// Style is the visual descriptor for a variant.
type Style struct {
	Container      string
	Icon           string
	IconBackground string
}

// StyleFor returns the style descriptor for a variant. Unknown variants use
// the info style.
func StyleFor(v Variant) Style {
	switch v {
	case VariantSuccess:
		return Style{
			Container:      "bg-green-50 border-green-200 text-green-800",
			Icon:           "✓",
			IconBackground: "bg-green-100 text-green-600",
		}
	case VariantError:
		return Style{
			Container:      "bg-red-50 border-red-200 text-red-800",
			Icon:           "✕",
			IconBackground: "bg-red-100 text-red-600",
		}
	case VariantWarning:
		return Style{
			Container:      "bg-yellow-50 border-yellow-200 text-yellow-800",
			Icon:           "⚠",
			IconBackground: "bg-yellow-100 text-yellow-600",
		}
	default:
		return Style{
			Container:      "bg-blue-50 border-blue-200 text-blue-800",
			Icon:           "ℹ",
			IconBackground: "bg-blue-100 text-blue-600",
		}
	}
}

// Position places a toast viewport on screen. It has no effect on the
// lifecycle.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Positions lists every placement.
var Positions = []Position{TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight}

// ParsePosition converts a string to a Position. The empty string is top-right.
func ParsePosition(s string) (Position, error) {
	switch p := Position(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return TopRight, nil
	case TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight:
		return p, nil
	default:
		return "", fmt.Errorf("toast: unknown position %q", s)
	}
}

func positionClass(p Position) string {
	switch p {
	case TopLeft:
		return "top-4 left-4"
	case TopCenter:
		return "top-4 left-1/2 -translate-x-1/2"
	case BottomLeft:
		return "bottom-4 left-4"
	case BottomCenter:
		return "bottom-4 left-1/2 -translate-x-1/2"
	case BottomRight:
		return "bottom-4 right-4"
	default:
		return "top-4 right-4"
	}
}
