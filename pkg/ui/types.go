package ui

import (
	"fmt"
	"strings"
)

// Size is the shared size scale.
type Size string

const (
	SizeSm   Size = "sm"
	SizeMd   Size = "md"
	SizeLg   Size = "lg"
	SizeIcon Size = "icon"
)

// ParseSize accepts the short names and the long forms small, medium and
// large. The empty string is md.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "medium", "default":
		return SizeMd, nil
	case "sm", "small":
		return SizeSm, nil
	case "lg", "large":
		return SizeLg, nil
	case "icon":
		return SizeIcon, nil
	default:
		return "", fmt.Errorf("ui: unknown size %q", s)
	}
}
