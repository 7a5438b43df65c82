package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// AvatarOption configures an Avatar component.
type AvatarOption func(*avatarConfig)

type avatarConfig struct {
	src       string
	alt       string
	fallback  string
	size      Size
	className string
}

// AvatarSrc sets the image source.
func AvatarSrc(src string) AvatarOption {
	return func(c *avatarConfig) { c.src = src }
}

// AvatarAlt sets the alt text. When no fallback is given the initials of
// the alt text are used.
func AvatarAlt(alt string) AvatarOption {
	return func(c *avatarConfig) { c.alt = alt }
}

// AvatarFallback sets the fallback text (typically initials).
func AvatarFallback(fallback string) AvatarOption {
	return func(c *avatarConfig) { c.fallback = fallback }
}

// AvatarSize sets the avatar size.
func AvatarSize(size Size) AvatarOption {
	return func(c *avatarConfig) { c.size = size }
}

// AvatarClass adds additional CSS classes.
func AvatarClass(className string) AvatarOption {
	return func(c *avatarConfig) { c.className = className }
}

func avatarSizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "size-6 text-xs"
	case SizeLg:
		return "size-12 text-base"
	default:
		return "size-8 text-sm"
	}
}

// Avatar renders an image avatar. The fallback is rendered underneath the
// image so it shows when the image fails to load, and alone when there is
// no image.
func Avatar(opts ...AvatarOption) *vdom.VNode {
	cfg := avatarConfig{size: SizeMd}
	for _, opt := range opts {
		opt(&cfg)
	}

	fallback := cfg.fallback
	if fallback == "" {
		fallback = Initials(cfg.alt)
	}

	return vdom.Span(
		vdom.Data("slot", "avatar"),
		vdom.Class("relative flex shrink-0 overflow-hidden rounded-full", avatarSizeClass(cfg.size), cfg.className),
		vdom.If(fallback != "", vdom.Span(
			vdom.Data("slot", "avatar-fallback"),
			vdom.Class("bg-muted flex size-full items-center justify-center rounded-full"),
			vdom.AriaHidden(cfg.src != ""),
			vdom.Text(fallback),
		)),
		vdom.If(cfg.src != "", vdom.Img(
			vdom.Data("slot", "avatar-image"),
			vdom.Class("absolute inset-0 aspect-square size-full"),
			vdom.Src(cfg.src),
			vdom.Alt(cfg.alt),
		)),
	)
}

// AvatarGroup renders a group of overlapping avatars.
func AvatarGroup(avatars ...*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		vdom.Class("flex -space-x-2"),
		vdom.Range(avatars, func(a *vdom.VNode, _ int) *vdom.VNode {
			return vdom.Div(vdom.Class("ring-2 ring-background rounded-full"), a)
		}),
	)
}

// Initials returns up to two upper-case initials from name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}
