package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(ui.Button(ui.Primary, "Save"))
//	if !strings.Contains(html, "Save") {
//	    t.Error("missing label")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, toast.Render(), "Error!")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, btn, "aria-label", "Close notification")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectEmpty asserts that a component rendered nothing.
func ExpectEmpty(t testing.TB, node *vdom.VNode) {
	t.Helper()
	if html := RenderToString(node); html != "" {
		t.Errorf("expected no output, got:\n%s", truncate(html, 500))
	}
}

// FindByLabel returns the first element whose aria-label or text content
// equals label.
func FindByLabel(node *vdom.VNode, label string) *vdom.VNode {
	return vdom.Find(node, func(n *vdom.VNode) bool {
		if n.Kind != vdom.KindElement {
			return false
		}
		if n.Attr("aria-label") == label {
			return true
		}
		return n.IsInteractive() && strings.TrimSpace(vdom.TextContent(n)) == label
	})
}

// Click finds the element labelled label and invokes its click handler.
// The test fails if no such element or handler exists.
//
// Example:
//
//	vtest.Click(t, toast.Render(), "Close notification")
func Click(t testing.TB, node *vdom.VNode, label string) {
	t.Helper()
	Fire(t, node, label, vdom.Event{Type: "click"})
}

// KeyDown sends a keydown event with key to the element labelled label.
func KeyDown(t testing.TB, node *vdom.VNode, label, key string) {
	t.Helper()
	Fire(t, node, label, vdom.Event{Type: "keydown", Key: vdom.KeyboardEvent{Key: key}})
}

// Fire dispatches e to the element labelled label.
func Fire(t testing.TB, node *vdom.VNode, label string, e vdom.Event) {
	t.Helper()
	target := FindByLabel(node, label)
	if target == nil {
		t.Fatalf("no element labelled %q", label)
		return
	}
	if target.Props["disabled"] == true {
		t.Fatalf("element %q is disabled", label)
		return
	}
	h, ok := target.Handler(e.Type)
	if !ok {
		t.Fatalf("element %q has no %s handler", label, e.Type)
		return
	}
	if err := vdom.Invoke(h, e); err != nil {
		t.Fatalf("dispatch %s to %q: %v", e.Type, label, err)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
