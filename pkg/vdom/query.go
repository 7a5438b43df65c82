package vdom

import (
	"strconv"
	"strings"
)

// Walk visits every node depth-first. Returning false stops the walk.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node matching pred.
func Find(node *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func FindAll(node *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByAttr matches elements whose attribute equals value.
func ByAttr(key, value string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Attr(key) == value
	}
}

// ByHID matches the element with the given hydration id.
func ByHID(hid string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.HID == hid
	}
}

// TextContent concatenates all text beneath node.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// AssignHIDs walks the tree and assigns sequential hydration IDs to
// interactive elements, returning the handler registry keyed "hN_onclick".
func AssignHIDs(node *VNode) map[string]any {
	handlers := make(map[string]any)
	counter := 0
	Walk(node, func(n *VNode) bool {
		if !n.IsInteractive() {
			return true
		}
		counter++
		n.HID = "h" + strconv.Itoa(counter)
		for key, value := range n.Props {
			if IsHandlerKey(key) && value != nil {
				handlers[n.HID+"_"+key] = value
			}
		}
		return true
	})
	return handlers
}
