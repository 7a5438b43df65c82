package vdom

import (
	"errors"
	"testing"
)

func TestCN(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a", "", " b "}, "a b"},
		{[]string{"a\tb", "c"}, "a b c"},
	}
	for _, tt := range tests {
		if got := CN(tt.in...); got != tt.want {
			t.Errorf("CN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConditionals(t *testing.T) {
	n := Span()
	if If(false, n) != nil || If(true, n) != n {
		t.Error("If mismatch")
	}
	if When(false, func() *VNode { t.Fatal("evaluated"); return nil }) != nil {
		t.Error("When(false) should be nil")
	}
	if !AttrIf(false, Disabled()).IsEmpty() {
		t.Error("AttrIf(false) should be empty")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "", "c"}, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Textf("%d:%s", i, s))
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if TextContent(nodes[1]) != "2:c" {
		t.Errorf("text = %q", TextContent(nodes[1]))
	}
}

func TestFindAndAssignHIDs(t *testing.T) {
	tree := Div(
		Button(AriaLabel("prev"), OnClick(func() {})),
		Span(Text("static")),
		Button(AriaLabel("next"), OnClick(func() {})),
	)

	handlers := AssignHIDs(tree)
	if len(handlers) != 2 {
		t.Fatalf("handlers = %d, want 2", len(handlers))
	}

	next := Find(tree, ByAttr("aria-label", "next"))
	if next == nil || next.HID != "h2" {
		t.Fatalf("next button HID = %+v", next)
	}
	if _, ok := handlers["h2_onclick"]; !ok {
		t.Error("h2_onclick not registered")
	}
	if Find(tree, ByHID("h1")).Attr("aria-label") != "prev" {
		t.Error("ByHID(h1) should find prev")
	}
	if got := len(FindAll(tree, func(n *VNode) bool { return n.Tag == "button" })); got != 2 {
		t.Errorf("FindAll buttons = %d", got)
	}
}

func TestInvokeSignatures(t *testing.T) {
	var got string
	cases := []any{
		func() { got = "plain" },
		func(e KeyboardEvent) { got = e.Key },
		func(v string) { got = v },
		func(e Event) { got = e.Type },
	}
	want := []string{"plain", "Enter", "typed", "input"}
	for i, h := range cases {
		if err := Invoke(h, Event{Type: "input", Key: KeyboardEvent{Key: KeyEnter}, Value: "typed"}); err != nil {
			t.Fatalf("Invoke(%d): %v", i, err)
		}
		if got != want[i] {
			t.Errorf("case %d got %q, want %q", i, got, want[i])
		}
	}
	if err := Invoke(42, Event{}); !errors.Is(err, ErrUnsupportedHandler) {
		t.Errorf("Invoke(42) = %v, want ErrUnsupportedHandler", err)
	}
}
