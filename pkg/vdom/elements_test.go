package vdom

import "testing"

func TestCreateElementArguments(t *testing.T) {
	child := Span(Text("child"))
	comp := Func(func() *VNode { return Text("comp") })

	node := Div(
		nil,
		Class("a", "b"),
		[]Attr{ID("root"), {}},
		child,
		[]*VNode{Text("x"), nil},
		comp,
		"shorthand",
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "a b" {
		t.Errorf("class = %v, want %q", node.Props["class"], "a b")
	}
	if node.Props["id"] != "root" {
		t.Errorf("id = %v, want root", node.Props["id"])
	}
	if _, ok := node.Props[""]; ok {
		t.Error("empty attribute key should be skipped")
	}
	if len(node.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4", len(node.Children))
	}
	if node.Children[0] != child {
		t.Error("first child should be the span")
	}
	if node.Children[2].Kind != KindComponent {
		t.Errorf("third child kind = %v, want Component", node.Children[2].Kind)
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "shorthand" {
		t.Errorf("string argument should become a text node, got %+v", node.Children[3])
	}
}

func TestClassSkipsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{"none", nil, ""},
		{"single", []string{"flex"}, "flex"},
		{"empty tail", []string{"flex", ""}, "flex"},
		{"verbatim", []string{"flex", "extra-class  other"}, "flex extra-class  other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Class(tt.classes...).Value; got != tt.want {
				t.Errorf("Class(%q) = %q, want %q", tt.classes, got, tt.want)
			}
		})
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"img", "meta", "link"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "a", "span", "script"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true, want false", tag)
		}
	}
}

func TestConditionalHelpers(t *testing.T) {
	n := Text("x")
	if If(true, n) != n || If(false, n) != nil {
		t.Error("If returned unexpected node")
	}
	if div := Div(If(false, n)); len(div.Children) != 0 {
		t.Errorf("a false If should leave no child, got %d", len(div.Children))
	}

	other := Text("y")
	frag := Fragment(nil, n, "z", []*VNode{other}, Class("ignored"))
	if frag.Kind != KindFragment || len(frag.Children) != 3 {
		t.Errorf("Fragment children = %d, want 3", len(frag.Children))
	}
	if len(frag.Props) != 0 {
		t.Errorf("Fragment should not carry attributes, got %v", frag.Props)
	}
	if Raw("<b>").Kind != KindRaw {
		t.Error("Raw should produce KindRaw")
	}
}
