package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})
		}
	}

	return node
}

// Document structure elements

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func LinkEl(args ...any) *VNode { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }

// Content sectioning elements

func Footer(args ...any) *VNode { return createElement("footer", args) }
func Main(args ...any) *VNode   { return createElement("main", args) }
func H1(args ...any) *VNode     { return createElement("h1", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }

// Inline text semantics

func A(args ...any) *VNode { return createElement("a", args) }

// Embedded content

func Img(args ...any) *VNode { return createElement("img", args) }
