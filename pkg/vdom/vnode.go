package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <a>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (trusted content only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of the markup tree.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds element attributes.
type Props map[string]any

// Attr returns the attribute value as a string, or "" when it is unset or
// not a string.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Props == nil {
		return ""
	}
	s, _ := v.Props[key].(string)
	return s
}

// Find returns the first node in depth-first order for which match returns
// true, or nil. Component nodes are not expanded.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, child := range v.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of all descendant text nodes.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var out string
	for _, child := range v.Children {
		out += child.TextContent()
	}
	return out
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
