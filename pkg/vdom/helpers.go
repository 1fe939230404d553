package vdom

// Text returns a text node. The renderer escapes its content.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw returns a node whose content is written without escaping. Only pass
// markup the program itself produced.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without emitting a wrapper element. It accepts
// the same child arguments as the element factories; attributes are
// dropped since a fragment has no tag to carry them.
func Fragment(children ...any) *VNode {
	node := createElement("", children)
	node.Kind = KindFragment
	node.Props = nil
	return node
}

// If returns node when cond holds and nil otherwise, so element factories
// skip it.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}
