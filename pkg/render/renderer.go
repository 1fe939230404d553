package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used for debugging as it changes whitespace.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	pretty := r.config.Pretty && !isInlineElement(tag)

	if pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if pretty {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}

	blockChildren := pretty && hasElementChild(node)
	if blockChildren {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if blockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// renderAttributes renders attributes in sorted key order.
func (r *Renderer) renderAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		s := attrToString(value)
		if s == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}
	return nil
}

// hasElementChild reports whether any direct child is a block-level element.
func hasElementChild(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind == vdom.KindElement && !isInlineElement(child.Tag) {
			return true
		}
	}
	return false
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
