package render

import "github.com/passport-scorer/scorer-ui/pkg/vdom"

// inlineElements don't get newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"br":     true,
	"code":   true,
	"em":     true,
	"i":      true,
	"img":    true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"title":  true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":    true,
	"checked":  true,
	"defer":    true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
