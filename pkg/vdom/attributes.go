package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining the non-empty classes with spaces.
// Each argument is kept verbatim, so a caller-supplied class list passes
// through untouched.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// Accessibility attributes

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Meta attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }
