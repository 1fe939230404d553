// Package layout holds page-level layout tokens and the document shell shared
// by the interface pages.
package layout

import (
	"github.com/passport-scorer/scorer-ui/pkg/render"
	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

// PagePadding is the horizontal padding applied to full-width page regions.
const PagePadding = "px-4 md:px-10 lg:px-20"

const (
	lightBody = "bg-white text-gray-900 min-h-screen flex flex-col"
	darkBody  = "bg-[#091D39] text-white min-h-screen flex flex-col"
)

// PageOptions describes a full page.
type PageOptions struct {
	Title       string
	Dark        bool
	Main        *vdom.VNode
	Footer      *vdom.VNode
	StyleSheets []string
}

// Page wraps the main content and footer in the document shell. Dark pages
// carry the "dark" class on <html> so utility classes can switch variants.
func Page(opts PageOptions) render.PageData {
	page := render.PageData{
		Title:       opts.Title,
		BodyClass:   lightBody,
		StyleSheets: opts.StyleSheets,
		Meta: []render.MetaTag{
			{Name: "color-scheme", Content: "light dark"},
		},
		Body: vdom.Fragment(
			vdom.Main(vdom.Class("grow", PagePadding, "py-8"), opts.Main),
			opts.Footer,
		),
	}
	if opts.Dark {
		page.HTMLClass = "dark"
		page.BodyClass = darkBody
	}
	return page
}
