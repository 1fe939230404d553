package render

import (
	"io"

	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode rendered inside <body>.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// HTMLClass is the class attribute of the html element.
	HTMLClass string

	// BodyClass is the class attribute of the body element.
	BodyClass string

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Scripts contains inline scripts appended to the end of the body.
	Scripts []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, Document(page)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Document builds the <html> tree for page. Scripts are emitted unescaped
// at the end of <body>.
func Document(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	body := []any{vdom.Class(page.BodyClass), page.Body}
	for _, script := range page.Scripts {
		body = append(body, vdom.Script(vdom.Raw(script)))
	}

	return vdom.Html(
		vdom.Lang(lang),
		vdom.Class(page.HTMLClass),
		head(page),
		vdom.Body(body...),
	)
}

func head(page PageData) *vdom.VNode {
	children := []any{
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(vdom.Text(page.Title))),
	}
	for _, meta := range page.Meta {
		children = append(children, vdom.Meta(vdom.Name(meta.Name), vdom.Content(meta.Content)))
	}
	for _, href := range page.StyleSheets {
		children = append(children, vdom.LinkEl(vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	return vdom.Head(children...)
}
