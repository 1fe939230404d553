package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "Scorer <dev>",
		HTMLClass:   "dark",
		BodyClass:   "min-h-screen",
		Meta:        []MetaTag{{Name: "color-scheme", Content: "light dark"}},
		StyleSheets: []string{"/assets/styles.css"},
		Scripts:     []string{"console.log(1)"},
		Body:        vdom.Div(vdom.Text("content")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html class="dark" lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Scorer &lt;dev&gt;</title>",
		`<meta content="light dark" name="color-scheme">`,
		`<link href="/assets/styles.css" rel="stylesheet">`,
		`<body class="min-h-screen">`,
		"<div>content</div>",
		"<script>console.log(1)</script>",
		"</body></html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in page:\n%s", want, html)
		}
	}
}

func TestRenderPageDefaults(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `<html lang="en">`) {
		t.Errorf("expected default lang, got:\n%s", html)
	}
	if strings.Contains(html, "<title>") {
		t.Errorf("title should be omitted when empty, got:\n%s", html)
	}
}

func TestRenderPageScriptIsNotEscaped(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Body:    vdom.Div(vdom.Text("a < b")),
		Scripts: []string{`if (a < b && c) { go("x"); }`},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `<script>if (a < b && c) { go("x"); }</script></body>`) {
		t.Errorf("script should be emitted verbatim before </body>:\n%s", html)
	}
	if !strings.Contains(html, "<div>a &lt; b</div>") {
		t.Errorf("body text should still be escaped:\n%s", html)
	}
}

func TestDocument(t *testing.T) {
	doc := Document(PageData{Title: "T", BodyClass: "b"})
	if doc.Tag != "html" || doc.Attr("lang") != "en" {
		t.Fatalf("root = <%s lang=%q>", doc.Tag, doc.Attr("lang"))
	}
	if len(doc.Children) != 2 || doc.Children[0].Tag != "head" || doc.Children[1].Tag != "body" {
		t.Fatalf("children = %+v", doc.Children)
	}
	title := doc.Find(func(n *vdom.VNode) bool { return n.Tag == "title" })
	if title == nil || title.TextContent() != "T" {
		t.Errorf("title = %+v", title)
	}
	if got := doc.Children[1].Attr("class"); got != "b" {
		t.Errorf("body class = %q", got)
	}
}
