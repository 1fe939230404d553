package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Available on"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Available on" {
		t.Errorf("got %q, want %q", html, "Available on")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("flex", "items-center"),
		vdom.A(vdom.Href("https://ceramic.network/"), vdom.Target("_blank"),
			vdom.Span(vdom.Text(" Ceramic")),
		),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="flex items-center"><a href="https://ceramic.network/" target="_blank"><span> Ceramic</span></a></div>`
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "img",
			node: vdom.Img(vdom.Src("/assets/docsIconDark.svg"), vdom.Alt("docs")),
			want: `<img alt="docs" src="/assets/docsIconDark.svg">`,
		},
		{
			name: "link",
			node: vdom.LinkEl(vdom.Rel("stylesheet"), vdom.Href("/a.css")),
			want: `<link href="/a.css" rel="stylesheet">`,
		},
		{
			name: "meta",
			node: vdom.Meta(vdom.Charset("utf-8")),
			want: `<meta charset="utf-8">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
			if strings.Contains(html, "</"+tt.name+">") {
				t.Errorf("void element should not have closing tag, got %q", html)
			}
		})
	}
}

func TestRenderAttributeValues(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Img(
		vdom.Attr{Key: "width", Value: 24},
		vdom.Attr{Key: "hidden", Value: true},
		vdom.Attr{Key: "aria-hidden", Value: true},
		vdom.Alt(`say "hi"`),
		vdom.Class(),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`width="24"`,
		` hidden`,
		`aria-hidden="true"`,
		`alt="say &quot;hi&quot;"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %q", want, html)
		}
	}
	if strings.Contains(html, ` hidden="`) {
		t.Errorf("boolean attrs should not have values, got %q", html)
	}
	if strings.Contains(html, "class=") {
		t.Errorf("empty class should be omitted, got %q", html)
	}
}

func TestRenderDeterministicAttributeOrder(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	build := func() *vdom.VNode {
		return vdom.A(vdom.Rel("noopener noreferrer"), vdom.Target("_blank"), vdom.Href("/x"), vdom.Class("mr-8"))
	}

	first, _ := renderer.RenderToString(build())
	for i := 0; i < 20; i++ {
		got, _ := renderer.RenderToString(build())
		if got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
	if first != `<a class="mr-8" href="/x" rel="noopener noreferrer" target="_blank"></a>` {
		t.Errorf("unexpected attribute order: %q", first)
	}
}

func TestRenderFragmentComponentRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Fragment(
		vdom.Div(vdom.Text("One")),
		vdom.Func(func() *vdom.VNode { return vdom.Div(vdom.Text("Two")) }),
		vdom.Raw("<!-- raw -->"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div>One</div><div>Two</div><!-- raw -->"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("RenderToString(nil) = %q, %v", html, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestRenderWriterError(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	err := renderer.RenderToWriter(failingWriter{}, vdom.Div(vdom.Text("x")))
	if err == nil {
		t.Fatal("expected writer error to propagate")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(
		vdom.Div(vdom.Text("left")),
		vdom.Div(vdom.A(vdom.Href("/"), vdom.Text("link"))),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div>\n  <div>left</div>\n  <div><a href=\"/\">link</a></div>\n</div>\n"
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}
