package footer

import (
	"strings"
	"testing"

	"github.com/passport-scorer/scorer-ui/pkg/layout"
	"github.com/passport-scorer/scorer-ui/pkg/render"
	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

func findAnchor(t *testing.T, root *vdom.VNode, href string) *vdom.VNode {
	t.Helper()

	a := root.Find(func(n *vdom.VNode) bool {
		return n.Tag == "a" && n.Attr("href") == href
	})
	if a == nil {
		t.Fatalf("no anchor with href %q", href)
	}
	return a
}

func findImg(t *testing.T, root *vdom.VNode) *vdom.VNode {
	t.Helper()

	img := root.Find(func(n *vdom.VNode) bool { return n.Tag == "img" })
	if img == nil {
		t.Fatal("no img found")
	}
	return img
}

func TestRenderDarkExample(t *testing.T) {
	root := New(nil).Render(Props{Mode: ModeDark, ClassName: "extra-class"})

	class := root.Attr("class")
	if !strings.Contains(class, "extra-class") {
		t.Errorf("root class %q missing extra-class", class)
	}

	network := findAnchor(t, root, NetworkURL)
	if network.Attr("class") != "text-white" {
		t.Errorf("emphasis class = %q, want text-white", network.Attr("class"))
	}
	if got := findImg(t, findAnchor(t, root, RepoURL)).Attr("src"); got != "/assets/githubLogoLight.svg" {
		t.Errorf("github logo = %q", got)
	}
	if got := findImg(t, findAnchor(t, root, DocsURL)).Attr("src"); got != "/assets/docsIconLight.svg" {
		t.Errorf("docs icon = %q", got)
	}
}

func TestRenderUnsetExample(t *testing.T) {
	root := New(nil).Render(Props{})

	if got := findAnchor(t, root, NetworkURL).Attr("class"); got != "text-black" {
		t.Errorf("emphasis class = %q, want text-black", got)
	}
	if got := findImg(t, findAnchor(t, root, RepoURL)).Attr("src"); got != "/assets/githubLogoDark.svg" {
		t.Errorf("github logo = %q", got)
	}
	if got := findImg(t, findAnchor(t, root, DocsURL)).Attr("src"); got != "/assets/docsIconDark.svg" {
		t.Errorf("docs icon = %q", got)
	}
}

func TestRootClass(t *testing.T) {
	tests := []struct {
		name      string
		className string
		want      string
	}{
		{"omitted", "", BaseClass + " " + layout.PagePadding},
		{"single", "mt-auto", BaseClass + " " + layout.PagePadding + " mt-auto"},
		{"verbatim", "a  b\t<c>", BaseClass + " " + layout.PagePadding + " a  b\t<c>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := View(Props{ClassName: tt.className})
			if got := root.Attr("class"); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommitURL(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"set", "3f2a1b4c9d"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := View(Props{CommitHash: tt.hash})
			commit := root.Find(func(n *vdom.VNode) bool {
				return n.Tag == "a" && n.TextContent() == "Git commit"
			})
			if commit == nil {
				t.Fatal("commit link missing")
			}
			href := commit.Attr("href")
			if href != CommitURLPrefix+tt.hash {
				t.Errorf("href = %q", href)
			}
			if !strings.HasSuffix(href, "/commit/"+tt.hash) {
				t.Errorf("href %q does not end with the commit value", href)
			}
		})
	}
}

func TestLayoutOrder(t *testing.T) {
	root := View(Props{Mode: ModeDark})

	if root.Tag != "div" || len(root.Children) != 2 {
		t.Fatalf("root should be a div with two regions, got %q with %d children", root.Tag, len(root.Children))
	}

	left := root.Children[0]
	if got := left.TextContent(); got != "Available on Ceramic" {
		t.Errorf("left text = %q", got)
	}
	span := left.Find(func(n *vdom.VNode) bool { return n.Tag == "span" })
	if span == nil || span.Attr("class") != "text-purple-softpurple" {
		t.Errorf("network name should carry the secondary color, got %+v", span)
	}

	right := root.Children[1]
	var hrefs []string
	for _, child := range right.Children {
		hrefs = append(hrefs, child.Attr("href"))
	}
	want := []string{CommitURLPrefix, RepoURL, DocsURL}
	if strings.Join(hrefs, ",") != strings.Join(want, ",") {
		t.Errorf("right region order = %v, want %v", hrefs, want)
	}

	for _, child := range append([]*vdom.VNode{findAnchor(t, root, NetworkURL)}, right.Children...) {
		if child.Attr("target") != "_blank" || child.Attr("rel") != "noopener noreferrer" {
			t.Errorf("link %q should open in a new context without opener", child.Attr("href"))
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	f := New(nil)
	r := render.NewRenderer(render.RendererConfig{})
	props := Props{Mode: ModeDark, ClassName: "x", CommitHash: "abc"}

	first, err := r.RenderToString(f.Render(props))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, _ := r.RenderToString(f.Render(props))
		if got != first {
			t.Fatalf("render %d differs", i)
		}
	}

	viaComponent, _ := r.RenderToString(vdom.Div(f.Component(props)))
	if viaComponent != "<div>"+first+"</div>" {
		t.Error("Component should render the same markup")
	}
}

func TestRenderedHTML(t *testing.T) {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(View(Props{CommitHash: "abc123"}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="` + BaseClass + ` ` + layout.PagePadding + `">` +
		`<div>Available on<a class="text-black" href="https://ceramic.network/" rel="noopener noreferrer" target="_blank"><span class="text-purple-softpurple"> Ceramic</span></a></div>` +
		`<div class="flex">` +
		`<a class="mr-8" href="https://github.com/gitcoinco/passport-scorer/commit/abc123" rel="noopener noreferrer" target="_blank">Git commit</a>` +
		`<a aria-label="GitHub repository" class="mr-8" href="https://github.com/gitcoinco/passport-scorer" rel="noopener noreferrer" target="_blank"><img alt="GitHub" src="/assets/githubLogoDark.svg"></a>` +
		`<a aria-label="Scorer API documentation" href="https://docs.passport.gitcoin.co/building-with-passport/scorer-api" rel="noopener noreferrer" target="_blank"><img alt="Docs" src="/assets/docsIconDark.svg"></a>` +
		`</div></div>`
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}

func TestFooterBundleUsesMemo(t *testing.T) {
	f := New(nil)
	if f.Bundle(ModeDark) != f.Bundle(ModeDark) {
		t.Error("Bundle should be stable for the same mode")
	}
	if _, hit := f.Memo().Lookup(ModeDark); !hit {
		t.Error("Render and Bundle should share the memo")
	}
}

func TestBuildReportsReuse(t *testing.T) {
	f := New(nil)

	if _, reused := f.Build(Props{Mode: ModeDark}); reused {
		t.Error("first build should compute the bundle")
	}
	if _, reused := f.Build(Props{Mode: ModeDark, ClassName: "other"}); !reused {
		t.Error("className changes should not invalidate the bundle")
	}
	if _, reused := f.Build(Props{Mode: ModeLight}); reused {
		t.Error("mode change should recompute the bundle")
	}
}
