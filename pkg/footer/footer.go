package footer

import (
	"github.com/passport-scorer/scorer-ui/pkg/assets"
	"github.com/passport-scorer/scorer-ui/pkg/layout"
	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

// External links.
const (
	NetworkURL      = "https://ceramic.network/"
	RepoURL         = "https://github.com/gitcoinco/passport-scorer"
	CommitURLPrefix = RepoURL + "/commit/"
	DocsURL         = "https://docs.passport.gitcoin.co/building-with-passport/scorer-api"
)

// BaseClass is always present on the root element.
const BaseClass = "flex h-[120px] items-center justify-between"

const externalRel = "noopener noreferrer"

// Props are the render inputs of the footer.
type Props struct {
	// Mode selects the light or dark variant.
	Mode DisplayMode

	// ClassName is appended verbatim to the root class list.
	ClassName string

	// CommitHash is the build's git commit, linked on the right side.
	CommitHash string
}

// CommitURL returns the repository page for hash. The hash is used as is.
func CommitURL(hash string) string {
	return CommitURLPrefix + hash
}

// Footer renders the page footer and memoizes its asset bundle.
type Footer struct {
	memo *Memo
}

// New creates a Footer resolving icon paths through r. A nil r serves icons
// from /assets/.
func New(r assets.Resolver) *Footer {
	return &Footer{memo: NewMemo(r)}
}

// Render builds the footer tree for p.
func (f *Footer) Render(p Props) *vdom.VNode {
	node, _ := f.Build(p)
	return node
}

// Build is Render, also reporting whether the memoized bundle was reused.
func (f *Footer) Build(p Props) (*vdom.VNode, bool) {
	bundle, reused := f.memo.Lookup(p.Mode)
	return view(p, bundle), reused
}

// Bundle returns the memoized bundle for mode.
func (f *Footer) Bundle(mode DisplayMode) *AssetBundle {
	return f.memo.Get(mode)
}

// Memo exposes the footer's bundle cache.
func (f *Footer) Memo() *Memo {
	return f.memo
}

// Component wraps Render for embedding in a larger tree.
func (f *Footer) Component(p Props) vdom.Component {
	return vdom.Func(func() *vdom.VNode { return f.Render(p) })
}

// View renders the footer without memoization.
func View(p Props) *vdom.VNode {
	bundle := Assets(p.Mode)
	return view(p, &bundle)
}

func view(p Props, b *AssetBundle) *vdom.VNode {
	return vdom.Div(vdom.Class(BaseClass, layout.PagePadding, p.ClassName),
		vdom.Div(
			vdom.Text("Available on"),
			externalLink(NetworkURL, vdom.Class("text-"+string(b.EmphasisColor)),
				vdom.Span(vdom.Class("text-"+string(SecondaryColor)), vdom.Text(" Ceramic")),
			),
		),
		vdom.Div(vdom.Class("flex"),
			externalLink(CommitURL(p.CommitHash), vdom.Class("mr-8"), vdom.Text("Git commit")),
			externalLink(RepoURL, vdom.Class("mr-8"), vdom.AriaLabel("GitHub repository"),
				vdom.Img(vdom.Src(b.GithubLogo), vdom.Alt("GitHub")),
			),
			externalLink(DocsURL, vdom.AriaLabel("Scorer API documentation"),
				vdom.Img(vdom.Src(b.DocsIcon), vdom.Alt("Docs")),
			),
		),
	)
}

// externalLink opens href in a new browsing context without referrer or
// opener.
func externalLink(href string, args ...any) *vdom.VNode {
	return vdom.A(append([]any{vdom.Href(href), vdom.Target("_blank"), vdom.Rel(externalRel)}, args...)...)
}
