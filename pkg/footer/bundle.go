package footer

import (
	"sync"

	"github.com/passport-scorer/scorer-ui/pkg/assets"
)

// Color is a text color utility suffix ("white" renders as "text-white").
type Color string

const (
	White Color = "white"
	Black Color = "black"

	// SecondaryColor is always applied to the network name.
	SecondaryColor Color = "purple-softpurple"
)

// Icon file names. The light-colored icons are drawn on dark backgrounds and
// vice versa.
const (
	DocsIconLight   = "docsIconLight.svg"
	DocsIconDark    = "docsIconDark.svg"
	GithubLogoLight = "githubLogoLight.svg"
	GithubLogoDark  = "githubLogoDark.svg"
)

// AssetBundle is the set of mode-dependent values used by the footer.
type AssetBundle struct {
	EmphasisColor Color
	DocsIcon      string
	GithubLogo    string
}

type variant struct {
	emphasis   Color
	docsIcon   string
	githubLogo string
}

var (
	darkVariant  = variant{emphasis: White, docsIcon: DocsIconLight, githubLogo: GithubLogoLight}
	lightVariant = variant{emphasis: Black, docsIcon: DocsIconDark, githubLogo: GithubLogoDark}
)

var defaultResolver = assets.NewPassthroughResolver(assets.DefaultPrefix)

// Assets returns the bundle for mode with icons under /assets/.
func Assets(mode DisplayMode) AssetBundle {
	return AssetsFor(mode, defaultResolver)
}

// AssetsFor returns the bundle for mode, resolving icon paths through r.
func AssetsFor(mode DisplayMode, r assets.Resolver) AssetBundle {
	v := lightVariant
	if mode.IsDark() {
		v = darkVariant
	}
	return AssetBundle{
		EmphasisColor: v.emphasis,
		DocsIcon:      r.Asset(v.docsIcon),
		GithubLogo:    r.Asset(v.githubLogo),
	}
}

// Memo caches the bundle of the last mode it was asked for. It is safe for
// concurrent use.
type Memo struct {
	resolver assets.Resolver

	mu       sync.Mutex
	lastMode DisplayMode
	last     *AssetBundle
}

// NewMemo creates a Memo resolving icons through r. A nil r uses the
// default /assets/ prefix.
func NewMemo(r assets.Resolver) *Memo {
	if r == nil {
		r = defaultResolver
	}
	return &Memo{resolver: r}
}

// Get returns the bundle for mode. The same pointer is returned for as long
// as consecutive calls pass the same mode.
func (m *Memo) Get(mode DisplayMode) *AssetBundle {
	bundle, _ := m.Lookup(mode)
	return bundle
}

// Lookup is Get, also reporting whether the cached bundle was reused.
func (m *Memo) Lookup(mode DisplayMode) (*AssetBundle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last != nil && m.lastMode == mode {
		return m.last, true
	}

	bundle := AssetsFor(mode, m.resolver)
	m.lastMode = mode
	m.last = &bundle
	return m.last, false
}
