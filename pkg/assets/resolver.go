package assets

// DefaultPrefix is the URL path the icon assets are served under.
const DefaultPrefix = "/assets/"

// Resolver maps an asset name to its full URL path.
type Resolver interface {
	// Asset resolves a source asset name to its URL path, including the
	// configured prefix and any fingerprinted filename.
	//
	// Example:
	//   resolver.Asset("docsIconDark.svg") → "/assets/docsIconDark.3f2a1b4c.svg"
	Asset(source string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with a path prefix.
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

// passthrough returns asset names unchanged apart from the prefix.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that only applies the prefix:
//
//	resolver := assets.NewPassthroughResolver(assets.DefaultPrefix)
//	resolver.Asset("githubLogoDark.svg") // "/assets/githubLogoDark.svg"
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
