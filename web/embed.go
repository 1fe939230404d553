// Package web holds the static files served next to the footer.
package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var public embed.FS

// Public returns the static file tree rooted at the public directory, so
// "assets/docsIconDark.svg" is served at "/assets/docsIconDark.svg".
func Public() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "public" is fixed.
		panic(err)
	}
	return sub
}
