package server

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/passport-scorer/scorer-ui/internal/config"
	"github.com/passport-scorer/scorer-ui/pkg/assets"
)

// assetDir is the directory inside the public tree that holds the icons.
const assetDir = "assets"

const immutableCache = "public, max-age=31536000, immutable"

// staticFiles serves the public asset tree. Fingerprinted names from the
// manifest are mapped back to their source files.
type staticFiles struct {
	fsys        fs.FS
	prefix      string
	maxAge      int
	fingerprint map[string]string
}

func newStaticFiles(fsys fs.FS, cfg config.StaticConfig, m *assets.Manifest) *staticFiles {
	sf := &staticFiles{
		fsys:        fsys,
		prefix:      cfg.Prefix,
		maxAge:      cfg.MaxAge,
		fingerprint: make(map[string]string),
	}
	for _, src := range m.Sources() {
		if resolved := m.Resolve(src); resolved != src {
			sf.fingerprint[resolved] = src
		}
	}
	return sf
}

// relPath returns the sanitized path below the prefix. Subdirectories are
// allowed; dot segments, absolute paths, backslashes and NUL bytes are not.
func (sf *staticFiles) relPath(urlPath string) (string, bool) {
	rel, ok := strings.CutPrefix(urlPath, sf.prefix)
	if !ok || rel == "" {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}
	clean := path.Clean(rel)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}

func (sf *staticFiles) serve(w http.ResponseWriter, r *http.Request) {
	rel, ok := sf.relPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	cache := "public, max-age=" + strconv.Itoa(sf.maxAge)
	if src, fingerprinted := sf.fingerprint[rel]; fingerprinted {
		rel = src
		cache = immutableCache
	}

	name := path.Join(assetDir, rel)
	data, err := fs.ReadFile(sf.fsys, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if path.Ext(name) == ".svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.Header().Set("Cache-Control", cache)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, path.Base(name), time.Time{}, bytes.NewReader(data))
}
