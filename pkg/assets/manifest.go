// Package assets resolves static asset names (the footer icons) to the URL
// paths they are served from.
//
// A production deployment may fingerprint asset files for cache busting and
// record the mapping in a manifest.json:
//
//	{
//	  "docsIconDark.svg": "docsIconDark.3f2a1b4c.svg",
//	  "githubLogoDark.svg": "githubLogoDark.9c8d7e6f.svg"
//	}
//
// Without a manifest the passthrough resolver keeps names unchanged, so
// "docsIconDark.svg" resolves to "/assets/docsIconDark.svg".
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

// Manifest holds the mapping from source asset names to fingerprinted names.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Load reads a manifest.json file from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// LoadFS reads a manifest.json file from fsys.
func LoadFS(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Manifest, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Manifest{entries: entries}, nil
}

// Fingerprint builds a manifest for every regular file directly inside dir,
// naming each "<base>.<hash>.<ext>" where hash is the first 8 hex characters
// of the SHA-256 of the file contents.
func Fingerprint(fsys fs.FS, dir string) (*Manifest, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	m := NewManifest()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(data)
		m.Set(entry.Name(), fingerprintName(entry.Name(), hex.EncodeToString(sum[:])[:8]))
	}
	return m, nil
}

func fingerprintName(name, hash string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + hash + ext
}

// Resolve returns the fingerprinted name for the given source name.
// If not found, returns the original name unchanged.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has returns true if the manifest contains the given source name.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or updates an entry in the manifest.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Sources returns the source names in sorted order.
func (m *Manifest) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the manifest in the manifest.json format.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return json.Marshal(m.entries)
}
