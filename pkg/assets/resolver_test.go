package assets

import "testing"

func TestPassthroughResolver(t *testing.T) {
	r := NewPassthroughResolver(DefaultPrefix)

	if got := r.Asset("githubLogoDark.svg"); got != "/assets/githubLogoDark.svg" {
		t.Errorf("Asset() = %q", got)
	}
}

func TestManifestResolver(t *testing.T) {
	m := NewManifest()
	m.Set("githubLogoLight.svg", "githubLogoLight.deadbeef.svg")
	r := NewResolver(m, "https://cdn.example.com/assets/")

	tests := []struct {
		source string
		want   string
	}{
		{"githubLogoLight.svg", "https://cdn.example.com/assets/githubLogoLight.deadbeef.svg"},
		{"docsIconLight.svg", "https://cdn.example.com/assets/docsIconLight.svg"},
	}
	for _, tt := range tests {
		if got := r.Asset(tt.source); got != tt.want {
			t.Errorf("Asset(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}
