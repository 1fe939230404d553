package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestPublicContainsIcons(t *testing.T) {
	for _, name := range []string{
		"assets/githubLogoLight.svg",
		"assets/githubLogoDark.svg",
		"assets/docsIconLight.svg",
		"assets/docsIconDark.svg",
	} {
		data, err := fs.ReadFile(Public(), name)
		if err != nil {
			t.Fatalf("ReadFile(%q): %v", name, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s does not look like an SVG", name)
		}
	}
}
