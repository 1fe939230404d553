// Package buildinfo holds build-time metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/passport-scorer/scorer-ui/internal/buildinfo.Commit=$(git rev-parse HEAD)"
package buildinfo

import "runtime"

// Version information set at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// CommitOr returns configured when it is set, otherwise the linked-in commit.
func CommitOr(configured string) string {
	if configured != "" {
		return configured
	}
	return Commit
}
