package buildinfo

import (
	"runtime"
	"testing"
)

func TestCommitOr(t *testing.T) {
	orig := Commit
	defer func() { Commit = orig }()

	Commit = "linked"
	if got := CommitOr("configured"); got != "configured" {
		t.Errorf("CommitOr(configured) = %q", got)
	}
	if got := CommitOr(""); got != "linked" {
		t.Errorf("CommitOr(\"\") = %q, want linked", got)
	}

	Commit = ""
	if got := CommitOr(""); got != "" {
		t.Errorf("CommitOr with nothing set = %q, want empty", got)
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.Version == "" {
		t.Error("Version should never be empty")
	}
}
