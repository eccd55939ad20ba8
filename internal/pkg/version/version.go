package version

import "runtime/debug"

// Set at link time, e.g.
//
//	-ldflags "-X setup-link/internal/pkg/version.Tag=v1.2.3 -X setup-link/internal/pkg/version.Branch=main"
//
// The Go toolchain stamps the commit and dirty state, but not the branch or tag.
var (
	Tag    = "none"
	Branch = "unknown"
)

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// GetGitInfo returns the VCS metadata stamped into the binary by the Go toolchain.
func GetGitInfo() gitInfo {
	info := gitInfo{Commit: "unknown", Branch: Branch, Tag: Tag}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fromSettings(info, bi.Settings)
}

func fromSettings(info gitInfo, settings []debug.BuildSetting) gitInfo {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}
