// Package version reports the build version of editable-demo.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/editable/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/editable/internal/version.Commit=abc1234"
//
// Builds without ldflags fall back to the VCS stamp in the build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info)
}

// resolve fills missing version and commit values from build info.
func resolve(version, commit string, info *debug.BuildInfo) (string, string) {
	var revision, modified, vcsTime string
	if info != nil {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			case "vcs.time":
				vcsTime = s.Value
			}
		}
	}

	if commit == "" && revision != "" {
		commit = revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}

	if version == "" {
		version = "dev"
		if len(vcsTime) >= 10 {
			// RFC 3339 date part, e.g. 2026-10-18
			version = "dev-" + vcsTime[:4] + vcsTime[5:7] + vcsTime[8:10]
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
