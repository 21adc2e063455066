package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-10-18T09:30:00Z"},
		},
	}

	tests := []struct {
		name        string
		version     string
		commit      string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{"ldflags win", "v1.0.0", "abc", vcs, "v1.0.0", "abc"},
		{"from vcs", "", "", vcs, "dev-20261018", "0123456-dirty"},
		{"module version", "", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.2.1"}}, "v0.2.1", "unknown"},
		{"no build info", "", "", nil, "dev", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := resolve(tt.version, tt.commit, tt.info)
			if v != tt.wantVersion || c != tt.wantCommit {
				t.Errorf("resolve() = (%q, %q), want (%q, %q)", v, c, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}
