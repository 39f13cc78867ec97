package version

import (
	"regexp"
	"strings"
	"testing"
)

var platformRegex = regexp.MustCompile(`^[a-z0-9]+/[a-z0-9]+$`)

func TestVersionFormat(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not semantic versioning", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
	if !platformRegex.MatchString(info.Platform) {
		t.Errorf("Platform %q is not os/arch", info.Platform)
	}
	if !strings.Contains(info.String(), "datecal v"+Version) {
		t.Errorf("String() = %q", info.String())
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"development build", Info{Version: "1.0.0", GitCommit: "development"}, false},
		{"tagged build", Info{Version: "1.0.0", GitCommit: "abc1234"}, true},
		{"pre-release", Info{Version: "1.0.0-rc1", GitCommit: "abc1234"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.IsRelease(); got != tt.want {
				t.Errorf("IsRelease() = %v, want %v", got, tt.want)
			}
		})
	}
}
