// ============================================================================
// datetime-helper - Calendar date utilities
// ============================================================================
//
// Package:     version
// Description: Build and version metadata of the datecal tool
// Author:      msto63
// Created:     2025-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"regexp"
	"runtime"
)

// Set at build time with -ldflags "-X .../version.GitCommit=..."
var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsRelease reports whether the binary was built from a tagged release
func (i Info) IsRelease() bool {
	return semverRegex.MatchString(i.Version) && i.GitCommit != "development"
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("datecal v%s (%s, built %s, %s %s)", i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
