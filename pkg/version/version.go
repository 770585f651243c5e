// Package version exposes build information set with -ldflags.
package version

import "fmt"

// Set at build time, for example:
//
//	go build -ldflags "-X github.com/rshade/sitecarbon/pkg/version.version=v1.2.0"
//
//nolint:gochecknoglobals // Written by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns when the binary was built.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
