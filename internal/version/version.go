// Package version holds build metadata, set with -ldflags at release time.
package version

import "fmt"

var (
	// Version is the current release of scene-plot
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns the one-line version banner printed by -version.
func String() string {
	return fmt.Sprintf("scene-plot %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
