// Package version contains build version information.
package version

// Build metadata, set at build time via
// -ldflags "-X github.com/bissquit/campus-registry/internal/version.Version=...".
var (
	Version   = "0.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
