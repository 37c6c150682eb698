// Package version holds build metadata for the lumenc CLI, overridable at
// build time via -ldflags the way the teacher's own version package is.
package version

var (
	// Version is lumenc's semantic version.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
