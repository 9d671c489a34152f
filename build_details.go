// Package gqlvisit is the module root; it holds only build metadata. The
// engine itself lives in ast, visitor, parallel, and typeinfo.
package gqlvisit

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build.
	// For development builds, this will show "dev".
	version = "dev"
	// commit is set via ldflags during build.
	commit = "unknown"
	// buildTime is set via ldflags during build, in RFC3339 format.
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source.
func Version() string {
	return version
}

// Commit returns the git commit hash the build was produced from, or
// 'unknown' for a development build.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown' for a
// development build.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go toolchain version used to compile the binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use for any outbound request
// the engine's surfaces make.
func UserAgent() string {
	return fmt.Sprintf("gqlvisit/%s", version)
}

// BuildInfo returns a multi-line summary of all build metadata. The CLI's
// version command does not use it; it prints a fixed version string.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
