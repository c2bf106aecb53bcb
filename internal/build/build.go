// Package build holds version information set at link time with -ldflags -X.
package build

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
