// Package version holds the docsift build version.
package version

// Version is the current release, overridable at build time via
// -ldflags "-X github.com/dgallion1/docsift/internal/version.Version=...".
var Version = "0.3.0"

// String returns the version string.
func String() string {
	return Version
}
