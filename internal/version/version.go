// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/livp123/failscan/internal/version.Version=v1.2.3".
package version

// Version is the failscan release.
// Version 是 failscan 的发布版本。
var Version = "dev"

// String returns the version line printed by --version.
func String() string {
	return "failscan " + Version
}
