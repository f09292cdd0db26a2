// Package version exposes the depdrift build version.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X .../internal/version.version=...".
var version = ""

// readBuildInfoFn is swapped in tests.
var readBuildInfoFn = debug.ReadBuildInfo

// GetVersion returns the linked version, the module version recorded by
// `go install`, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfoFn(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
