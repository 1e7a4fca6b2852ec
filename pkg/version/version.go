// Package version exposes the build version of paginate.
package version

// Version is set at build time with
// -ldflags "-X github.com/rshade/paginate/pkg/version.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // Overridden by the linker.

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
