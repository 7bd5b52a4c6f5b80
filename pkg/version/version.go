// Package version exposes build identification for the insperplot binary.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	// Version is the semantic version of the release.
	Version = "dev"
	// GitHash is the Git hash of the source the binary was built from.
	GitHash = "<unknown>"
)

// String returns the version and hash in one line.
func String() string {
	return fmt.Sprintf("insperplot %s (%s)", Version, GitHash)
}
