package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the full version line printed by --version.
func String() string {
	return fmt.Sprintf("numdiff %s (%s, %s)", Version, CommitHash, BuildDate)
}
