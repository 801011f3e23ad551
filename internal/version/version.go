package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/chatstyle/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/chatstyle/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/chatstyle/internal/version.Date={{.Date}}
)

// String is the one-line form printed by `chatstyle version`
func String() string {
	return fmt.Sprintf("chatstyle %s (commit %s, built %s)", Version, Commit, Date)
}
