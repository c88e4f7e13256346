package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/syndromatic/syndock-migrate/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/syndromatic/syndock-migrate/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/syndromatic/syndock-migrate/internal/version.Date={{.Date}}
)
