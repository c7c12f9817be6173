// Package buildinfo exposes the version stamped into the isogrid binary
// at build time.
//
// Release builds override the defaults with ldflags:
//
//	go build -ldflags "-X github.com/mshaler/isogrid/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/mshaler/isogrid/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/mshaler/isogrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Defaults describe an unstamped developer build.
var (
	// Version is the semantic version, "dev" when built from source.
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String formats the build info as plain lines, without cobra
// templating.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template for the --version flag.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
