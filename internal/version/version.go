// Package version reports the build version of ringspin.
package version

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is the source revision, also set via ldflags
	Commit = ""
)

// Short returns the version string
func Short() string {
	return Version
}

// Full returns the version followed by the commit when one is known
func Full() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
