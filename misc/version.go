// Package misc keeps build time information.
package misc

// Overwritten at link time with -ldflags "-X osr/misc.version=...".
var (
	appName = "osr"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns name of the program as used in log and report file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns hash of the commit program was built from.
func GetGitHash() string {
	return gitHash
}
