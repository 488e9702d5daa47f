// Package misc keeps build time information.
package misc

var (
	appName = "cardcut"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name. Used for logger names and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, normally set with
// -ldflags "-X cardcut/misc.version=..."
func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
