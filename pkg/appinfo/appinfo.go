// Package appinfo reports application metadata to the UI layer:
// name, version, platform, and build details.
package appinfo

import "runtime"

// Name is the application name
const Name = "shinsei"

// Build-time variables, overridden via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// AppInfo describes the running application
type AppInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
}

// Get returns the application info
func Get() AppInfo {
	return AppInfo{
		Name:     Name,
		Version:  version,
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
	}
}

// VersionInfo carries detailed build information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersion returns detailed version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
	}
}
