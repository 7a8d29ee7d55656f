// Package hostinfo answers the host environment queries the UI layer
// makes: home directory, hostname, process id, environment variables.
package hostinfo

import (
	"os"
	"runtime"

	"github.com/otomatty/shinsei/pkg/errors"
)

// HomePath returns the current user's home directory
func HomePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "could not find home directory")
	}
	return home, nil
}

// Hostname returns the host's name
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "could not read hostname")
	}
	return name, nil
}

// PID returns the current process id
func PID() int {
	return os.Getpid()
}

// EnvVar looks up an environment variable
func EnvVar(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OsInfo describes the host operating environment
type OsInfo struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Hostname string `json:"hostname"`
	PID      int    `json:"pid"`
}

// GetOsInfo returns combined OS information. A hostname lookup failure
// degrades to "unknown" rather than failing the call.
func GetOsInfo() OsInfo {
	hostname, err := Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return OsInfo{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		Hostname: hostname,
		PID:      PID(),
	}
}
