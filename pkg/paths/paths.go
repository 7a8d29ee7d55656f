package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/otomatty/shinsei/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the application data directory
	EnvDataDir = "SHINSEI_DATA_DIR"
)

// Default directories and files
// IMPORTANT: these constants define the on-disk datastore layout and are
// NOT user-configurable. They must remain consistent across installations
// so existing datastores stay reachable.
const (
	// AppDirName is the per-application directory name under the XDG
	// base directories
	AppDirName = "shinsei"

	// DatastoresDirName is the directory holding all datastores inside
	// the application data directory
	DatastoresDirName = "studio-datastores"

	// LogFileName is the name of the log file
	LogFileName = "shinsei.log"
)

// Paths provides centralized path management for the storage layer
type Paths interface {
	// AppDataDir returns the application data root. Resolved once at
	// construction and read-only afterwards.
	AppDataDir() string

	// DatastoresRoot returns the directory holding all datastores.
	DatastoresRoot() string

	// DatastoreDir validates name and returns the datastore's
	// directory path. The directory is not created here.
	DatastoreDir(name string) (string, error)

	// EntryPath validates both names and returns the path of the
	// entry's file. The file is not created here.
	EntryPath(datastore, key string) (string, error)

	// ConfigDir returns the application config directory.
	ConfigDir() string

	// CacheDir returns the application cache directory.
	CacheDir() string

	// LogFilePath returns the path of the application log file.
	LogFilePath() string
}

type paths struct {
	// appDataDir is the resolved application data root
	appDataDir string
}

// New creates a new Paths instance rooted at the given application data
// directory. If appDataDir is empty, it is resolved from SHINSEI_DATA_DIR
// or falls back to the XDG data home.
func New(appDataDir string) (Paths, error) {
	dir := appDataDir
	if dir == "" {
		dir = os.Getenv(EnvDataDir)
	}
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, AppDirName)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataDir,
			"failed to get absolute path for data directory")
	}

	return &paths{appDataDir: absDir}, nil
}

func (p *paths) AppDataDir() string {
	return p.appDataDir
}

func (p *paths) DatastoresRoot() string {
	return filepath.Join(p.appDataDir, DatastoresDirName)
}

func (p *paths) DatastoreDir(name string) (string, error) {
	if err := ValidateName(name, RoleDatastore); err != nil {
		return "", err
	}
	return filepath.Join(p.DatastoresRoot(), name), nil
}

func (p *paths) EntryPath(datastore, key string) (string, error) {
	dir, err := p.DatastoreDir(datastore)
	if err != nil {
		return "", err
	}
	if err := ValidateName(key, RoleKey); err != nil {
		return "", err
	}
	return filepath.Join(dir, key), nil
}

func (p *paths) ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

func (p *paths) CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppDirName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
