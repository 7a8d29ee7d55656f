// Package config loads the application configuration with koanf.
// Precedence, lowest to highest: embedded defaults, the user config
// file (<xdg config>/shinsei/config.toml), SHINSEI_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/otomatty/shinsei/pkg/errors"
	"github.com/otomatty/shinsei/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. SHINSEI_STORAGE_DATADIR and SHINSEI_LOGGING_VERBOSITY.
const EnvPrefix = "SHINSEI_"

// ConfigFileName is the name of the user configuration file
const ConfigFileName = "config.toml"

// Config holds the resolved application configuration
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Logging LoggingConfig `koanf:"logging"`
}

// StorageConfig configures the datastore layer
type StorageConfig struct {
	// DataDir overrides the application data directory. Empty means
	// resolve from SHINSEI_DATA_DIR or the XDG data home.
	DataDir string `koanf:"datadir"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// DefaultConfigPath returns the default location of the user config file
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, paths.AppDirName, ConfigFileName)
}

// Load reads configuration from the default user config path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom reads configuration layering defaults, the given config
// file (if it exists), and environment overrides.
func LoadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, when present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", configPath)
			}
		}
	}

	// 3. Environment overrides: SHINSEI_STORAGE_DATADIR -> storage.datadir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
