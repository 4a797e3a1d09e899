package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/trkcli/trk/internal/paths"
)

// Settings is the typed runtime view of the global configuration, read
// through Viper. Migrations and validation operate on the raw Document;
// commands that only need a value use Settings.
type Settings struct {
	Version int             `mapstructure:"version" yaml:"version"`
	Tracker TrackerSettings `mapstructure:"tracker" yaml:"tracker"`
	Git     GitSettings     `mapstructure:"git" yaml:"git"`
}

// TrackerSettings holds work-tracking service settings.
type TrackerSettings struct {
	URL      string `mapstructure:"url" yaml:"url"`
	Username string `mapstructure:"username" yaml:"username"`
}

// GitSettings holds local git settings.
type GitSettings struct {
	DefaultRemote string `mapstructure:"default_remote" yaml:"default_remote"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.GlobalConfigDir())

	// Environment variable support (TRK_GIT_DEFAULT_REMOTE etc.)
	viper.SetEnvPrefix("TRK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("git.default_remote", DefaultRemote)
}

// DefaultRemote is the remote queried for branch auto-detection.
const DefaultRemote = "origin"

// Load reads the runtime settings.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file is found.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A missing file is only an error when the user named one
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &s, nil
}
