package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/modelgrid/layout/pkg/errors"
	"github.com/modelgrid/layout/pkg/layout"
)

// Config holds user defaults loaded from the config file. Flags given
// on the command line always win over config values.
//
// Example ~/.config/mglayout/config.toml:
//
//	algorithm = "layered"
//
//	[settings]
//	direction = "LR"
//	layerSpacing = 120
//	iterations = 250
type Config struct {
	// Algorithm is the default layout algorithm for compute.
	Algorithm string `toml:"algorithm"`

	// Settings are default algorithm options, merged under any
	// options given as flags.
	Settings map[string]any `toml:"settings"`
}

// LayoutSettings returns the configured defaults as an engine option bag.
func (c Config) LayoutSettings() layout.Settings {
	if len(c.Settings) == 0 {
		return nil
	}
	return layout.Settings(c.Settings)
}

// configPath returns the config file location using the XDG standard
// (~/.config/mglayout/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location
// when path is empty. A missing file is not an error: the zero Config
// is returned so built-in defaults apply.
func loadConfig(path string) (Config, error) {
	if path == "" {
		p, err := configPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return cfg, nil
}
