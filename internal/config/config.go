package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the user-editable application configuration, read from
// ~/.config/folio/config.yaml. Everything here has a sensible default; the
// file is optional.
type Config struct {
	// DataDir overrides where storage and the lock file live.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Theme is the admin UI theme name (nord, dracula, gruvbox, catppuccin).
	Theme string `mapstructure:"theme" yaml:"theme"`

	// ConfirmDelete gates portfolio deletion behind a y/n prompt.
	ConfirmDelete bool `mapstructure:"confirm_delete" yaml:"confirm_delete"`
}

// DefaultPath returns the default path for the configuration file
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "folio", "config.yaml")
}

func defaults() *Config {
	return &Config{
		Theme:         "nord",
		ConfirmDelete: true,
	}
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file returns the default configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("theme", "nord")
	v.SetDefault("confirm_delete", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
