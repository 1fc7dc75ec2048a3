// Package config loads reader settings from an optional TOML file and
// MDREADER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "mdreader"
	envPrefix = "MDREADER"
)

// Config is the resolved configuration.
type Config struct {
	Panel   PanelConfig   `mapstructure:"panel"`
	Reader  ReaderConfig  `mapstructure:"reader"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PanelConfig sizes the settings panel.
type PanelConfig struct {
	Width int `mapstructure:"width"`
}

// ReaderConfig controls the article viewport.
type ReaderConfig struct {
	CellPixels int  `mapstructure:"cell_pixels"`
	Mouse      bool `mapstructure:"mouse"`
	Watch      bool `mapstructure:"watch"`
}

// LoggingConfig selects where and how much to log. An empty File disables
// logging because the terminal belongs to the UI.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Panel:  PanelConfig{Width: 44},
		Reader: ReaderConfig{CellPixels: 10, Mouse: true, Watch: true},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("panel.width", def.Panel.Width)
	v.SetDefault("reader.cell_pixels", def.Reader.CellPixels)
	v.SetDefault("reader.mouse", def.Reader.Mouse)
	v.SetDefault("reader.watch", def.Reader.Watch)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.file", def.Logging.File)
}

// Dir returns the directory searched for config.toml.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// Load resolves the configuration. When path is empty the standard config
// directory is searched and a missing file is not an error; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the UI relies on.
func (c *Config) Validate() error {
	if c.Panel.Width < 24 {
		return fmt.Errorf("panel.width must be at least 24, got %d", c.Panel.Width)
	}
	if c.Reader.CellPixels < 1 {
		return fmt.Errorf("reader.cell_pixels must be positive, got %d", c.Reader.CellPixels)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
