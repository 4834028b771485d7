package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the lazynav configuration
type Config struct {
	StartRoute string    `mapstructure:"start_route" yaml:"start_route"`
	UI         UIConfig  `mapstructure:"ui" yaml:"ui"`
	Log        LogConfig `mapstructure:"log" yaml:"log"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	ShowBreadcrumbs bool   `mapstructure:"show_breadcrumbs" yaml:"show_breadcrumbs"`
	AltScreen       bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	AccentColor     string `mapstructure:"accent_color" yaml:"accent_color"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// GetConfigDir returns the lazynav config directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// GetConfigPath returns the config file path, honouring LAZYNAV_CONFIG
func GetConfigPath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load reads the configuration from path (or the default location when
// path is empty). A missing file yields defaults. Env vars with the
// LAZYNAV_ prefix override file values, e.g. LAZYNAV_UI_SHOW_BREADCRUMBS.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("start_route", DefaultStartRoute)
	v.SetDefault("ui.show_breadcrumbs", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.accent_color", DefaultAccentColor)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return Config{}, fmt.Errorf("config path: %w", err)
		}
	}
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as YAML to path (or the default location when path is
// empty), creating the config directory if needed
func Save(path string, cfg Config) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return fmt.Errorf("config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
