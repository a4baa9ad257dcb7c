package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings for the catalog.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	AccentColor       string        `mapstructure:"accent_color"`
}

// LogConfig holds logging settings. An empty path discards log output.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix REACTORNAV_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "reactornav", "catalog.db"))
	v.SetDefault("ui.animation_duration", "250ms")
	v.SetDefault("ui.accent_color", "69")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("REACTORNAV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "reactornav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REACTORNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default config file is fine
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.AnimationDuration < 0 {
		return Config{}, fmt.Errorf("ui.animation_duration must not be negative, got %s", c.UI.AnimationDuration)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("REACTORNAV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "reactornav", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.animation_duration", cfg.UI.AnimationDuration.String())
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
