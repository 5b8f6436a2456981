// Package config loads optional settings for the flashcard tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DeckPath string        `mapstructure:"deck_path" validate:"required"`
	Tick     time.Duration `mapstructure:"tick" validate:"gt=0"`
	Pause    time.Duration `mapstructure:"pause" validate:"gte=0"`
	Log      LogConfig     `mapstructure:"log"`
}

// LogConfig selects where diagnostic logs go. The terminal itself is owned
// by the UI, so logs only ever go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func DefaultConfig() *Config {
	return &Config{
		DeckPath: filepath.Join("cards", "deck.dat"),
		Tick:     60 * time.Millisecond,
		Pause:    800 * time.Millisecond,
		Log: LogConfig{
			Level: "info",
		},
	}
}

func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return append(paths, filepath.Join(xdg, "flashdeck"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "flashdeck"))
	}
	return paths
}

// Load reads flashdeck.yaml from the working directory or the user config
// directory. A missing file yields the defaults.
func Load() (*Config, error) {
	return load(searchPaths()...)
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("flashdeck")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return read(v)
}

func read(v *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("deck_path", def.DeckPath)
	v.SetDefault("tick", def.Tick)
	v.SetDefault("pause", def.Pause)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
