package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidColor    = errors.New("invalid color mode")

	logLevels  = []string{"debug", "info", "warn", "error"}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	Color    string `yaml:"color" env:"COLOR" env-default:"auto"`
}

// Load reads the YAML file at path when it exists and the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if !slices.Contains(logLevels, that.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if !slices.Contains(colorModes, that.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, that.Color)
	}

	return nil
}

// SlogLevel maps LogLevel onto slog, falling back to warn.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
