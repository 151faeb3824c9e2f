// Package config resolves readmegen settings from flags, environment and an
// optional YAML file. Every setting has a default, so no file is needed.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood in readmegen.yaml and as READMEGEN_* variables.
const (
	KeyOutput       = "output"
	KeyLogLevel     = "log_level"
	KeyNoColor      = "no_color"
	KeySanitizeHTML = "sanitize_html"

	EnvPrefix = "READMEGEN"
	FileName  = "readmegen"
)

// Config holds the resolved settings for one run.
type Config struct {
	Output       string
	LogLevel     string
	NoColor      bool
	SanitizeHTML bool
}

// New returns a viper instance with defaults, environment bindings and the
// config file search path. configFile, when set, must exist.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv(KeyNoColor, EnvPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, fmt.Errorf("config: bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(configFile), err)
		}
	}
	return v, nil
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, "README.md")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeySanitizeHTML, false)
}

// Load reads the resolved settings out of v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Output:       strings.TrimSpace(v.GetString(KeyOutput)),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		NoColor:      v.GetBool(KeyNoColor),
		SanitizeHTML: v.GetBool(KeySanitizeHTML),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects an empty output path or an unknown log level.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("config: output path is empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(raw string) (slog.Level, error) {
	switch raw {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", raw)
	}
}

func describe(configFile string) string {
	if configFile == "" {
		return FileName + ".yaml"
	}
	return configFile
}
