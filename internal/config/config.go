// Package config loads the launch options of the application: where the
// statistics live, how verbose the log is, and how often the loop ticks and
// autosaves. The ledger's own configuration (segment lengths, language,
// autostart) lives in the statistics document, not here.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// FileName is the launch options file, looked up in the app config dir.
	FileName  = "workrest.yaml"
	envPrefix = "WORKREST"

	keyDataFile         = "data_file"
	keyLogLevel         = "log_level"
	keyAutosaveInterval = "autosave_interval"
	keyTickInterval     = "tick_interval"
)

// Options are the resolved launch options.
type Options struct {
	DataFile         string
	LogLevel         slog.Level
	AutosaveInterval time.Duration
	TickInterval     time.Duration
	// ConfigFile is the options file that was read, empty when none existed.
	ConfigFile string
}

// Dir returns <user config dir>/<appName>.
func Dir(appName string) (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configHome, appName), nil
}

// Load reads <dir>/workrest.yaml when present, applies WORKREST_* environment
// overrides, and fills the rest with defaults. A missing file is not an error.
func Load(dir string) (Options, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyDataFile, filepath.Join(dir, "stats.json"))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyAutosaveInterval, "5m")
	v.SetDefault(keyTickInterval, "1s")

	var options Options
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return options, fmt.Errorf("read %s: %w", FileName, err)
		}
	} else {
		options.ConfigFile = v.ConfigFileUsed()
	}

	options.DataFile = expandHome(v.GetString(keyDataFile))

	level, err := ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return options, err
	}
	options.LogLevel = level

	if options.AutosaveInterval, err = positiveDuration(v, keyAutosaveInterval); err != nil {
		return options, err
	}
	if options.TickInterval, err = positiveDuration(v, keyTickInterval); err != nil {
		return options, err
	}
	return options, nil
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
func ParseLevel(text string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(text))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q: %w", keyLogLevel, text, err)
	}
	return level, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return duration, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
