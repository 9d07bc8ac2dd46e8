// Package config resolves runtime settings from defaults, an optional config
// file, ANSIDEMO_* environment variables and command-line flags
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/ansidemo/terminal"
)

// Keys shared by viper, flags and config files
const (
	KeyLines    = "lines"
	KeyInterval = "interval"
	KeyColor    = "color"
	KeyDebug    = "debug"
)

const (
	EnvPrefix = "ANSIDEMO"

	DefaultLines    = 5
	DefaultInterval = time.Second
	DefaultColor    = "auto"
)

// ErrInvalid wraps every validation failure from Load
var ErrInvalid = errors.New("invalid configuration")

// Config holds resolved settings
type Config struct {
	// Lines is the number of progress lines each progress stage prints
	Lines int
	// Interval is the pause between progress lines and status updates
	Interval time.Duration
	Color    terminal.ColorChoice
	Debug    bool
}

// New returns a viper instance with defaults and environment binding.
// A non-empty file is read as the config file; its format follows the extension
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyLines, DefaultLines)
	v.SetDefault(KeyInterval, DefaultInterval)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load extracts and validates a Config
func Load(v *viper.Viper) (Config, error) {
	choice, err := terminal.ParseColorChoice(v.GetString(KeyColor))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		Lines:    v.GetInt(KeyLines),
		Interval: v.GetDuration(KeyInterval),
		Color:    choice,
		Debug:    v.GetBool(KeyDebug),
	}

	if cfg.Lines < 1 {
		return Config{}, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyLines, cfg.Lines)
	}
	if cfg.Interval < 0 {
		return Config{}, fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalid, KeyInterval, cfg.Interval)
	}
	return cfg, nil
}
