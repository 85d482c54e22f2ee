// Package config loads the optional dragonctl.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Color modes accepted by the output section.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the flat dragonctl configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `toml:"color"` // "auto", "always" or "never"
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"` // zerolog level name
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: ColorAuto},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the configuration file at path. A missing file is not an
// error; defaults apply. Values absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("invalid output.color %q (want auto, always or never)", cfg.Output.Color)
	}

	return cfg, nil
}
