// SPDX-License-Identifier: MIT

// Package config loads lvalgebra settings from defaults, an optional config
// file, .env files and LVALGEBRA_* environment variables, in increasing
// order of precedence. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvalgebra/graph"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// EnvPrefix prefixes every environment override, e.g. LVALGEBRA_LOG_LEVEL.
const EnvPrefix = "LVALGEBRA"

// Output modes.
const (
	OutputHuman = "human"
	OutputJSON  = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	Tolerance float64     `mapstructure:"tolerance"`
	Output    string      `mapstructure:"output"`
	Log       LogConfig   `mapstructure:"log"`
	Graph     GraphConfig `mapstructure:"graph"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GraphConfig tunes graph construction.
type GraphConfig struct {
	PowerCacheSize int `mapstructure:"powerCacheSize"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tolerance: matrix.DefaultEqualityTolerance,
		Output:    OutputHuman,
		Log:       LogConfig{Level: "info", Format: "text"},
		Graph:     GraphConfig{PowerCacheSize: graph.DefaultPowerCacheSize},
	}
}

// New returns a viper instance primed with defaults and environment binding.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("output", d.Output)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("graph.powerCacheSize", d.Graph.PowerCacheSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped;
// with no arguments ".env" is tried.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// Load resolves the configuration. path may be empty; otherwise the file is
// read with the format implied by its extension (yaml, yml, toml or json).
func Load(path string) (*Config, error) {
	return LoadWith(New(), path)
}

// LoadWith is Load on a caller-owned viper, so flags bound with BindPFlag
// take precedence over file and environment.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalid, c.Tolerance)
	}
	switch c.Output {
	case OutputHuman, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q (want human or json)", ErrInvalid, c.Output)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}
