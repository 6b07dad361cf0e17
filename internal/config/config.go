// SPDX-License-Identifier: MIT

// Package config loads the scaleindex CLI configuration: the filter bank
// triple (J, Q, r_max) plus output and self-check settings.
//
// Precedence, highest first: explicit flags, SCATSPECTRA_* environment
// variables, the config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/scatspectra/scale"
)

const (
	// AppName is the config file base name and the env prefix source.
	AppName = "scaleindex"
	// EnvPrefix prefixes every environment override, e.g. SCATSPECTRA_OCTAVES.
	EnvPrefix = "SCATSPECTRA"
)

// Viper keys.
const (
	KeyOctaves   = "octaves"
	KeyDensities = "densities"
	KeyMaxOrder  = "max_order"
	KeyCollapse  = "collapse"
	KeyPathLimit = "path_limit"
	KeyFormat    = "format"
)

// Collapse mode names accepted in files, env and flags.
const (
	CollapseAll    = "all"
	CollapseSecond = "second"
)

// ErrInvalid is returned for values viper accepted but the CLI cannot use.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved CLI configuration.
type Config struct {
	Octaves   int    `mapstructure:"octaves"`
	Densities []int  `mapstructure:"densities"`
	MaxOrder  int    `mapstructure:"max_order"`
	Collapse  string `mapstructure:"collapse"`
	PathLimit int    `mapstructure:"path_limit"`
	Format    string `mapstructure:"format"`
}

// DefaultConfig is J=4, Q=[1,1], second order, text output.
func DefaultConfig() Config {
	return Config{
		Octaves:   4,
		Densities: []int{1, 1},
		MaxOrder:  2,
		Collapse:  CollapseAll,
		PathLimit: scale.DefaultPathLimit,
		Format:    "text",
	}
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyOctaves, d.Octaves)
	v.SetDefault(KeyDensities, d.Densities)
	v.SetDefault(KeyMaxOrder, d.MaxOrder)
	v.SetDefault(KeyCollapse, d.Collapse)
	v.SetDefault(KeyPathLimit, d.PathLimit)
	v.SetDefault(KeyFormat, d.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result.
// An explicit path must exist. Without one, ./scaleindex.{yaml,yml,toml}
// is used when present and silently skipped otherwise.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks only what the scale package does not: names and limits
// that exist for the CLI. J, Q and r_max are left to NewScaleIndexer.
func (c Config) validate() error {
	switch c.Collapse {
	case CollapseAll, CollapseSecond:
	default:
		return fmt.Errorf("%w: %s=%q (want %q or %q)", ErrInvalid, KeyCollapse, c.Collapse, CollapseAll, CollapseSecond)
	}
	if c.PathLimit < 1 {
		return fmt.Errorf("%w: %s=%d (want >= 1)", ErrInvalid, KeyPathLimit, c.PathLimit)
	}
	return nil
}

// IndexerOptions translates the CLI settings into scale options.
func (c Config) IndexerOptions() []scale.Option {
	mode := scale.CollapseAllOrders
	if c.Collapse == CollapseSecond {
		mode = scale.CollapseSecondOrder
	}
	return []scale.Option{
		scale.WithCollapseMode(mode),
		scale.WithPathLimit(c.PathLimit),
	}
}
