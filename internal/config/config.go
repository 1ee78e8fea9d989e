// SPDX-License-Identifier: MIT

// Package config loads seqalign settings from defaults, an optional config
// file, SEQALIGN_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/penalty"
)

// EnvPrefix prefixes every environment override, e.g. SEQALIGN_PENALTIES_MATCH.
const EnvPrefix = "SEQALIGN"

// EnvConfigFile names the variable holding an explicit config file path.
const EnvConfigFile = "SEQALIGN_CONFIG"

// Keys, in viper's dotted form.
const (
	KeyMethod     = "method"
	KeyMatch      = "penalties.match"
	KeyMismatch   = "penalties.mismatch"
	KeyIndel      = "penalties.indel"
	KeyGapOpening = "penalties.gap_opening"
	KeyFormat     = "output.format"
	KeyPath       = "output.path"
	KeyWorkers    = "workers"
	KeyVerbose    = "verbose"
)

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"method":      KeyMethod,
	"match":       KeyMatch,
	"mismatch":    KeyMismatch,
	"indel":       KeyIndel,
	"gap-opening": KeyGapOpening,
	"format":      KeyFormat,
	"output":      KeyPath,
	"workers":     KeyWorkers,
	"verbose":     KeyVerbose,
}

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	Method    string
	Penalties Penalties
	Output    Output
	Workers   int
	Verbose   bool
}

// Penalties holds the scoring scheme. GapOpening is nil unless some layer
// sets it explicitly.
type Penalties struct {
	Match      int
	Mismatch   int
	Indel      int
	GapOpening *int `mapstructure:"-"`
}

// Output holds the result destination.
type Output struct {
	Format string
	Path   string // empty = stdout
}

// Penalty returns the caller-facing penalty configuration.
func (p Penalties) Penalty() penalty.Config {
	c := penalty.Simple(p.Match, p.Mismatch, p.Indel)
	if p.GapOpening != nil {
		c.GapOpening = penalty.Int(*p.GapOpening)
	}

	return c
}

// Load resolves the configuration.
//
// file is an explicit config file path; when empty, $SEQALIGN_CONFIG is
// tried, then config.{toml,yaml,json} under $HOME/.config/seqalign. An
// explicit file must exist; the default location is optional.
// flags may be nil; otherwise every flag listed in FlagKeys is bound.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyMethod, "NW")
	v.SetDefault(KeyMatch, penalty.DefaultMatch)
	v.SetDefault(KeyMismatch, penalty.DefaultMismatch)
	v.SetDefault(KeyIndel, penalty.DefaultIndel)
	v.SetDefault(KeyFormat, "csv")
	v.SetDefault(KeyPath, "")
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyVerbose, false)

	if file == "" {
		file = os.Getenv(EnvConfigFile)
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "seqalign"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// Unmarshal would see the flag default; only an explicit setting counts.
	if v.IsSet(KeyGapOpening) {
		c.Penalties.GapOpening = penalty.Int(v.GetInt(KeyGapOpening))
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks values that no later stage would reject with a clearer error.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalid, KeyWorkers, c.Workers)
	}
	if strings.TrimSpace(c.Output.Format) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyFormat)
	}

	return nil
}
