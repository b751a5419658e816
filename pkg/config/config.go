// Package config loads dedup's configuration: embedded defaults, then the
// user config file, then DEDUP_-prefixed environment variables. Flags are
// applied on top by the CLI layer.
package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// DEDUP_SCAN_MIN_SIZE=1024.
const EnvPrefix = "DEDUP_"

// ScanConfig controls which files are indexed.
type ScanConfig struct {
	MinSize  int64 `koanf:"min_size"`
	MaxDepth int   `koanf:"max_depth"`
}

// OutputConfig controls the stdout surface.
type OutputConfig struct {
	Verbose bool   `koanf:"verbose"`
	Format  string `koanf:"format"`
}

// ActionConfig controls mutation behavior.
type ActionConfig struct {
	DryRun bool `koanf:"dry_run"`
}

// Config is the merged configuration for a run.
type Config struct {
	Scan   ScanConfig   `koanf:"scan"`
	Output OutputConfig `koanf:"output"`
	Action ActionConfig `koanf:"action"`
}

// Load builds the configuration from defaults, the user config file (if
// present) and environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, if it exists
	configPath := paths.ConfigFile()
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", configPath)
		}
	}

	// 3. Environment variables. Only the first underscore separates the
	// section from the key: DEDUP_SCAN_MIN_SIZE -> scan.min_size.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the embedded defaults without touching the filesystem or
// environment.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "auto"},
	}
}
