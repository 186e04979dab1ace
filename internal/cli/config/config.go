// Package config loads lvlviz CLI configuration by layering, lowest
// precedence first: built-in defaults, an optional YAML file, LVLVIZ_*
// environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "LVLVIZ_"

// defaultConfigFile is probed when no --config path is given.
const defaultConfigFile = "lvlviz.yaml"

// Config holds every CLI setting.
type Config struct {
	// Edges is the path of the edge-list CSV ("src,dst" records).
	Edges string `koanf:"edges"`

	// Labels is the optional path of the per-node label CSV.
	Labels string `koanf:"labels"`

	// Dataset names the dataset, selecting color schemes and titles.
	Dataset string `koanf:"dataset"`

	// Tool picks the rendering variant: "quick" or "styled".
	Tool string `koanf:"tool"`

	// Output is the image path written by plotting commands.
	Output string `koanf:"output"`

	// Format forces the image encoding ("png" or "svg"); empty derives
	// it from the output extension.
	Format string `koanf:"format"`

	// Verbose enables progress logging.
	Verbose bool `koanf:"verbose"`
}

// defaults is the lowest configuration layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"edges":   "",
		"labels":  "",
		"dataset": "",
		"tool":    "styled",
		"output":  "",
		"format":  "",
		"verbose": false,
	}
}

// Load builds the Config. path is an explicit config file (its absence is
// an error); with an empty path the default file is used when present.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	cfgFile := path
	if cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			cfgFile = defaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", cfgFile, err)
		}
	}

	// LVLVIZ_TOOL=quick → tool=quick.
	envLoader := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	})
	if err := k.Load(envLoader, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &c, nil
}
