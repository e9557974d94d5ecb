// Package config loads sciconst settings from defaults, a YAML file, SCICONST_
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ensigniasec/sciconst/internal/storage"
	"github.com/ensigniasec/sciconst/internal/validate"
)

const (
	DefaultConfigFile  = "~/.config/sciconst/config.yaml"
	DefaultCustomFile  = "~/.config/sciconst/custom.json"
	DefaultOutput      = "table"
	DefaultAccentColor = "69"

	envPrefix = "SCICONST_"
)

// Config holds every setting the CLI and TUI read.
type Config struct {
	CustomFile         string `koanf:"custom_file" validate:"required"`
	RequireDescription bool   `koanf:"require_description"`
	Output             string `koanf:"output" validate:"oneof=table json yaml text"`
	AccentColor        string `koanf:"accent_color" validate:"required"`
	Verbose            bool   `koanf:"verbose"`
}

// Load builds a Config. cfgFile may be empty, in which case DefaultConfigFile is used
// when it exists. An explicitly named file must exist. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"custom_file":         DefaultCustomFile,
		"require_description": false,
		"output":              DefaultOutput,
		"accent_color":        DefaultAccentColor,
		"verbose":             false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := resolveConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logrus.Debug("Loading config file: ", path)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SCICONST_CUSTOM_FILE -> custom_file
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		path, err := storage.ExpandPath(explicit)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}
	path, err := storage.ExpandPath(DefaultConfigFile)
	if err != nil {
		// No home directory; run on defaults.
		return "", nil //nolint:nilerr // Missing home is not fatal for an optional file.
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("config file: %w", err)
	}
	return path, nil
}
