// Package config loads the optional user configuration file and its
// environment overrides. Flags beat env vars beat the file; the file is
// entirely optional.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides, e.g. QUIZDRILL_METHOD.
const envPrefix = "QUIZDRILL_"

// Scoring selects the probability update policy.
type Scoring struct {
	Policy string  `koanf:"policy" validate:"omitempty,oneof=decay ewma"`
	Param  float64 `koanf:"param" validate:"gte=0,lt=1"`
}

// Config is the merged user configuration.
type Config struct {
	// DB is the SQLite database path. Empty means the XDG default.
	DB string `koanf:"db"`

	// Method is the default selection method for drills.
	Method string `koanf:"method" validate:"omitempty,oneof=bottom weighted weighted-random uniform uniform-random oldest oldest-answer"`

	// Num is the default number of questions per drill. Zero means the
	// whole set.
	Num int `koanf:"num" validate:"gte=0"`

	Scoring Scoring `koanf:"scoring"`
}

var validate = validator.New()

// Load reads the config file at path (or the default location when path
// is empty) and applies QUIZDRILL_* environment overrides. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/quizdrill/config.yaml, falling back to
// ~/.config/quizdrill/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdrill", "config.yaml"), nil
}
