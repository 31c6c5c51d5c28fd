// Package config loads the layered application configuration: embedded
// defaults, then the user's XDG config file, then SIEVE_* environment
// variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/sieve/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Matching tunes the pattern matcher.
type Matching struct {
	CaseInsensitive bool `koanf:"case_insensitive" toml:"case_insensitive" yaml:"case_insensitive"`
	MaxBacktrack    int  `koanf:"max_backtrack" toml:"max_backtrack" yaml:"max_backtrack"`
}

// Sources lists pattern sources applied before any command-line flags.
type Sources struct {
	Presets     []string `koanf:"presets" toml:"presets" yaml:"presets"`
	IgnoreFiles []string `koanf:"ignore_files" toml:"ignore_files" yaml:"ignore_files"`
}

// Config is the effective application configuration.
type Config struct {
	Matching Matching `koanf:"matching" toml:"matching" yaml:"matching"`
	Sources  Sources  `koanf:"sources" toml:"sources" yaml:"sources"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Path returns the user config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "sieve", "sieve.toml")
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, if present
	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	// 3. Environment variables. Double underscore separates key levels so
	// single underscores survive: SIEVE_MATCHING__MAX_BACKTRACK.
	if err := k.Load(env.Provider("SIEVE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SIEVE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}
