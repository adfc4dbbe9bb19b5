// Package config loads roadload scenario files.
//
// Files may be YAML, JSON or TOML, chosen by extension. Environment variables
// prefixed with ROADLOAD_ override file values; a double underscore separates
// nesting levels, so ROADLOAD_LOG__LEVEL=debug sets log.level.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/roadload/network"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "ROADLOAD_"

var (
	// ErrUnsupportedFormat indicates a config file extension with no parser.
	ErrUnsupportedFormat = fmt.Errorf("config: unsupported format: %w", network.ErrConfiguration)

	// ErrInvalid indicates a config that parsed but failed validation.
	ErrInvalid = fmt.Errorf("config: invalid: %w", network.ErrConfiguration)
)

// Config is the top-level configuration.
type Config struct {
	Log       LogConfig        `json:"log"`
	Metrics   MetricsConfig    `json:"metrics"`
	Workers   int              `json:"workers"`
	Output    OutputConfig     `json:"output"`
	Scenarios []ScenarioConfig `json:"scenarios"`
}

// Load reads path, applies environment overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration without scenarios, built from defaults and
// environment overrides only.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: decode environment: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.validateAmbient(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return TOML(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func loadEnv(k *koanf.Koanf) error {
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	return nil
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	c.Log.SetDefaults()
	c.Metrics.SetDefaults()
	c.Output.SetDefaults()
	if c.Workers <= 0 {
		c.Workers = 2
	}
}

// Validate checks the ambient sections and every scenario.
func (c Config) Validate() error {
	if err := c.validateAmbient(); err != nil {
		return err
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %d: %w", i, err)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	return nil
}

func (c Config) validateAmbient() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}

	return c.Output.Validate()
}

// Scenario returns the scenario with the given name.
func (c Config) Scenario(name string) (ScenarioConfig, error) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}

	return ScenarioConfig{}, fmt.Errorf("config: scenario %q: %w", name, network.ErrNotFound)
}
