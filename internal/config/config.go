// Package config provides configuration loading and structs for the
// targetmanage engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dickey1981/targetmanage/internal/goalparse"
	"github.com/dickey1981/targetmanage/internal/matcher"
	"github.com/dickey1981/targetmanage/internal/validator"
)

// Config holds all configuration for the engine and CLI.
type Config struct {
	Debug     bool                  `yaml:"debug"`
	Parser    goalparse.Options     `yaml:"parser"`
	Validator validator.Rules       `yaml:"validator"`
	Matcher   matcher.MatcherConfig `yaml:"matcher"`
}

// Default returns a config with every section at its defaults.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	cfg.Parser.ApplyDefaults()
	cfg.Validator.ApplyDefaults()
	cfg.Matcher.ApplyDefaults()
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
