// File: config.go
// Title: Configuration Model and Loader
// Description: Configuration structure, defaults, file loading and
//              environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-10-15 v0.2.0: Typed sections for engine, shell and procedures

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PROCLINE_"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = EnvPrefix + "CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general" envPrefix:"GENERAL_"`
	Engine     EngineConfig     `toml:"engine" yaml:"engine" envPrefix:"ENGINE_"`
	Shell      ShellConfig      `toml:"shell" yaml:"shell" envPrefix:"SHELL_"`
	Procedures ProceduresConfig `toml:"procedures" yaml:"procedures" envPrefix:"PROCEDURES_"`
	Aliases    []AliasConfig    `toml:"alias" yaml:"aliases"`

	// path of the file this configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name" env:"NAME"`
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// EngineConfig holds command engine settings
type EngineConfig struct {
	MaxCommandLength int `toml:"max_command_length" yaml:"max_command_length" env:"MAX_COMMAND_LENGTH"`

	// Runs taking at least this long are logged at warn; zero disables
	SlowThreshold Duration `toml:"slow_threshold" yaml:"slow_threshold" env:"SLOW_THRESHOLD"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt         string `toml:"prompt" yaml:"prompt" env:"PROMPT"`
	MaxSuggestions int    `toml:"max_suggestions" yaml:"max_suggestions" env:"MAX_SUGGESTIONS"`
	CaseSensitive  bool   `toml:"case_sensitive" yaml:"case_sensitive" env:"CASE_SENSITIVE"`
	Fuzzy          bool   `toml:"fuzzy" yaml:"fuzzy" env:"FUZZY"`
}

// ProceduresConfig points at an extra procedure definition file
type ProceduresConfig struct {
	Path string `toml:"path" yaml:"path" env:"PATH"`
}

// AliasConfig declares an alias created at startup
type AliasConfig struct {
	Name   string `toml:"name" yaml:"name"`
	Target string `toml:"target" yaml:"target"`
}

// Duration wraps time.Duration for TOML, YAML and environment parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with all defaults applied and no file
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, applies defaults and
// then environment overrides
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeConfigError)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").WithCode(mdwerror.CodeConfigError)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}
	cfg.source = path

	cfg.applyDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by PROCLINE_CONFIG, or the first file
// found in the default locations. Without any file the defaults are used,
// still subject to environment overrides.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	if path, ok := FindConfigFile(DefaultDiscoveryOptions()); ok {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerror.Wrap(err, "general.log_level").WithCode(mdwerror.CodeConfigError)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerror.Wrap(err, "general.log_format").WithCode(mdwerror.CodeConfigError)
	}
	if c.Engine.MaxCommandLength <= 0 {
		return mdwerror.Newf("engine.max_command_length must be positive, got %d", c.Engine.MaxCommandLength).
			WithCode(mdwerror.CodeConfigError)
	}
	if c.Engine.SlowThreshold.Duration < 0 {
		return mdwerror.New("engine.slow_threshold must not be negative").
			WithCode(mdwerror.CodeConfigError)
	}
	if c.Shell.MaxSuggestions < 0 {
		return mdwerror.Newf("shell.max_suggestions must not be negative, got %d", c.Shell.MaxSuggestions).
			WithCode(mdwerror.CodeConfigError)
	}
	for i, a := range c.Aliases {
		if a.Name == "" || a.Target == "" {
			return mdwerror.Newf("alias #%d needs both name and target", i+1).
				WithCode(mdwerror.CodeConfigError)
		}
	}
	return nil
}

// LoggerConfig translates the general section into a logger configuration
func (c *Config) LoggerConfig() mdwlog.Config {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	format, _ := mdwlog.ParseFormat(c.General.LogFormat)
	return mdwlog.Config{Level: level, Format: format, Name: c.General.Name}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "procline"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Engine.MaxCommandLength == 0 {
		c.Engine.MaxCommandLength = 4096
	}
	if c.Engine.SlowThreshold.Duration == 0 {
		c.Engine.SlowThreshold.Duration = 250 * time.Millisecond
	}

	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "> "
	}
	if c.Shell.MaxSuggestions == 0 {
		c.Shell.MaxSuggestions = 10
	}
}

func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return mdwerror.Wrap(err, "invalid environment override").WithCode(mdwerror.CodeConfigError)
	}
	return nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return mdwerror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(mdwerror.CodeConfigError)
	}
	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("failed to parse config %s", filepath.Base(path))).
			WithCode(mdwerror.CodeConfigError)
	}
	return nil
}
