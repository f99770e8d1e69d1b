// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package option holds the pullyaml command configuration.
//
// Settings come from an optional TOML file and from command-line flags.
// Every field is a pointer so that an unset value can be told apart from a
// zero value when the two sources are merged.
package option

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.yaml.in/pullyaml"
)

// DefaultFile is the configuration file read when none is named.
const DefaultFile = ".pullyaml.toml"

// Config holds configuration options for YAML processing
type Config struct {
	Indent           *int  `toml:"indent"`
	LineWidth        *int  `toml:"line-width"`
	MultilineStrings *bool `toml:"multiline"`
	MaxDepth         *int  `toml:"max-depth"`
	Verbosity        *int  `toml:"verbosity"`
}

const (
	defaultIndent           = 2
	defaultLineWidth        = 0
	defaultMultilineStrings = false
	defaultMaxDepth         = pullyaml.DefaultMaxDepth
	defaultVerbosity        = 0
)

// Option represents a functional option for configuring YAML processing
type Option func(*Config)

// WithIndent returns an Option that sets the indent value
func WithIndent(indent int) Option {
	return func(c *Config) {
		c.Indent = &indent
	}
}

// WithLineWidth returns an Option that sets the preferred line width
func WithLineWidth(width int) Option {
	return func(c *Config) {
		c.LineWidth = &width
	}
}

// WithMultilineStrings returns an Option that enables/disables literal block
// output for multi-line strings
func WithMultilineStrings(enable bool) Option {
	return func(c *Config) {
		c.MultilineStrings = &enable
	}
}

// WithMaxDepth returns an Option that sets the parser nesting limit
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = &depth
	}
}

// WithVerbosity returns an Option that sets the log verbosity
func WithVerbosity(verbosity int) Option {
	return func(c *Config) {
		c.Verbosity = &verbosity
	}
}

// GetIndent returns the Config's indent if set or the default value
func (c *Config) GetIndent() int {
	if c.Indent != nil {
		return *c.Indent
	}
	return defaultIndent
}

// GetLineWidth returns the Config's line width if set or the default value
func (c *Config) GetLineWidth() int {
	if c.LineWidth != nil {
		return *c.LineWidth
	}
	return defaultLineWidth
}

// GetMultilineStrings returns the Config's multiline setting if set or the
// default value
func (c *Config) GetMultilineStrings() bool {
	if c.MultilineStrings != nil {
		return *c.MultilineStrings
	}
	return defaultMultilineStrings
}

// GetMaxDepth returns the Config's nesting limit if set or the default value
func (c *Config) GetMaxDepth() int {
	if c.MaxDepth != nil {
		return *c.MaxDepth
	}
	return defaultMaxDepth
}

// GetVerbosity returns the Config's verbosity if set or the default value
func (c *Config) GetVerbosity() int {
	if c.Verbosity != nil {
		return *c.Verbosity
	}
	return defaultVerbosity
}

// NewConfig creates a new Config with the provided options
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Apply applies additional options to an existing Config
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Merge copies every value set in other over c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Indent != nil {
		c.Indent = other.Indent
	}
	if other.LineWidth != nil {
		c.LineWidth = other.LineWidth
	}
	if other.MultilineStrings != nil {
		c.MultilineStrings = other.MultilineStrings
	}
	if other.MaxDepth != nil {
		c.MaxDepth = other.MaxDepth
	}
	if other.Verbosity != nil {
		c.Verbosity = other.Verbosity
	}
}

// Decode reads a TOML document. Unknown keys are an error.
func Decode(data string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}
	return cfg, nil
}

// LoadFile reads the configuration file at path. When optional is set, a
// missing file yields an empty Config.
func LoadFile(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParserOptions returns the parser options the Config selects.
func (c *Config) ParserOptions() []pullyaml.ParserOption {
	return []pullyaml.ParserOption{pullyaml.WithMaxDepth(c.GetMaxDepth())}
}

// DumperOptions returns the dumper options the Config selects.
func (c *Config) DumperOptions() []pullyaml.DumperOption {
	return []pullyaml.DumperOption{
		pullyaml.WithIndent(c.GetIndent()),
		pullyaml.WithLineWidth(c.GetLineWidth()),
		pullyaml.WithMultilineStrings(c.GetMultilineStrings()),
	}
}
