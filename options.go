// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

type parserConfig struct {
	maxDepth  int
	logger    commonlog.Logger
	loggerSet bool
}

// ParserOption allows configuring a Parser or Loader.
type ParserOption func(*parserConfig) error

// WithMaxDepth limits how deeply flow collections and block indentation
// levels may nest. Input nesting deeper than this fails with a
// NestingTooDeep error.
//
// The depth must be positive.
func WithMaxDepth(depth int) ParserOption {
	return func(c *parserConfig) error {
		if depth < 1 {
			return fmt.Errorf("pullyaml: max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger receiving parser state transitions at debug
// level. A nil logger disables tracing.
func WithLogger(logger commonlog.Logger) ParserOption {
	return func(c *parserConfig) error {
		c.logger = logger
		c.loggerSet = true
		return nil
	}
}

func applyParserOptions(opts []ParserOption) (*parserConfig, error) {
	c := &parserConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type dumperConfig struct {
	indent           int
	lineWidth        int
	multilineStrings bool
}

// DumperOption allows configuring a Dumper.
type DumperOption func(*dumperConfig) error

// WithIndent sets the number of spaces to use for each indentation level.
//
// Values outside 2 to 9 result in an error.
func WithIndent(indent int) DumperOption {
	return func(c *dumperConfig) error {
		if indent < 2 || indent > 9 {
			return errors.New("pullyaml: indent must be between 2 and 9 spaces")
		}
		c.indent = indent
		return nil
	}
}

// WithLineWidth sets the preferred line width. Long plain and quoted
// scalars are folded at spaces past this column. Zero disables folding.
func WithLineWidth(width int) DumperOption {
	return func(c *dumperConfig) error {
		if width < 0 {
			return errors.New("pullyaml: cannot use a negative line width")
		}
		c.lineWidth = width
		return nil
	}
}

// WithMultilineStrings writes strings containing line breaks as literal
// block scalars. Without it they are double-quoted with escapes.
func WithMultilineStrings(enable bool) DumperOption {
	return func(c *dumperConfig) error {
		c.multilineStrings = enable
		return nil
	}
}

func applyDumperOptions(opts []DumperOption) (*dumperConfig, error) {
	c := &dumperConfig{indent: 2}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
