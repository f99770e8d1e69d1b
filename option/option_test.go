// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package option_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/pullyaml"
	"go.yaml.in/pullyaml/option"
)

func TestDefaults(t *testing.T) {
	cfg := option.NewConfig()
	assert.Equal(t, 2, cfg.GetIndent())
	assert.Equal(t, 0, cfg.GetLineWidth())
	assert.False(t, cfg.GetMultilineStrings())
	assert.Equal(t, pullyaml.DefaultMaxDepth, cfg.GetMaxDepth())
	assert.Equal(t, 0, cfg.GetVerbosity())
}

func TestOptions(t *testing.T) {
	cfg := option.NewConfig(option.WithIndent(4), option.WithMaxDepth(10))
	cfg.Apply(option.WithLineWidth(60), option.WithMultilineStrings(true), option.WithVerbosity(2))
	assert.Equal(t, 4, cfg.GetIndent())
	assert.Equal(t, 60, cfg.GetLineWidth())
	assert.True(t, cfg.GetMultilineStrings())
	assert.Equal(t, 10, cfg.GetMaxDepth())
	assert.Equal(t, 2, cfg.GetVerbosity())
	assert.Len(t, cfg.ParserOptions(), 1)
	assert.Len(t, cfg.DumperOptions(), 3)
}

func TestDecode(t *testing.T) {
	cfg, err := option.Decode("indent = 3\nline-width = 40\nmultiline = true\nmax-depth = 50\nverbosity = 1\n")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.GetIndent())
	assert.Equal(t, 40, cfg.GetLineWidth())
	assert.True(t, cfg.GetMultilineStrings())
	assert.Equal(t, 50, cfg.GetMaxDepth())
	assert.Equal(t, 1, cfg.GetVerbosity())

	_, err = option.Decode("indnet = 3\n")
	assert.EqualError(t, err, `unknown configuration key "indnet"`)

	_, err = option.Decode("indent = \"wide\"\n")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	file, err := option.Decode("indent = 3\nmultiline = true\n")
	require.NoError(t, err)
	file.Merge(option.NewConfig(option.WithIndent(5)))
	file.Merge(nil)
	assert.Equal(t, 5, file.GetIndent())
	assert.True(t, file.GetMultilineStrings())
	assert.Equal(t, 0, file.GetLineWidth())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, option.DefaultFile)

	cfg, err := option.LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, &option.Config{}, cfg)

	_, err = option.LoadFile(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	require.NoError(t, os.WriteFile(path, []byte("line-width = 72\n"), 0o600))
	cfg, err = option.LoadFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.GetLineWidth())

	require.NoError(t, os.WriteFile(path, []byte("width = 72\n"), 0o600))
	_, err = option.LoadFile(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestOptionsReachTheDumper(t *testing.T) {
	cfg := option.NewConfig(option.WithIndent(1))
	_, err := pullyaml.NewDumper(nil, cfg.DumperOptions()...)
	assert.Error(t, err)

	cfg = option.NewConfig(option.WithMaxDepth(1))
	_, err = pullyaml.Load("[[a]]", cfg.ParserOptions()...)
	assert.Equal(t, pullyaml.NestingTooDeep, pullyaml.KindOf(err))
}
