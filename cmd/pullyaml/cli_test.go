// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree in-process with stdin set to in.
func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := NewDefaultPullyamlCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCLI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		args []string
		want string
	}{
		{
			name: "events",
			in:   "a: 1\n",
			args: []string{"events"},
			want: "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL :1\n-MAP\n-DOC\n-STR\n",
		},
		{
			name: "events flow and properties",
			in:   "--- &x [!!str b, *x]\n",
			args: []string{"events"},
			want: "+STR\n+DOC ---\n+SEQ [] &x\n=VAL <tag:yaml.org,2002:str> :b\n=ALI *x\n-SEQ\n-DOC\n-STR\n",
		},
		{
			name: "events of empty input",
			in:   "",
			args: []string{"events"},
			want: "+STR\n-STR\n",
		},
		{
			name: "fmt keeps strings that look like numbers",
			in:   "a: '0x123'\nb: 0x123\n",
			args: []string{"fmt"},
			want: "a: '0x123'\nb: 0x123\n",
		},
		{
			name: "fmt indent",
			in:   "a:\n  b: 1\n",
			args: []string{"fmt", "--indent", "4"},
			want: "a:\n    b: 1\n",
		},
		{
			name: "fmt restyle",
			in:   "a: [\"x\", 'z']\n",
			args: []string{"fmt", "--restyle"},
			want: "a:\n  - x\n  - z\n",
		},
		{
			name: "get index",
			in:   "a:\n- x\n- z\n",
			args: []string{"get", "-p", "a.1"},
			want: "z\n",
		},
		{
			name: "get every document",
			in:   "a: 1\n---\na: 2\n",
			args: []string{"get", "-p", "a"},
			want: "1\n---\n2\n",
		},
		{
			name: "version",
			args: []string{"version"},
			want: "pullyaml version " + version + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.in, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCLIEventMarks(t *testing.T) {
	out, err := run(t, "a: 1\n", "events", "--marks")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	mark := regexp.MustCompile(`^\d+:\d+-\d+:\d+ [+=-]`)
	for _, line := range lines {
		assert.Regexp(t, mark, line)
	}
}

func TestCLIEventsStopAtError(t *testing.T) {
	out, err := run(t, "a: [b\n", "events")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out, "+STR\n"), "output: %q", out)
}

func TestCLITokens(t *testing.T) {
	out, err := run(t, "- a\n", "tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "STREAM_START_TOKEN")
	assert.Contains(t, out, "BLOCK_SEQUENCE_START_TOKEN")
	assert.Contains(t, out, `SCALAR_TOKEN`)
	assert.Contains(t, out, `"a"`)
	assert.True(t, strings.HasPrefix(strings.Split(strings.TrimSuffix(out, "\n"), "\n")[5], "STREAM_END_TOKEN"), out)
}

func TestCLIFile(t *testing.T) {
	path := writeFile(t, "in.yaml", "k: v\n")
	out, err := run(t, "", "fmt", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", out)

	_, err = run(t, "", "fmt", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open input")
}

func TestCLIConfig(t *testing.T) {
	config := writeFile(t, "pullyaml.toml", "indent = 4\nmultiline = true\n")
	in := "a:\n  b: \"x\\ny\\n\"\n"

	out, err := run(t, in, "fmt", "--config", config, "--restyle")
	require.NoError(t, err)
	assert.Equal(t, "a:\n    b: |\n        x\n        y\n", out)

	// Flags override the file.
	out, err = run(t, in, "fmt", "--config", config, "--restyle", "--indent", "2", "--multiline=false")
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: \"x\\ny\\n\"\n", out)
}

func TestCLIErrors(t *testing.T) {
	unknown := writeFile(t, "bad.toml", "color = true\n")
	tests := []struct {
		name string
		in   string
		args []string
		want string
	}{
		{"missing path", "a: 1\n", []string{"get", "-p", "b"}, `path "b" not found in document 1`},
		{"unknown config key", "", []string{"fmt", "--config", unknown}, `unknown configuration key "color"`},
		{"missing config", "", []string{"fmt", "--config", filepath.Join(t.TempDir(), "none.toml")}, "failed to read config file"},
		{"bad indent", "a: 1\n", []string{"fmt", "--indent", "12"}, "indent must be between 2 and 9"},
		{"bad max depth", "a: 1\n", []string{"events", "--max-depth", "-1"}, "depth"},
		{"nesting too deep", "[[[a]]]\n", []string{"events", "--max-depth", "2"}, "exceeded max depth"},
		{"extra args", "", []string{"fmt", "extra"}, "does not accept extra arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.in, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
