// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"go.yaml.in/pullyaml"
)

// pull drains p and returns the formatted events and the terminal error.
func pull(p *pullyaml.Parser) ([]string, error) {
	var lines []string
	for {
		event, err := p.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, pullyaml.FormatEvent(&event))
	}
}

// requireEquivalent parses in through both inputs and fails with a diff
// when the event streams or the errors differ.
func requireEquivalent(t *testing.T, in string) ([]string, error) {
	t.Helper()
	fromString, stringErr := pull(pullyaml.NewParser(in))
	fromReader, readerErr := pull(pullyaml.NewParserFromReader(bufio.NewReader(strings.NewReader(in))))
	if strings.Join(fromString, "\n") != strings.Join(fromReader, "\n") {
		t.Fatalf("input %q: events differ; diff string...reader:\n%v", in, difflib.PPDiff(fromString, fromReader))
	}
	if (stringErr == nil) != (readerErr == nil) {
		t.Fatalf("input %q: string error %v, reader error %v", in, stringErr, readerErr)
	}
	if stringErr != nil {
		require.Equal(t, stringErr.Error(), readerErr.Error(), "input %q", in)
		require.Equal(t, pullyaml.KindOf(stringErr), pullyaml.KindOf(readerErr), "input %q", in)
	}
	return fromString, stringErr
}

func TestParserNext(t *testing.T) {
	p := pullyaml.NewParser("a: [1, 2]\n")
	var types []pullyaml.EventType
	for {
		event, err := p.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		types = append(types, event.Type)
	}
	assert.Equal(t, []pullyaml.EventType{
		pullyaml.StreamStartEvent,
		pullyaml.DocumentStartEvent,
		pullyaml.MappingStartEvent,
		pullyaml.ScalarEvent,
		pullyaml.SequenceStartEvent,
		pullyaml.ScalarEvent,
		pullyaml.ScalarEvent,
		pullyaml.SequenceEndEvent,
		pullyaml.MappingEndEvent,
		pullyaml.DocumentEndEvent,
		pullyaml.StreamEndEvent,
	}, types)

	// The end is sticky.
	for i := 0; i < 3; i++ {
		_, err := p.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestParserErrorIsSticky(t *testing.T) {
	p := pullyaml.NewParser("a: \"b\n")
	var first error
	for first == nil {
		_, first = p.Next()
	}
	require.NotEqual(t, io.EOF, first)
	for i := 0; i < 3; i++ {
		_, err := p.Next()
		assert.Equal(t, first, err)
	}
}

func TestParserEvents(t *testing.T) {
	events, err := pullyaml.NewParser("- x\n").Events()
	require.NoError(t, err)
	require.Len(t, events, 7)
	assert.Equal(t, pullyaml.StreamEndEvent, events[6].Type)
	assert.Equal(t, "x", events[3].Value)
	assert.Equal(t, 1, events[3].StartMark.Line)
	assert.Equal(t, 2, events[3].StartMark.Column)
}

func TestEventsString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "+STR\n-STR"},
		{"a", "+STR\n+DOC\n=VAL :a\n-DOC\n-STR"},
		{"--- a\n...\n", "+STR\n+DOC ---\n=VAL :a\n-DOC ...\n-STR"},
		{"&a [*a]", "+STR\n+DOC\n+SEQ [] &a\n=ALI *a\n-SEQ\n-DOC\n-STR"},
		{"{a: 'b', c: \"d\"}", "+STR\n+DOC\n+MAP {}\n=VAL :a\n=VAL 'b\n=VAL :c\n=VAL \"d\n-MAP\n-DOC\n-STR"},
		{"- |\n  x\n- >-\n  y\n  z\n", "+STR\n+DOC\n+SEQ\n=VAL |x\\n\n=VAL >y z\n-SEQ\n-DOC\n-STR"},
		{"[a: b, c]", "+STR\n+DOC\n+SEQ []\n+MAP {}\n=VAL :a\n=VAL :b\n-MAP\n=VAL :c\n-SEQ\n-DOC\n-STR"},
		{"? a\n: b\n", "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL :b\n-MAP\n-DOC\n-STR"},
		{"a:\n- b\n- c\n", "+STR\n+DOC\n+MAP\n=VAL :a\n+SEQ\n=VAL :b\n=VAL :c\n-SEQ\n-MAP\n-DOC\n-STR"},
		{"%TAG !e! tag:example.com,2000:\n--- !e!foo x\n", "+STR\n+DOC ---\n=VAL <tag:example.com,2000:foo> :x\n-DOC\n-STR"},
		{"!<tag:x> a", "+STR\n+DOC\n=VAL <tag:x> :a\n-DOC\n-STR"},
		{"%YAML 1.2\n--- a\n", "+STR\n+DOC ---\n=VAL :a\n-DOC\n-STR"},
		{"%FOO bar baz\n--- a\n", "+STR\n+DOC ---\n=VAL :a\n-DOC\n-STR"},
		{"\uFEFFa", "+STR\n+DOC\n=VAL :a\n-DOC\n-STR"},
		{"a\x00b: c", "+STR\n+DOC\n=VAL :a\n-DOC\n-STR"},
		{"\"a\\tb\\x41\\u263A\"", "+STR\n+DOC\n=VAL \"a\\tbA\u263A\n-DOC\n-STR"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pullyaml.EventsString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			lines, err := requireEquivalent(t, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Join(lines, "\n"))
		})
	}
}

func TestTokens(t *testing.T) {
	tokens, err := pullyaml.Tokens("a: b\n")
	require.NoError(t, err)
	var types []string
	for i := range tokens {
		types = append(types, tokens[i].Type.String())
	}
	assert.Equal(t, []string{
		"STREAM_START_TOKEN",
		"BLOCK_MAPPING_START_TOKEN",
		"KEY_TOKEN",
		"SCALAR_TOKEN",
		"VALUE_TOKEN",
		"SCALAR_TOKEN",
		"BLOCK_END_TOKEN",
		"STREAM_END_TOKEN",
	}, types)

	fromReader, err := pullyaml.TokensReader(strings.NewReader("a: b\n"))
	require.NoError(t, err)
	assert.Equal(t, tokens, fromReader)
}

// Structural well-formedness: every start event has its end event and the
// nesting depth never goes negative.
func TestEventsAreBalanced(t *testing.T) {
	inputs := []string{
		"a: [b, {c: d}, [e]]\n",
		"- - - x\n  - y\n- z\n",
		"--- a\n--- [b]\n...\n--- {c: d}\n",
		"? [a, b]\n: {c: [d]}\n",
		"[a: b, c: d, e]\n",
	}
	for _, in := range inputs {
		events, err := pullyaml.NewParser(in).Events()
		require.NoError(t, err, in)
		var stack []pullyaml.EventType
		for _, e := range events {
			switch e.Type {
			case pullyaml.StreamStartEvent, pullyaml.DocumentStartEvent,
				pullyaml.SequenceStartEvent, pullyaml.MappingStartEvent:
				stack = append(stack, e.Type)
			case pullyaml.StreamEndEvent, pullyaml.DocumentEndEvent,
				pullyaml.SequenceEndEvent, pullyaml.MappingEndEvent:
				require.NotEmpty(t, stack, "input %q: unbalanced end", in)
				stack = stack[:len(stack)-1]
			}
		}
		assert.Empty(t, stack, "input %q", in)
	}
}

func TestInputEquivalence(t *testing.T) {
	inputs := []string{
		"a: b\r\nc: d\r\n",
		"a: b\rc: d\r",
		"key: 'it''s'\n",
		"- \"multi\n  line\"\n",
		"plain\n  continued\n\n  after blank\n",
		"a: |+\n  keep\n\n",
		"a: >2\n   indented\n",
		"[a, b]: c\n",
		"\u00e9t\u00e9: \u2603\n",
		"a:\n\tb: 1\n",
		"[a, b\n",
		"{a: b]\n",
		"\"\\q\"\n",
		"*undefined\n",
		"%YAML 2.0\n--- a\n",
		"a: 1\n- b\n",
	}
	for _, in := range inputs {
		requireEquivalent(t, in)
	}
}

// Regression inputs found by fuzzing: a plain scalar that ended in a run
// of carriage returns, and implicit flow mappings closed by the wrong
// bracket. Both used to crash.
var fuzzRegressions = map[string][]byte{
	"fuzz_1": {1, 39, 110, 117, 108, 108, 34, 13, 13, 13, 13, 13, 10, 13, 13, 13, 13},
	"fuzz_2": {
		91, 91, 32, 101, 58, 9, 123, 63, 32, 45, 106, 101, 58, 9, 123, 63, 32, 44, 117, 101, 58, 9,
		123, 63, 32, 44, 9, 26, 58, 32, 126, 93, 8, 58, 32, 58, 10, 29, 58, 58, 58, 32, 58, 29, 63,
		32, 44, 9, 26, 58, 32, 126, 93, 8, 58, 32, 58, 10, 78, 32,
	},
}

func TestFuzzRegressions(t *testing.T) {
	for name, in := range fuzzRegressions {
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				requireEquivalent(t, string(in))
			})
			require.NotPanics(t, func() {
				_, _ = pullyaml.Load(string(in))
			})
		})
	}
}

func TestParserOptionErrors(t *testing.T) {
	p := pullyaml.NewParser("a", pullyaml.WithMaxDepth(0))
	_, err := p.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max depth must be positive")

	_, err = pullyaml.Load("a", pullyaml.WithMaxDepth(-3))
	require.Error(t, err)

	_, err = pullyaml.NewLoader(strings.NewReader("a"), pullyaml.WithMaxDepth(0))
	require.Error(t, err)
}

// traceLogger records the debug lines it is allowed to receive.
type traceLogger struct {
	commonlog.Logger
	maxLevel commonlog.Level
	lines    []string
}

func (l *traceLogger) AllowLevel(level commonlog.Level) bool {
	return level <= l.maxLevel
}

func (l *traceLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestWithLogger(t *testing.T) {
	// A nil logger turns tracing off.
	events, err := pullyaml.NewParser("a: b", pullyaml.WithLogger(nil)).Events()
	require.NoError(t, err)
	assert.Len(t, events, 8)

	logger := &traceLogger{maxLevel: commonlog.Debug}
	events, err = pullyaml.NewParser("a: b", pullyaml.WithLogger(logger)).Events()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(logger.lines), len(events))
	assert.Equal(t, "state PARSE_STREAM_START_STATE, depth 0", logger.lines[0])
	for _, line := range logger.lines {
		assert.True(t, strings.HasPrefix(line, "state PARSE_"), line)
	}

	logger = &traceLogger{maxLevel: commonlog.Debug}
	_, err = pullyaml.NewParser("[a}", pullyaml.WithLogger(logger)).Events()
	require.Error(t, err)
	require.NotEmpty(t, logger.lines)
	assert.Equal(t, "parse failed: "+err.Error(), logger.lines[len(logger.lines)-1])

	quiet := &traceLogger{maxLevel: commonlog.Info}
	_, err = pullyaml.NewParser("a: b", pullyaml.WithLogger(quiet)).Events()
	require.NoError(t, err)
	assert.Empty(t, quiet.lines)
}
