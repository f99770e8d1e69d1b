// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/pullyaml"
)

var errorTests = []struct {
	in   string
	kind pullyaml.ErrorKind
	msg  string
}{
	{
		in:   `"abc`,
		kind: pullyaml.UnterminatedScalar,
		msg:  "yaml: while scanning a quoted scalar at line 1, column 1: line 1, column 5: found unexpected end of stream",
	},
	{
		in:   "'abc\n---\n",
		kind: pullyaml.UnterminatedScalar,
	},
	{
		in:   `"\q"`,
		kind: pullyaml.InvalidEscape,
	},
	{
		in:   `"\x4"`,
		kind: pullyaml.InvalidEscape,
	},
	{
		in:   `"\uD800"`,
		kind: pullyaml.InvalidEscape,
	},
	{
		in:   "a: *b",
		kind: pullyaml.UndefinedAlias,
		msg:  "yaml: line 1, column 4: found undefined alias 'b'",
	},
	{
		in:   "[a}",
		kind: pullyaml.UnbalancedFlowContext,
		msg:  "yaml: while scanning a flow sequence at line 1, column 1: line 1, column 3: found '}' where ']' was expected",
	},
	{
		in:   "]",
		kind: pullyaml.UnbalancedFlowContext,
	},
	{
		in:   "[a, b",
		kind: pullyaml.UnbalancedFlowContext,
	},
	{
		in:   "{a: b",
		kind: pullyaml.UnbalancedFlowContext,
	},
	{
		in:   "%YAML 2.0\n--- a",
		kind: pullyaml.InvalidDirective,
	},
	{
		in:   "%YAML 1.1\n%YAML 1.1\n--- a",
		kind: pullyaml.InvalidDirective,
	},
	{
		in:   "%TAG !x! tag:x,2000:\n%TAG !x! tag:y,2000:\n--- a",
		kind: pullyaml.InvalidDirective,
	},
	{
		in:   "!y!foo a",
		kind: pullyaml.InvalidDirective,
	},
	{
		in:   "a:\n\tb: 1",
		kind: pullyaml.IndentationError,
	},
	{
		in:   "a: 1\n- b",
		kind: pullyaml.UnexpectedToken,
	},
	{
		in:   "a: b: c",
		kind: pullyaml.UnexpectedToken,
	},
}

func TestErrorKinds(t *testing.T) {
	for _, tt := range errorTests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := pullyaml.EventsString(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.kind, pullyaml.KindOf(err), "error: %v", err)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
			mark, ok := pullyaml.MarkOf(err)
			require.True(t, ok)
			assert.Positive(t, mark.Line)

			// Loading reports the same failure.
			_, loadErr := pullyaml.Load(tt.in)
			require.Error(t, loadErr)
			assert.Equal(t, err.Error(), loadErr.Error())
		})
	}
}

func TestErrorKindSurvivesWrapping(t *testing.T) {
	_, err := pullyaml.Load("[a}")
	require.Error(t, err)
	wrapped := fmt.Errorf("reading config: %w", err)
	assert.Equal(t, pullyaml.UnbalancedFlowContext, pullyaml.KindOf(wrapped))
	var scannerErr pullyaml.ScannerError
	assert.True(t, errors.As(wrapped, &scannerErr))
}

func TestErrorKindOfForeignErrors(t *testing.T) {
	assert.Equal(t, pullyaml.UnknownError, pullyaml.KindOf(nil))
	assert.Equal(t, pullyaml.UnknownError, pullyaml.KindOf(errors.New("boom")))
	_, ok := pullyaml.MarkOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "unterminated scalar", pullyaml.UnterminatedScalar.String())
	assert.Equal(t, "nesting too deep", pullyaml.NestingTooDeep.String())
	assert.Equal(t, "error kind 99", pullyaml.ErrorKind(99).String())
}

type failingReader struct {
	r   io.RuneReader
	err error
}

func (f *failingReader) ReadRune() (rune, int, error) {
	r, size, err := f.r.ReadRune()
	if err == io.EOF {
		return 0, 0, f.err
	}
	return r, size, err
}

func TestReadFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	p := pullyaml.NewParserFromReader(&failingReader{r: strings.NewReader("a: b\nc: d\n"), err: boom})
	_, err := p.Events()
	require.Error(t, err)
	assert.Equal(t, pullyaml.ReadFailure, pullyaml.KindOf(err))
	assert.ErrorIs(t, err, boom)

	var readerErr pullyaml.ReaderError
	require.True(t, errors.As(err, &readerErr))
	assert.Equal(t, 10, readerErr.Offset)
}
