// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bothInputs(s string) map[string]Input {
	return map[string]Input{
		"string": NewStringInput(s),
		"reader": NewReaderInput(strings.NewReader(s)),
	}
}

// drain consumes in one character at a time and records each character
// with the mark it was found at.
func drain(in Input) ([]rune, []Mark) {
	var runes []rune
	var marks []Mark
	for in.Peek(0) != 0 {
		runes = append(runes, in.Peek(0))
		marks = append(marks, in.Mark())
		in.Consume(1)
	}
	marks = append(marks, in.Mark())
	return runes, marks
}

func TestInputCharacters(t *testing.T) {
	for name, in := range bothInputs("aé☺\U0001F600b") {
		t.Run(name, func(t *testing.T) {
			runes, marks := drain(in)
			assert.Equal(t, []rune{'a', 'é', '☺', '\U0001F600', 'b'}, runes)
			assert.Equal(t, Mark{Index: 5, Line: 1, Column: 5}, marks[5])
		})
	}
}

func TestInputLineBreaks(t *testing.T) {
	for name, in := range bothInputs("a\r\nb\rc\nd") {
		t.Run(name, func(t *testing.T) {
			_, marks := drain(in)
			assert.Equal(t, []Mark{
				{Index: 0, Line: 1, Column: 0},
				{Index: 1, Line: 1, Column: 1},
				{Index: 2, Line: 1, Column: 1},
				{Index: 3, Line: 2, Column: 0},
				{Index: 4, Line: 2, Column: 1},
				{Index: 5, Line: 3, Column: 0},
				{Index: 6, Line: 3, Column: 1},
				{Index: 7, Line: 4, Column: 0},
				{Index: 8, Line: 4, Column: 1},
			}, marks)
		})
	}
}

func TestInputByteOrderMark(t *testing.T) {
	for name, in := range bothInputs("\uFEFFab") {
		t.Run(name, func(t *testing.T) {
			runes, marks := drain(in)
			assert.Equal(t, []rune{'a', 'b'}, runes)
			assert.Equal(t, 0, marks[0].Index)
		})
	}
}

func TestInputNulEndsInput(t *testing.T) {
	for name, in := range bothInputs("ab\x00cd") {
		t.Run(name, func(t *testing.T) {
			runes, _ := drain(in)
			assert.Equal(t, []rune{'a', 'b'}, runes)
			in.Consume(3)
			assert.Equal(t, rune(0), in.Peek(0))
			assert.Equal(t, 2, in.Mark().Index)
		})
	}
}

func TestInputLookahead(t *testing.T) {
	for name, in := range bothInputs("abcdef") {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, MaxLookahead, in.Depth())
			assert.Equal(t, 'd', in.Peek(3))
			assert.Equal(t, 'a', in.Peek(0))
			in.Consume(4)
			assert.Equal(t, 'e', in.Peek(0))
			assert.Equal(t, rune(0), in.Peek(2))
			assert.Panics(t, func() { in.Peek(MaxLookahead) })
			assert.Panics(t, func() { in.Peek(-1) })
		})
	}
}

func TestInputConsumePastEnd(t *testing.T) {
	for name, in := range bothInputs("ab") {
		t.Run(name, func(t *testing.T) {
			in.Consume(10)
			assert.Equal(t, rune(0), in.Peek(0))
			assert.Equal(t, Mark{Index: 2, Line: 1, Column: 2}, in.Mark())
			assert.NoError(t, in.Err())
		})
	}
}

type errRuneReader struct {
	io.RuneReader
	err error
}

func (r errRuneReader) ReadRune() (rune, int, error) {
	c, size, err := r.RuneReader.ReadRune()
	if err == io.EOF {
		return 0, 0, r.err
	}
	return c, size, err
}

func TestReaderInputError(t *testing.T) {
	boom := errors.New("boom")
	in := NewReaderInput(errRuneReader{strings.NewReader("ab"), boom})
	runes, _ := drain(in)
	assert.Equal(t, []rune{'a', 'b'}, runes)
	require.Error(t, in.Err())
	assert.ErrorIs(t, in.Err(), boom)
}

// The reader input never asks for more than the lookahead it needs.
type countingReader struct {
	io.RuneReader
	reads int
}

func (r *countingReader) ReadRune() (rune, int, error) {
	r.reads++
	return r.RuneReader.ReadRune()
}

func TestReaderInputIsLazy(t *testing.T) {
	cr := &countingReader{RuneReader: strings.NewReader(strings.Repeat("x", 100))}
	in := NewReaderInput(cr)
	assert.Equal(t, 'x', in.Peek(1))
	assert.Equal(t, 2, cr.reads)
	in.Consume(1)
	assert.Equal(t, 2, cr.reads)
	assert.Equal(t, 'x', in.Peek(1))
	assert.Equal(t, 3, cr.reads)
}
