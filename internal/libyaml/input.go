// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Input stage: character sources for the scanner.
// Two realizations are provided, one over a contiguous string and one over an
// io.RuneReader. Both hand out the same characters at the same offsets and
// keep identical position marks.

package libyaml

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxLookahead is the number of characters every Input guarantees to hold
// ahead of the cursor. The deepest scan routine looks at offset 3 (a document
// marker followed by a blank).
const MaxLookahead = 4

// Input is a cursor over a stream of characters.
//
// Peek returns the character n positions ahead of the cursor, or 0 at or past
// the end of input. A NUL character in the source also ends the input. Asking
// for n >= Depth() is a programming error and panics.
//
// Consume advances the cursor by k characters. Line breaks ("\n", "\r\n" and
// a bare "\r") each count as one logical break in the position mark.
type Input interface {
	Peek(n int) rune
	Consume(k int)
	Mark() Mark
	Depth() int
	Err() error
}

func checkLookahead(n int) {
	if n < 0 || n >= MaxLookahead {
		panic(fmt.Sprintf("libyaml: lookahead of %d exceeds the guaranteed depth of %d", n, MaxLookahead))
	}
}

// advanceMark moves m past r. next is the character that follows r, which
// decides whether a '\r' is the first half of a "\r\n" pair.
func advanceMark(m *Mark, r, next rune) {
	m.Index++
	switch {
	case r == '\r' && next == '\n':
		// The '\n' that follows finishes the break.
	case r == '\r' || r == '\n':
		m.Line++
		m.Column = 0
	default:
		m.Column++
	}
}

// NewStringInput returns an Input reading from s. A leading byte order mark
// is dropped and does not count towards marks.
func NewStringInput(s string) Input {
	return &stringInput{src: strings.TrimPrefix(s, "\uFEFF"), mark: Mark{Line: 1}}
}

type stringInput struct {
	src  string
	pos  int // byte offset of the cursor in src
	mark Mark
}

func (in *stringInput) Peek(n int) rune {
	checkLookahead(n)
	pos := in.pos
	for {
		if pos >= len(in.src) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(in.src[pos:])
		if r == 0 || n == 0 {
			return r
		}
		pos += size
		n--
	}
}

func (in *stringInput) Consume(k int) {
	for ; k > 0; k-- {
		if in.pos >= len(in.src) {
			return
		}
		r, size := utf8.DecodeRuneInString(in.src[in.pos:])
		if r == 0 {
			return
		}
		in.pos += size
		advanceMark(&in.mark, r, in.Peek(0))
	}
}

func (in *stringInput) Mark() Mark { return in.mark }

func (in *stringInput) Depth() int { return MaxLookahead }

func (in *stringInput) Err() error { return nil }

// NewReaderInput returns an Input pulling characters from r on demand. At
// most MaxLookahead characters are buffered at any time. A leading byte order
// mark is dropped.
func NewReaderInput(r io.RuneReader) Input {
	return &readerInput{rd: r, mark: Mark{Line: 1}}
}

type readerInput struct {
	rd    io.RuneReader
	buf   [MaxLookahead]rune
	head  int // ring index of the character under the cursor
	count int // number of buffered characters
	eof   bool
	err   error
	read  bool // has the first character been read?
	mark  Mark
}

// fill buffers characters until n+1 are available or the source ends.
func (in *readerInput) fill(n int) {
	for in.count <= n && !in.eof {
		r, _, err := in.rd.ReadRune()
		if err != nil {
			if err != io.EOF {
				in.err = err
			}
			in.eof = true
			return
		}
		if r == 0 {
			in.eof = true
			return
		}
		if !in.read {
			in.read = true
			if isBOM(r) {
				continue
			}
		}
		in.buf[(in.head+in.count)%MaxLookahead] = r
		in.count++
	}
}

func (in *readerInput) Peek(n int) rune {
	checkLookahead(n)
	in.fill(n)
	if n >= in.count {
		return 0
	}
	return in.buf[(in.head+n)%MaxLookahead]
}

func (in *readerInput) Consume(k int) {
	for ; k > 0; k-- {
		in.fill(0)
		if in.count == 0 {
			return
		}
		r := in.buf[in.head]
		in.head = (in.head + 1) % MaxLookahead
		in.count--
		advanceMark(&in.mark, r, in.Peek(0))
	}
}

func (in *readerInput) Mark() Mark { return in.mark }

func (in *readerInput) Depth() int { return MaxLookahead }

func (in *readerInput) Err() error { return in.err }
