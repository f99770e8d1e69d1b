// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package pullyaml implements a pull-driven YAML scanner and parser.
//
// Input is read one character at a time and turned into parsing events on
// demand: nothing is scanned ahead of what the caller asks for. Events can be
// composed into a document tree, and trees can be written back as YAML.
//
// This file contains:
// - Type and constant re-exports from internal/libyaml
// - The event API (Parser, EventsString, Tokens)
// - The tree API (Loader, Load, LoadReader)

package pullyaml

import (
	"io"

	"go.yaml.in/pullyaml/internal/libyaml"
)

// DefaultMaxDepth is the nesting limit used when WithMaxDepth is not given.
const DefaultMaxDepth = libyaml.MaxDepth

//-----------------------------------------------------------------------------
// Type and constant re-exports
//-----------------------------------------------------------------------------

type (
	// Mark is a position in the character stream.
	Mark = libyaml.Mark

	// Event is a single parsing event.
	Event = libyaml.Event

	// EventType identifies the type of an event.
	EventType = libyaml.EventType

	// Token is a single scanner token.
	Token = libyaml.Token

	// TokenType identifies the type of a token.
	TokenType = libyaml.TokenType

	// ScalarStyle is the presentation style of a scalar event.
	ScalarStyle = libyaml.ScalarStyle
)

// Event types.
const (
	StreamStartEvent   = libyaml.STREAM_START_EVENT
	StreamEndEvent     = libyaml.STREAM_END_EVENT
	DocumentStartEvent = libyaml.DOCUMENT_START_EVENT
	DocumentEndEvent   = libyaml.DOCUMENT_END_EVENT
	AliasEvent         = libyaml.ALIAS_EVENT
	ScalarEvent        = libyaml.SCALAR_EVENT
	SequenceStartEvent = libyaml.SEQUENCE_START_EVENT
	SequenceEndEvent   = libyaml.SEQUENCE_END_EVENT
	MappingStartEvent  = libyaml.MAPPING_START_EVENT
	MappingEndEvent    = libyaml.MAPPING_END_EVENT
)

//-----------------------------------------------------------------------------
// Event API
//-----------------------------------------------------------------------------

// Parser pulls events out of a YAML character stream.
type Parser struct {
	parser libyaml.Parser
	err    error
}

// NewParser returns a Parser reading from s.
func NewParser(s string, opts ...ParserOption) *Parser {
	return newParser(libyaml.NewStringInput(s), opts)
}

// NewParserFromReader returns a Parser pulling characters from r as events
// are requested. Both constructors produce the same events for the same
// text.
func NewParserFromReader(r io.RuneReader, opts ...ParserOption) *Parser {
	return newParser(libyaml.NewReaderInput(r), opts)
}

func newParser(input libyaml.Input, opts []ParserOption) *Parser {
	c, err := applyParserOptions(opts)
	if err != nil {
		return &Parser{err: err}
	}
	p := &Parser{parser: libyaml.NewParser(input)}
	configureParser(&p.parser, c)
	return p
}

func configureParser(parser *libyaml.Parser, c *parserConfig) {
	parser.SetMaxDepth(c.maxDepth)
	if c.loggerSet {
		parser.SetLogger(c.logger)
	}
}

// Next returns the next event. After the StreamEnd event, or after an
// error, every call returns the same terminal result: io.EOF or the error.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	var event Event
	if err := p.parser.Parse(&event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Events drains the parser and returns every event up to and including
// StreamEnd.
func (p *Parser) Events() ([]Event, error) {
	var events []Event
	for {
		event, err := p.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
		if event.Type == StreamEndEvent {
			return events, nil
		}
	}
}

// EventsString parses s and returns its events in yaml-test-suite
// notation, one event per line.
func EventsString(s string) (string, error) {
	return libyaml.ParserGetEvents(libyaml.NewStringInput(s))
}

// FormatEvent formats a single event in yaml-test-suite notation.
func FormatEvent(e *Event) string {
	return libyaml.FormatEvent(e)
}

// Tokens scans s and returns its tokens up to and including StreamEnd.
func Tokens(s string) ([]Token, error) {
	return scanTokens(libyaml.NewStringInput(s))
}

// TokensReader is like Tokens but pulls characters from r.
func TokensReader(r io.RuneReader) ([]Token, error) {
	return scanTokens(libyaml.NewReaderInput(r))
}

func scanTokens(input libyaml.Input) ([]Token, error) {
	parser := libyaml.NewParser(input)
	defer parser.Delete()
	var tokens []Token
	for {
		var token Token
		if err := parser.Scan(&token); err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Type == libyaml.STREAM_END_TOKEN {
			return tokens, nil
		}
	}
}

// FormatToken formats a single token for display.
func FormatToken(t *Token) string {
	return libyaml.FormatToken(t)
}

//-----------------------------------------------------------------------------
// Tree API
//-----------------------------------------------------------------------------

// Loader reads documents from an input stream one at a time.
type Loader struct {
	composer *libyaml.Composer
}

// NewLoader returns a Loader pulling characters from r.
func NewLoader(r io.RuneReader, opts ...ParserOption) (*Loader, error) {
	return newLoader(libyaml.NewReaderInput(r), opts)
}

func newLoader(input libyaml.Input, opts []ParserOption) (*Loader, error) {
	c, err := applyParserOptions(opts)
	if err != nil {
		return nil, err
	}
	composer := libyaml.NewComposer(input)
	configureParser(&composer.Parser, c)
	return &Loader{composer: composer}, nil
}

// Load returns the next document node, or io.EOF when the stream has no
// more documents.
func (l *Loader) Load() (*Node, error) {
	return l.composer.Compose()
}

// Load parses every document in s.
func Load(s string, opts ...ParserOption) ([]*Node, error) {
	l, err := newLoader(libyaml.NewStringInput(s), opts)
	if err != nil {
		return nil, err
	}
	return l.composer.ComposeAll()
}

// LoadReader parses every document pulled from r.
func LoadReader(r io.RuneReader, opts ...ParserOption) ([]*Node, error) {
	l, err := NewLoader(r, opts...)
	if err != nil {
		return nil, err
	}
	return l.composer.ComposeAll()
}
