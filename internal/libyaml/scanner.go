// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Scanner stage: Transforms input characters into tokens.
// Tracks indentation, simple keys, and the open flow brackets.
//
// The scanner produces the following tokens:
//
//	STREAM-START
//	STREAM-END
//	VERSION-DIRECTIVE(major,minor)
//	TAG-DIRECTIVE(handle,prefix)
//	DOCUMENT-START
//	DOCUMENT-END
//	BLOCK-SEQUENCE-START
//	BLOCK-MAPPING-START
//	BLOCK-END
//	FLOW-SEQUENCE-START
//	FLOW-SEQUENCE-END
//	FLOW-MAPPING-START
//	FLOW-MAPPING-END
//	BLOCK-ENTRY
//	FLOW-ENTRY
//	KEY
//	VALUE
//	ALIAS(anchor)
//	ANCHOR(anchor)
//	TAG(handle,suffix)
//	SCALAR(value,style)
//
// Comments are skipped and never produce tokens.
//
// BLOCK-SEQUENCE-START, BLOCK-MAPPING-START and BLOCK-END take the place of
// indentation increases and decreases. A plain scalar, quoted scalar, alias,
// anchor, tag or flow collection start may become a simple key; when a ':'
// follows it, a KEY token (and, in block context, a BLOCK-MAPPING-START) is
// inserted in front of it in the queue.
//
// Every scan routine reads at most MaxLookahead characters ahead of the
// cursor.

package libyaml

import (
	"fmt"
	"unicode/utf8"
)

// SimpleKey holds information about a potential simple key.
type SimpleKey struct {
	possible     bool // Is a simple key possible?
	required     bool // Is a simple key required?
	token_number int  // The number of the token.
	mark         Mark // The position mark.
}

// flowBracket records an open '[' or '{'.
type flowBracket struct {
	typ  TokenType // FLOW_SEQUENCE_START_TOKEN or FLOW_MAPPING_START_TOKEN
	mark Mark
}

func (parser *Parser) mark() Mark {
	return parser.input.Mark()
}

func (parser *Parser) peek(n int) rune {
	return parser.input.Peek(n)
}

// Advance the cursor by one character.
func (parser *Parser) skip() {
	parser.input.Consume(1)
}

// Advance the cursor past one logical line break.
func (parser *Parser) skipLine() {
	switch {
	case parser.peek(0) == '\r' && parser.peek(1) == '\n':
		parser.input.Consume(2)
	case isBreak(parser.peek(0)):
		parser.input.Consume(1)
	}
}

// Copy a character to a string buffer and advance the cursor.
func (parser *Parser) read(s []byte) []byte {
	s = utf8.AppendRune(s, parser.peek(0))
	parser.skip()
	return s
}

// Copy a line break to a string buffer as '\n' and advance the cursor.
func (parser *Parser) readLine(s []byte) []byte {
	if isBreak(parser.peek(0)) {
		s = append(s, '\n')
		parser.skipLine()
	}
	return s
}

// Check for a document marker ("---" or "...") followed by a blank.
func (parser *Parser) isDocumentIndicator(c rune) bool {
	return parser.mark().Column == 0 &&
		parser.peek(0) == c && parser.peek(1) == c && parser.peek(2) == c &&
		isBlankOrZero(parser.peek(3))
}

// Scan gets the next token.
func (parser *Parser) Scan(token *Token) error {
	// Erase the token object.
	*token = Token{}

	if parser.lastError != nil {
		return parser.lastError
	}

	// No tokens after STREAM-END or error.
	if parser.stream_end_produced {
		return errEndOfStream
	}

	// Ensure that the tokens queue contains enough tokens.
	if !parser.token_available {
		if err := parser.fetchMoreTokens(); err != nil {
			parser.lastError = err
			return err
		}
	}

	// Fetch the next token from the queue.
	*token = parser.tokens[parser.tokens_head]
	parser.tokens_head++
	parser.tokens_parsed++
	parser.token_available = false

	if token.Type == STREAM_END_TOKEN {
		parser.stream_end_produced = true
	}
	return nil
}

// readerError reports a failed character source, if any.
func (parser *Parser) readerError() error {
	if err := parser.input.Err(); err != nil {
		return ReaderError{Offset: parser.mark().Index, Err: err}
	}
	return nil
}

// formatScannerError creates a ScannerError at the current position. A
// failed character source takes precedence, since it is what ended the input.
func (parser *Parser) formatScannerError(kind ErrorKind, context string, context_mark Mark, problem string) error {
	if err := parser.readerError(); err != nil {
		return err
	}
	return ScannerError{
		Kind:           kind,
		ContextMark:    context_mark,
		ContextMessage: context,
		Mark:           parser.mark(),
		Message:        problem,
	}
}

// Ensure that the tokens queue contains at least one token which can be
// returned to the Parser.
func (parser *Parser) fetchMoreTokens() error {
	// While we need more tokens to fetch, do it.
	for {
		if parser.tokens_head != len(parser.tokens) {
			// If queue is non-empty, check if any potential simple key may
			// occupy the head position.
			i, ok := parser.simple_keys_by_tok[parser.tokens_parsed]
			if !ok || i >= len(parser.simple_keys) {
				break
			}
			valid, err := parser.simpleKeyIsValid(&parser.simple_keys[i])
			if err != nil {
				return err
			}
			if !valid {
				break
			}
		} else if parser.stream_end_fetched {
			return errEndOfStream
		}
		// Fetch the next token.
		if err := parser.fetchNextToken(); err != nil {
			return err
		}
	}

	parser.token_available = true
	return nil
}

// The dispatcher for token fetchers.
func (parser *Parser) fetchNextToken() error {
	// Check if we just started scanning.  Fetch STREAM-START then.
	if !parser.stream_start_produced {
		return parser.fetchStreamStart()
	}

	// Eat whitespaces and comments until we reach the next token.
	if err := parser.scanToNextToken(); err != nil {
		return err
	}

	// Check the indentation level against the current column.
	parser.unrollIndent(parser.mark().Column)

	c := parser.peek(0)

	// Is it the end of the stream?
	if isZ(c) {
		return parser.fetchStreamEnd()
	}

	// Is it a directive?
	if parser.mark().Column == 0 && c == '%' {
		return parser.fetchDirective()
	}

	// Is it the document start indicator?
	if parser.isDocumentIndicator('-') {
		return parser.fetchDocumentIndicator(DOCUMENT_START_TOKEN)
	}

	// Is it the document end indicator?
	if parser.isDocumentIndicator('.') {
		return parser.fetchDocumentIndicator(DOCUMENT_END_TOKEN)
	}

	next := parser.peek(1)

	switch c {
	case '[':
		return parser.fetchFlowCollectionStart(FLOW_SEQUENCE_START_TOKEN)
	case '{':
		return parser.fetchFlowCollectionStart(FLOW_MAPPING_START_TOKEN)
	case ']':
		return parser.fetchFlowCollectionEnd(FLOW_SEQUENCE_END_TOKEN)
	case '}':
		return parser.fetchFlowCollectionEnd(FLOW_MAPPING_END_TOKEN)
	case ',':
		return parser.fetchFlowEntry()
	case '*':
		return parser.fetchAnchor(ALIAS_TOKEN)
	case '&':
		return parser.fetchAnchor(ANCHOR_TOKEN)
	case '!':
		return parser.fetchTag()
	case '\'':
		return parser.fetchFlowScalar(true)
	case '"':
		return parser.fetchFlowScalar(false)
	}

	// Is it the block entry indicator?
	if c == '-' && isBlankOrZero(next) {
		return parser.fetchBlockEntry()
	}

	// Is it the key indicator?
	if c == '?' && isBlankOrZero(next) {
		return parser.fetchKey()
	}

	// Is it the value indicator? In the flow context it may also be glued
	// to a flow indicator or follow a quoted key or a closed collection.
	if c == ':' && (isBlankOrZero(next) || parser.flow_level > 0 &&
		(isFlowIndicator(next) || parser.adjacent_value_allowed_at == parser.mark().Index)) {
		return parser.fetchValue()
	}

	// Is it a literal or folded scalar?
	if parser.flow_level == 0 && (c == '|' || c == '>') {
		return parser.fetchBlockScalar(c == '|')
	}

	// Is it a plain scalar?
	//
	// A plain scalar may start with any non-blank characters except
	//
	//      '-', '?', ':', ',', '[', ']', '{', '}',
	//      '#', '&', '*', '!', '|', '>', '\'', '\"',
	//      '%', '@', '`'.
	//
	// It may also start with '-', '?' or ':' followed by a character that
	// may continue the scalar in the current context.
	switch {
	case isBlankOrZero(c):
	case c == '-' || c == '?' || c == ':':
		if !isBlankOrZero(next) && !(parser.flow_level > 0 && isFlowIndicator(next)) {
			return parser.fetchPlainScalar()
		}
	case c == '#' || c == '|' || c == '>' || c == '%' || c == '@' || c == '`':
	default:
		return parser.fetchPlainScalar()
	}

	if isTab(c) {
		return parser.formatScannerError(IndentationError,
			"while scanning for the next token", parser.mark(),
			"found a tab character where an indentation space is expected")
	}

	// If we don't determine the token type so far, it is an error.
	return parser.formatScannerError(UnexpectedToken,
		"while scanning for the next token", parser.mark(),
		"found character that cannot start any token")
}

// simpleKeyIsValid reports whether a saved simple key can still become a
// key. A key is restricted to a single line and to 1024 characters before
// its ':' indicator.
func (parser *Parser) simpleKeyIsValid(simple_key *SimpleKey) (bool, error) {
	if !simple_key.possible {
		return false, nil
	}
	mark := parser.mark()
	if simple_key.mark.Line < mark.Line || simple_key.mark.Index+1024 < mark.Index {
		// Check if the potential simple key to be removed is required.
		if simple_key.required {
			return false, parser.formatScannerError(UnexpectedToken,
				"while scanning a simple key", simple_key.mark,
				"could not find expected ':'")
		}
		simple_key.possible = false
		delete(parser.simple_keys_by_tok, simple_key.token_number)
		return false, nil
	}
	return true, nil
}

// Check if a simple key may start at the current position and add it if
// needed.
func (parser *Parser) saveSimpleKey() error {
	// A simple key is required at the current position if the scanner is in
	// the block context and the current column coincides with the indentation
	// level.
	required := parser.flow_level == 0 && parser.indent == parser.mark().Column

	// If the current position may start a simple key, save it.
	if parser.simple_key_allowed {
		simple_key := SimpleKey{
			possible:     true,
			required:     required,
			token_number: parser.tokens_parsed + (len(parser.tokens) - parser.tokens_head),
			mark:         parser.mark(),
		}
		if err := parser.removeSimpleKey(); err != nil {
			return err
		}
		parser.simple_keys[len(parser.simple_keys)-1] = simple_key
		parser.simple_keys_by_tok[simple_key.token_number] = len(parser.simple_keys) - 1
	}
	return nil
}

// Remove a potential simple key at the current flow level.
func (parser *Parser) removeSimpleKey() error {
	i := len(parser.simple_keys) - 1
	if parser.simple_keys[i].possible {
		// If the key is required, it is an error.
		if parser.simple_keys[i].required {
			return parser.formatScannerError(UnexpectedToken,
				"while scanning a simple key", parser.simple_keys[i].mark,
				"could not find expected ':'")
		}
		// Remove the key from the stack.
		parser.simple_keys[i].possible = false
		delete(parser.simple_keys_by_tok, parser.simple_keys[i].token_number)
	}
	return nil
}

// Increase the flow level and resize the simple key list if needed.
func (parser *Parser) increaseFlowLevel(typ TokenType) error {
	mark := parser.mark()

	// Reset the simple key on the next level.
	parser.simple_keys = append(parser.simple_keys, SimpleKey{mark: mark})
	parser.flows = append(parser.flows, flowBracket{typ: typ, mark: mark})

	// Increase the flow level.
	parser.flow_level++
	if parser.flow_level > parser.maxDepth {
		return ScannerError{
			Kind:           NestingTooDeep,
			ContextMark:    mark,
			ContextMessage: "while increasing flow level",
			Mark:           mark,
			Message:        fmt.Sprintf("exceeded max depth of %d", parser.maxDepth),
		}
	}
	return nil
}

// Decrease the flow level. The caller has already checked that a bracket
// is open.
func (parser *Parser) decreaseFlowLevel() {
	if parser.flow_level > 0 {
		parser.flow_level--
		last := len(parser.simple_keys) - 1
		delete(parser.simple_keys_by_tok, parser.simple_keys[last].token_number)
		parser.simple_keys = parser.simple_keys[:last]
		parser.flows = parser.flows[:len(parser.flows)-1]
	}
}

// Push the current indentation level to the stack and set the new level
// the current column is greater than the indentation level.  In this case,
// append or insert the specified token into the token queue.
func (parser *Parser) rollIndent(column, number int, typ TokenType, mark Mark) error {
	// In the flow context, do nothing.
	if parser.flow_level > 0 {
		return nil
	}

	if parser.indent < column {
		// Push the current indentation level to the stack and set the new
		// indentation level.
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = column
		if len(parser.indents) > parser.maxDepth {
			return ScannerError{
				Kind:           NestingTooDeep,
				ContextMark:    mark,
				ContextMessage: "while increasing indent level",
				Mark:           parser.mark(),
				Message:        fmt.Sprintf("exceeded max depth of %d", parser.maxDepth),
			}
		}

		// Create a token and insert it into the queue.
		token := Token{
			Type:      typ,
			StartMark: mark,
			EndMark:   mark,
		}
		if number > -1 {
			number -= parser.tokens_parsed
		}
		parser.insertToken(number, &token)
	}
	return nil
}

// Pop indentation levels from the indents stack until the current level
// becomes less or equal to the column.  For each indentation level, append
// the BLOCK-END token.
func (parser *Parser) unrollIndent(column int) {
	// In the flow context, do nothing.
	if parser.flow_level > 0 {
		return
	}

	for parser.indent > column {
		mark := parser.mark()
		parser.insertToken(-1, &Token{
			Type:      BLOCK_END_TOKEN,
			StartMark: mark,
			EndMark:   mark,
		})

		// Pop the indentation level.
		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
	}
}

// Initialize the scanner and produce the STREAM-START token.
func (parser *Parser) fetchStreamStart() error {
	// Set the initial indentation.
	parser.indent = -1

	// Initialize the simple key stack.
	parser.simple_keys = append(parser.simple_keys, SimpleKey{})
	parser.simple_keys_by_tok = make(map[int]int)

	// A simple key is allowed at the beginning of the stream.
	parser.simple_key_allowed = true

	// We have started.
	parser.stream_start_produced = true

	// Create the STREAM-START token and append it to the queue.
	mark := parser.mark()
	parser.insertToken(-1, &Token{
		Type:      STREAM_START_TOKEN,
		StartMark: mark,
		EndMark:   mark,
	})
	return nil
}

// Produce the STREAM-END token and shut down the scanner.
func (parser *Parser) fetchStreamEnd() error {
	// A flow collection has no implicit end.
	if n := len(parser.flows); n > 0 {
		open := parser.flows[n-1]
		context, problem := "while scanning a flow sequence", "did not find expected ']'"
		if open.typ == FLOW_MAPPING_START_TOKEN {
			context, problem = "while scanning a flow mapping", "did not find expected '}'"
		}
		return parser.formatScannerError(UnbalancedFlowContext, context, open.mark, problem)
	}
	if err := parser.readerError(); err != nil {
		return err
	}

	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	parser.stream_end_fetched = true

	// Create the STREAM-END token and append it to the queue.
	mark := parser.mark()
	parser.insertToken(-1, &Token{
		Type:      STREAM_END_TOKEN,
		StartMark: mark,
		EndMark:   mark,
	})
	return nil
}

// Produce a VERSION-DIRECTIVE or TAG-DIRECTIVE token.
func (parser *Parser) fetchDirective() error {
	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false

	// Create the YAML-DIRECTIVE or TAG-DIRECTIVE token.
	var token Token
	ok, err := parser.scanDirective(&token)
	if err != nil || !ok {
		return err
	}
	// Append the token to the queue.
	parser.insertToken(-1, &token)
	return nil
}

// Produce the DOCUMENT-START or DOCUMENT-END token.
func (parser *Parser) fetchDocumentIndicator(typ TokenType) error {
	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false

	// Consume the token.
	start_mark := parser.mark()
	parser.input.Consume(3)
	end_mark := parser.mark()

	// Create the DOCUMENT-START or DOCUMENT-END token.
	parser.insertToken(-1, &Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the FLOW-SEQUENCE-START or FLOW-MAPPING-START token.
func (parser *Parser) fetchFlowCollectionStart(typ TokenType) error {
	// The indicators '[' and '{' may start a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// Increase the flow level.
	if err := parser.increaseFlowLevel(typ); err != nil {
		return err
	}

	// A simple key may follow the indicators '[' and '{'.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// Create the FLOW-SEQUENCE-START of FLOW-MAPPING-START token.
	parser.insertToken(-1, &Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the FLOW-SEQUENCE-END or FLOW-MAPPING-END token. The closing
// bracket must match the innermost open one.
func (parser *Parser) fetchFlowCollectionEnd(typ TokenType) error {
	closer, opener := ']', FLOW_SEQUENCE_START_TOKEN
	if typ == FLOW_MAPPING_END_TOKEN {
		closer, opener = '}', FLOW_MAPPING_START_TOKEN
	}
	if len(parser.flows) == 0 {
		return parser.formatScannerError(UnbalancedFlowContext, "", Mark{},
			fmt.Sprintf("found unexpected '%c' outside of a flow collection", closer))
	}
	if open := parser.flows[len(parser.flows)-1]; open.typ != opener {
		context, expected := "while scanning a flow sequence", ']'
		if open.typ == FLOW_MAPPING_START_TOKEN {
			context, expected = "while scanning a flow mapping", '}'
		}
		return parser.formatScannerError(UnbalancedFlowContext, context, open.mark,
			fmt.Sprintf("found '%c' where '%c' was expected", closer, expected))
	}

	// Reset any potential simple key on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Decrease the flow level.
	parser.decreaseFlowLevel()

	// No simple keys after the indicators ']' and '}'.
	parser.simple_key_allowed = false

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// A ':' right after a closed collection is a value indicator.
	if parser.flow_level > 0 {
		parser.adjacent_value_allowed_at = end_mark.Index
	}

	// Create the FLOW-SEQUENCE-END of FLOW-MAPPING-END token.
	parser.insertToken(-1, &Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the FLOW-ENTRY token.
func (parser *Parser) fetchFlowEntry() error {
	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after ','.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// Create the FLOW-ENTRY token and append it to the queue.
	parser.insertToken(-1, &Token{
		Type:      FLOW_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the BLOCK-ENTRY token.
func (parser *Parser) fetchBlockEntry() error {
	// Check if the scanner is in the block context.
	if parser.flow_level == 0 {
		// Check if we are allowed to start a new entry.
		if !parser.simple_key_allowed {
			return parser.formatScannerError(UnexpectedToken, "", parser.mark(),
				"block sequence entries are not allowed in this context")
		}
		// Add the BLOCK-SEQUENCE-START token if needed.
		mark := parser.mark()
		if err := parser.rollIndent(mark.Column, -1, BLOCK_SEQUENCE_START_TOKEN, mark); err != nil {
			return err
		}
	} else { //nolint:staticcheck // there is no problem with this empty branch as it's documentation.
		// It is an error for the '-' indicator to occur in the flow context,
		// but we let the Parser detect and report about it because the Parser
		// is able to point to the context.
	}

	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after '-'.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// Create the BLOCK-ENTRY token and append it to the queue.
	parser.insertToken(-1, &Token{
		Type:      BLOCK_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the KEY token.
func (parser *Parser) fetchKey() error {
	// In the block context, additional checks are required.
	if parser.flow_level == 0 {
		// Check if we are allowed to start a new key (not necessary simple).
		if !parser.simple_key_allowed {
			return parser.formatScannerError(UnexpectedToken, "", parser.mark(),
				"mapping keys are not allowed in this context")
		}
		// Add the BLOCK-MAPPING-START token if needed.
		mark := parser.mark()
		if err := parser.rollIndent(mark.Column, -1, BLOCK_MAPPING_START_TOKEN, mark); err != nil {
			return err
		}
	}

	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after '?' in the block context.
	parser.simple_key_allowed = parser.flow_level == 0

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// Create the KEY token and append it to the queue.
	parser.insertToken(-1, &Token{
		Type:      KEY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the VALUE token.
func (parser *Parser) fetchValue() error {
	simple_key := &parser.simple_keys[len(parser.simple_keys)-1]

	// Have we found a simple key?
	valid, err := parser.simpleKeyIsValid(simple_key)
	if err != nil {
		return err
	}
	if valid {
		// Create the KEY token and insert it into the queue.
		token := Token{
			Type:      KEY_TOKEN,
			StartMark: simple_key.mark,
			EndMark:   simple_key.mark,
		}
		parser.insertToken(simple_key.token_number-parser.tokens_parsed, &token)

		// In the block context, we may need to add the BLOCK-MAPPING-START token.
		if err := parser.rollIndent(simple_key.mark.Column,
			simple_key.token_number,
			BLOCK_MAPPING_START_TOKEN, simple_key.mark); err != nil {
			return err
		}

		// Remove the simple key.
		simple_key.possible = false
		delete(parser.simple_keys_by_tok, simple_key.token_number)

		// A simple key cannot follow another simple key.
		parser.simple_key_allowed = false
	} else {
		// The ':' indicator follows a complex key.

		// In the block context, extra checks are required.
		if parser.flow_level == 0 {
			// Check if we are allowed to start a complex value.
			if !parser.simple_key_allowed {
				return parser.formatScannerError(UnexpectedToken, "", parser.mark(),
					"mapping values are not allowed in this context")
			}

			// Add the BLOCK-MAPPING-START token if needed.
			mark := parser.mark()
			if err := parser.rollIndent(mark.Column, -1, BLOCK_MAPPING_START_TOKEN, mark); err != nil {
				return err
			}
		}

		// Simple keys after ':' are allowed in the block context.
		parser.simple_key_allowed = parser.flow_level == 0
	}

	// Consume the token.
	start_mark := parser.mark()
	parser.skip()
	end_mark := parser.mark()

	// Create the VALUE token and append it to the queue.
	parser.insertToken(-1, &Token{
		Type:      VALUE_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

// Produce the ALIAS or ANCHOR token.
func (parser *Parser) fetchAnchor(typ TokenType) error {
	// An anchor or an alias could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow an anchor or an alias.
	parser.simple_key_allowed = false

	// Create the ALIAS or ANCHOR token and append it to the queue.
	var token Token
	if err := parser.scanAnchor(&token, typ); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the TAG token.
func (parser *Parser) fetchTag() error {
	// A tag could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a tag.
	parser.simple_key_allowed = false

	// Create the TAG token and append it to the queue.
	var token Token
	if err := parser.scanTag(&token); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,literal) or SCALAR(...,folded) tokens.
func (parser *Parser) fetchBlockScalar(literal bool) error {
	// Remove any potential simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// A simple key may follow a block scalar.
	parser.simple_key_allowed = true

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanBlockScalar(&token, literal); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,single-quoted) or SCALAR(...,double-quoted) tokens.
func (parser *Parser) fetchFlowScalar(single bool) error {
	// A plain scalar could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a flow scalar.
	parser.simple_key_allowed = false

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanFlowScalar(&token, single); err != nil {
		return err
	}
	if parser.flow_level > 0 {
		parser.adjacent_value_allowed_at = token.EndMark.Index
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,plain) token.
func (parser *Parser) fetchPlainScalar() error {
	// A plain scalar could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a flow scalar.
	parser.simple_key_allowed = false

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanPlainScalar(&token); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Eat whitespaces and comments until the next token is found.
//
// Tabs may separate tokens anywhere, but in the block context they may not
// make up the indentation in front of a token.
func (parser *Parser) scanToNextToken() error {
	// Until the next token is not found.
	for {
		leading := parser.mark().Column == 0
		tabbed := false

		// Eat whitespaces.
		for {
			c := parser.peek(0)
			if isTab(c) && parser.flow_level == 0 && leading {
				tabbed = true
			}
			if !isBlank(c) {
				break
			}
			parser.skip()
		}

		// Eat a comment until a line break.
		if parser.peek(0) == '#' {
			for !isBreakOrZero(parser.peek(0)) {
				parser.skip()
			}
		}

		// If it is a line break, eat it.
		if isBreak(parser.peek(0)) {
			parser.skipLine()

			// In the block context, a new line may start a simple key.
			if parser.flow_level == 0 {
				parser.simple_key_allowed = true
			}
			continue
		}

		if tabbed && !isZ(parser.peek(0)) {
			return parser.formatScannerError(IndentationError,
				"while scanning for the next token", parser.mark(),
				"found a tab character where an indentation space is expected")
		}
		return nil
	}
}

// Scan a YAML-DIRECTIVE or TAG-DIRECTIVE token. Reserved directives are
// skipped to the end of the line and produce no token.
//
// Scope:
//
//	%YAML    1.1    # a comment \n
//	^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
//	%TAG    !yaml!  tag:yaml.org,2002:  \n
//	^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
func (parser *Parser) scanDirective(token *Token) (bool, error) {
	// Eat '%'.
	start_mark := parser.mark()
	parser.skip()

	// Scan the directive name.
	name, err := parser.scanDirectiveName(start_mark)
	if err != nil {
		return false, err
	}

	// Is it a YAML-DIRECTIVE?
	switch name {
	case "YAML":
		// Scan the VERSION directive value.
		major, minor, err := parser.scanVersionDirectiveValue(start_mark)
		if err != nil {
			return false, err
		}
		*token = Token{
			Type:      VERSION_DIRECTIVE_TOKEN,
			StartMark: start_mark,
			EndMark:   parser.mark(),
			Major:     major,
			Minor:     minor,
		}

	case "TAG":
		// Scan the TAG directive value.
		handle, prefix, err := parser.scanTagDirectiveValue(start_mark)
		if err != nil {
			return false, err
		}
		*token = Token{
			Type:      TAG_DIRECTIVE_TOKEN,
			StartMark: start_mark,
			EndMark:   parser.mark(),
			Value:     handle,
			Prefix:    prefix,
		}

	default:
		// Reserved directives are ignored.
		for !isBreakOrZero(parser.peek(0)) {
			parser.skip()
		}
		parser.skipLine()
		return false, nil
	}

	// Eat the rest of the line including any comments.
	for isBlank(parser.peek(0)) {
		parser.skip()
	}
	if parser.peek(0) == '#' {
		for !isBreakOrZero(parser.peek(0)) {
			parser.skip()
		}
	}

	// Check if we are at the end of the line.
	if !isBreakOrZero(parser.peek(0)) {
		return false, parser.formatScannerError(InvalidDirective,
			"while scanning a directive", start_mark,
			"did not find expected comment or line break")
	}

	// Eat a line break.
	parser.skipLine()
	return true, nil
}

// Scan the directive name.
//
// Scope:
//
//	%YAML   1.1     # a comment \n
//	 ^^^^
//	%TAG    !yaml!  tag:yaml.org,2002:  \n
//	 ^^^
func (parser *Parser) scanDirectiveName(start_mark Mark) (string, error) {
	// Consume the directive name.
	var s []byte
	for isAlpha(parser.peek(0)) {
		s = parser.read(s)
	}

	// Check if the name is empty.
	if len(s) == 0 {
		return "", parser.formatScannerError(InvalidDirective,
			"while scanning a directive", start_mark,
			"could not find expected directive name")
	}

	// Check for an blank character after the name.
	if !isBlankOrZero(parser.peek(0)) {
		return "", parser.formatScannerError(InvalidDirective,
			"while scanning a directive", start_mark,
			"found unexpected non-alphabetical character")
	}
	return string(s), nil
}

// Scan the value of VERSION-DIRECTIVE.
//
// Scope:
//
//	%YAML   1.1     # a comment \n
//	     ^^^^^^
func (parser *Parser) scanVersionDirectiveValue(start_mark Mark) (major, minor int, err error) {
	// Eat whitespaces.
	for isBlank(parser.peek(0)) {
		parser.skip()
	}

	// Consume the major version number.
	if major, err = parser.scanVersionDirectiveNumber(start_mark); err != nil {
		return 0, 0, err
	}

	// Eat '.'.
	if parser.peek(0) != '.' {
		return 0, 0, parser.formatScannerError(InvalidDirective,
			"while scanning a %YAML directive", start_mark,
			"did not find expected digit or '.' character")
	}
	parser.skip()

	// Consume the minor version number.
	if minor, err = parser.scanVersionDirectiveNumber(start_mark); err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

const max_number_length = 9

// Scan the version number of VERSION-DIRECTIVE.
//
// Scope:
//
//	%YAML   1.1     # a comment \n
//	        ^
//	%YAML   1.1     # a comment \n
//	          ^
func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark) (int, error) {
	// Repeat while the next character is digit.
	var value, length int
	for isDigit(parser.peek(0)) {
		// Check if the number is too long.
		length++
		if length > max_number_length {
			return 0, parser.formatScannerError(InvalidDirective,
				"while scanning a %YAML directive", start_mark,
				"found extremely long version number")
		}
		value = value*10 + asDigit(parser.peek(0))
		parser.skip()
	}

	// Check if the number was present.
	if length == 0 {
		return 0, parser.formatScannerError(InvalidDirective,
			"while scanning a %YAML directive", start_mark,
			"did not find expected version number")
	}
	return value, nil
}

// Scan the value of a TAG-DIRECTIVE token.
//
// Scope:
//
//	%TAG    !yaml!  tag:yaml.org,2002:  \n
//	    ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
func (parser *Parser) scanTagDirectiveValue(start_mark Mark) (handle, prefix string, err error) {
	// Eat whitespaces.
	for isBlank(parser.peek(0)) {
		parser.skip()
	}

	// Scan a handle.
	if handle, err = parser.scanTagHandle(true, start_mark); err != nil {
		return "", "", err
	}

	// Expect a whitespace.
	if !isBlank(parser.peek(0)) {
		return "", "", parser.formatScannerError(InvalidDirective,
			"while scanning a %TAG directive", start_mark,
			"did not find expected whitespace")
	}

	// Eat whitespaces.
	for isBlank(parser.peek(0)) {
		parser.skip()
	}

	// Scan a prefix.
	if prefix, err = parser.scanTagURI(true, "", start_mark); err != nil {
		return "", "", err
	}

	// Expect a whitespace or line break.
	if !isBlankOrZero(parser.peek(0)) {
		return "", "", parser.formatScannerError(InvalidDirective,
			"while scanning a %TAG directive", start_mark,
			"did not find expected whitespace or line break")
	}
	return handle, prefix, nil
}

// Scan an ANCHOR or ALIAS token.
func (parser *Parser) scanAnchor(token *Token, typ TokenType) error {
	// Eat the indicator character.
	start_mark := parser.mark()
	parser.skip()

	// Consume the value.
	var s []byte
	for isAnchorChar(parser.peek(0)) {
		s = parser.read(s)
	}
	end_mark := parser.mark()

	// An anchor or alias name must not be empty.
	if len(s) == 0 {
		context := "while scanning an anchor"
		if typ == ALIAS_TOKEN {
			context = "while scanning an alias"
		}
		return parser.formatScannerError(UnexpectedToken, context, start_mark,
			"did not find expected alphabetic or numeric character")
	}

	// Create a token.
	*token = Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     string(s),
	}
	return nil
}

// Scan a TAG token.
func (parser *Parser) scanTag(token *Token) error {
	var handle, suffix string
	var err error

	start_mark := parser.mark()

	// Check if the tag is in the canonical form.
	if parser.peek(1) == '<' {
		// Eat '!<'
		parser.input.Consume(2)

		// Consume the tag value.
		if suffix, err = parser.scanTagURI(false, "", start_mark); err != nil {
			return err
		}

		// Check for '>' and eat it.
		if parser.peek(0) != '>' {
			return parser.formatScannerError(UnexpectedToken,
				"while scanning a tag", start_mark,
				"did not find the expected '>'")
		}
		parser.skip()
	} else {
		// The tag has either the '!suffix' or the '!handle!suffix' form.

		// First, try to scan a handle.
		if handle, err = parser.scanTagHandle(false, start_mark); err != nil {
			return err
		}

		// Check if it is, indeed, handle.
		if len(handle) > 1 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			// Scan the suffix now.
			if suffix, err = parser.scanTagURI(false, "", start_mark); err != nil {
				return err
			}
		} else {
			// It wasn't a handle after all.  Scan the rest of the tag.
			if suffix, err = parser.scanTagURI(false, handle, start_mark); err != nil {
				return err
			}

			// Set the handle to '!'.
			handle = "!"

			// A special case: the '!' tag.  Set the handle to '' and the
			// suffix to '!'.
			if len(suffix) == 0 {
				handle, suffix = "", "!"
			}
		}
	}

	// Check the character which ends the tag.
	if c := parser.peek(0); !isBlankOrZero(c) {
		if parser.flow_level == 0 || c != ',' {
			return parser.formatScannerError(UnexpectedToken,
				"while scanning a tag", start_mark,
				"did not find expected whitespace or line break")
		}
	}

	*token = Token{
		Type:      TAG_TOKEN,
		StartMark: start_mark,
		EndMark:   parser.mark(),
		Value:     handle,
		Suffix:    suffix,
	}
	return nil
}

// Scan a tag handle.
func (parser *Parser) scanTagHandle(directive bool, start_mark Mark) (string, error) {
	kind, context := UnexpectedToken, "while scanning a tag"
	if directive {
		kind, context = InvalidDirective, "while parsing a %TAG directive"
	}

	// Check the initial '!' character.
	if parser.peek(0) != '!' {
		return "", parser.formatScannerError(kind, context, start_mark,
			"did not find expected '!'")
	}

	// Copy the '!' character.
	s := parser.read(nil)

	// Copy all subsequent alphabetical and numerical characters.
	for isAlpha(parser.peek(0)) {
		s = parser.read(s)
	}

	// Check if the trailing character is '!' and copy it.
	if parser.peek(0) == '!' {
		s = parser.read(s)
	} else if directive && string(s) != "!" {
		// It's either the '!' tag or not really a tag handle.  If it's a %TAG
		// directive, it's an error.  If it's a tag token, it must be a part of
		// URI.
		return "", parser.formatScannerError(kind, context, start_mark,
			"did not find expected '!'")
	}
	return string(s), nil
}

// Scan a tag.
func (parser *Parser) scanTagURI(directive bool, head string, start_mark Mark) (string, error) {
	kind, context := UnexpectedToken, "while parsing a tag"
	if directive {
		kind, context = InvalidDirective, "while parsing a %TAG directive"
	}

	// Copy the head if needed.
	//
	// Note that we don't copy the leading '!' character.
	var s []byte
	if len(head) > 1 {
		s = append(s, head[1:]...)
	}

	// The set of characters that may appear in URI is as follows:
	//
	//      '0'-'9', 'A'-'Z', 'a'-'z', '_', '-', ';', '/', '?', ':', '@', '&',
	//      '=', '+', '$', '.', '!', '~', '*', '\'', '(', ')', '%', '#'
	//
	// and, outside the flow context, ',', '[' and ']'.
	for isURIChar(parser.peek(0), parser.flow_level > 0) {
		// Check if it is a URI-escape sequence.
		if parser.peek(0) == '%' {
			var err error
			if s, err = parser.scanURIEscapes(s, kind, context, start_mark); err != nil {
				return "", err
			}
		} else {
			s = parser.read(s)
		}
	}

	// Check if the tag is non-empty.
	if directive && len(s) == 0 {
		return "", parser.formatScannerError(kind, context, start_mark,
			"did not find expected tag URI")
	}
	return string(s), nil
}

// Decode an URI-escape sequence corresponding to a single UTF-8 character.
func (parser *Parser) scanURIEscapes(s []byte, kind ErrorKind, context string, start_mark Mark) ([]byte, error) {
	// Decode the required number of characters.
	w := 0
	for {
		// Check for a URI-escaped octet.
		if parser.peek(0) != '%' || !isHex(parser.peek(1)) || !isHex(parser.peek(2)) {
			return nil, parser.formatScannerError(kind, context, start_mark,
				"did not find URI escaped octet")
		}

		// Get the octet.
		octet := byte((asHex(parser.peek(1)) << 4) + asHex(parser.peek(2)))

		// If it is the leading octet, determine the length of the UTF-8 sequence.
		if w == 0 {
			w = utf8Width(octet)
			if w == 0 {
				return nil, parser.formatScannerError(kind, context, start_mark,
					"found an incorrect leading UTF-8 octet")
			}
		} else if octet&0xC0 != 0x80 {
			// Check if the trailing octet is correct.
			return nil, parser.formatScannerError(kind, context, start_mark,
				"found an incorrect trailing UTF-8 octet")
		}

		// Copy the octet and move the pointers.
		s = append(s, octet)
		parser.input.Consume(3)
		w--
		if w == 0 {
			return s, nil
		}
	}
}

// Scan a block scalar.
func (parser *Parser) scanBlockScalar(token *Token, literal bool) error {
	// Eat the indicator '|' or '>'.
	start_mark := parser.mark()
	parser.skip()

	// Scan the additional block scalar indicators.
	var chomping, increment int
	if c := parser.peek(0); c == '+' || c == '-' {
		// Set the chomping method and eat the indicator.
		if c == '+' {
			chomping = +1
		} else {
			chomping = -1
		}
		parser.skip()

		// Check for an indentation indicator.
		if isDigit(parser.peek(0)) {
			// Check that the indentation is greater than 0.
			if parser.peek(0) == '0' {
				return parser.formatScannerError(UnexpectedToken,
					"while scanning a block scalar", start_mark,
					"found an indentation indicator equal to 0")
			}

			// Get the indentation level and eat the indicator.
			increment = asDigit(parser.peek(0))
			parser.skip()
		}

	} else if isDigit(c) {
		// Do the same as above, but in the opposite order.

		if c == '0' {
			return parser.formatScannerError(UnexpectedToken,
				"while scanning a block scalar", start_mark,
				"found an indentation indicator equal to 0")
		}
		increment = asDigit(c)
		parser.skip()

		if c := parser.peek(0); c == '+' || c == '-' {
			if c == '+' {
				chomping = +1
			} else {
				chomping = -1
			}
			parser.skip()
		}
	}

	// Eat whitespaces and comments to the end of the line.
	for isBlank(parser.peek(0)) {
		parser.skip()
	}
	if parser.peek(0) == '#' {
		for !isBreakOrZero(parser.peek(0)) {
			parser.skip()
		}
	}

	// Check if we are at the end of the line.
	if !isBreakOrZero(parser.peek(0)) {
		return parser.formatScannerError(UnexpectedToken,
			"while scanning a block scalar", start_mark,
			"did not find expected comment or line break")
	}

	// Eat a line break.
	parser.skipLine()

	end_mark := parser.mark()

	// Set the indentation level if it was specified.
	var indent int
	if increment > 0 {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}

	// Scan the leading line breaks and determine the indentation level if needed.
	var s, leading_break, trailing_breaks []byte
	if err := parser.scanBlockScalarBreaks(&indent, &trailing_breaks, start_mark, &end_mark); err != nil {
		return err
	}

	// Scan the block scalar content.
	var leading_blank, trailing_blank bool
	for parser.mark().Column == indent && !isZ(parser.peek(0)) {
		// We are at the beginning of a non-empty line.

		// Is it a trailing whitespace?
		trailing_blank = isBlank(parser.peek(0))

		// Check if we need to fold the leading line break.
		if !literal && !leading_blank && !trailing_blank && len(leading_break) > 0 && leading_break[0] == '\n' {
			// Do we need to join the lines by space?
			if len(trailing_breaks) == 0 {
				s = append(s, ' ')
			}
		} else {
			s = append(s, leading_break...)
		}
		leading_break = leading_break[:0]

		// Append the remaining line breaks.
		s = append(s, trailing_breaks...)
		trailing_breaks = trailing_breaks[:0]

		// Is it a leading whitespace?
		leading_blank = isBlank(parser.peek(0))

		// Consume the current line.
		for !isBreakOrZero(parser.peek(0)) {
			s = parser.read(s)
		}

		// Consume the line break.
		leading_break = parser.readLine(leading_break)

		// Eat the following indentation spaces and line breaks.
		if err := parser.scanBlockScalarBreaks(&indent, &trailing_breaks, start_mark, &end_mark); err != nil {
			return err
		}
	}

	// Chomp the tail.
	if chomping != -1 {
		s = append(s, leading_break...)
	}
	if chomping == 1 {
		s = append(s, trailing_breaks...)
	}

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     string(s),
		Style:     LITERAL_SCALAR_STYLE,
	}
	if !literal {
		token.Style = FOLDED_SCALAR_STYLE
	}
	return nil
}

// Scan indentation spaces and line breaks for a block scalar.  Determine the
// indentation level if needed.
func (parser *Parser) scanBlockScalarBreaks(indent *int, breaks *[]byte, start_mark Mark, end_mark *Mark) error {
	*end_mark = parser.mark()

	// Eat the indentation spaces and line breaks.
	max_indent := 0
	for {
		// Eat the indentation spaces.
		for (*indent == 0 || parser.mark().Column < *indent) && isSpace(parser.peek(0)) {
			parser.skip()
		}
		if column := parser.mark().Column; column > max_indent {
			max_indent = column
		}

		// Check for a tab character messing the indentation. While the
		// indentation is still being detected, a tab that follows enough
		// spaces ends the indentation and starts the content.
		column := parser.mark().Column
		if *indent == 0 && column > 0 && column > parser.indent && isTab(parser.peek(0)) {
			break
		}
		if (*indent == 0 || column < *indent) && isTab(parser.peek(0)) {
			return parser.formatScannerError(IndentationError,
				"while scanning a block scalar", start_mark,
				"found a tab character where an indentation space is expected")
		}

		// Have we found a non-empty line?
		if !isBreak(parser.peek(0)) {
			break
		}

		// Consume the line break.
		*breaks = parser.readLine(*breaks)
		*end_mark = parser.mark()
	}

	// Determine the indentation level if needed.
	if *indent == 0 {
		*indent = max_indent
		if *indent < parser.indent+1 {
			*indent = parser.indent + 1
		}
		if *indent < 1 {
			*indent = 1
		}
	}
	return nil
}

// Scan a quoted scalar.
func (parser *Parser) scanFlowScalar(token *Token, single bool) error {
	// Eat the left quote.
	start_mark := parser.mark()
	parser.skip()

	// Consume the content of the quoted scalar.
	var s, leading_break, trailing_breaks, whitespaces []byte
	for {
		// Check that there are no document indicators at the beginning of the line.
		if parser.isDocumentIndicator('-') || parser.isDocumentIndicator('.') {
			return parser.formatScannerError(UnterminatedScalar,
				"while scanning a quoted scalar", start_mark,
				"found unexpected document indicator")
		}

		// Check for EOF.
		if isZ(parser.peek(0)) {
			return parser.formatScannerError(UnterminatedScalar,
				"while scanning a quoted scalar", start_mark,
				"found unexpected end of stream")
		}

		// Consume non-blank characters.
		leading_blanks := false
		for !isBlankOrZero(parser.peek(0)) {
			c := parser.peek(0)
			if single && c == '\'' && parser.peek(1) == '\'' {
				// Is is an escaped single quote.
				s = append(s, '\'')
				parser.input.Consume(2)

			} else if single && c == '\'' {
				// It is a right single quote.
				break
			} else if !single && c == '"' {
				// It is a right double quote.
				break

			} else if !single && c == '\\' && isBreak(parser.peek(1)) {
				// It is an escaped line break.
				parser.skip()
				parser.skipLine()
				leading_blanks = true
				break

			} else if !single && c == '\\' {
				// It is an escape sequence.
				code_length := 0

				// Check the escape character.
				switch parser.peek(1) {
				case '0':
					s = append(s, 0)
				case 'a':
					s = append(s, '\x07')
				case 'b':
					s = append(s, '\x08')
				case 't', '\t':
					s = append(s, '\x09')
				case 'n':
					s = append(s, '\x0A')
				case 'v':
					s = append(s, '\x0B')
				case 'f':
					s = append(s, '\x0C')
				case 'r':
					s = append(s, '\x0D')
				case 'e':
					s = append(s, '\x1B')
				case ' ':
					s = append(s, '\x20')
				case '"':
					s = append(s, '"')
				case '/':
					s = append(s, '/')
				case '\\':
					s = append(s, '\\')
				case 'N': // NEL (#x85)
					s = utf8.AppendRune(s, '\u0085')
				case '_': // #xA0
					s = utf8.AppendRune(s, '\u00A0')
				case 'L': // LS (#x2028)
					s = utf8.AppendRune(s, '\u2028')
				case 'P': // PS (#x2029)
					s = utf8.AppendRune(s, '\u2029')
				case 'x':
					code_length = 2
				case 'u':
					code_length = 4
				case 'U':
					code_length = 8
				default:
					parser.skip()
					return parser.formatScannerError(InvalidEscape,
						"while parsing a quoted scalar", start_mark,
						"found unknown escape character")
				}

				parser.input.Consume(2)

				// Consume an arbitrary escape code. The digits are read one
				// at a time so the lookahead stays bounded.
				if code_length > 0 {
					var value int
					for k := 0; k < code_length; k++ {
						if !isHex(parser.peek(0)) {
							return parser.formatScannerError(InvalidEscape,
								"while parsing a quoted scalar", start_mark,
								"did not find expected hexdecimal number")
						}
						value = (value << 4) + asHex(parser.peek(0))
						parser.skip()
					}

					// Check the value and write the character.
					if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
						return parser.formatScannerError(InvalidEscape,
							"while parsing a quoted scalar", start_mark,
							"found invalid Unicode character escape code")
					}
					s = utf8.AppendRune(s, rune(value))
				}
			} else {
				// It is a non-escaped non-blank character.
				s = parser.read(s)
			}
		}

		// Check if we are at the end of the scalar.
		if single && parser.peek(0) == '\'' || !single && parser.peek(0) == '"' {
			break
		}

		// Consume blank characters.
		for isBlank(parser.peek(0)) || isBreak(parser.peek(0)) {
			if isBlank(parser.peek(0)) {
				// Consume a space or a tab character.
				if !leading_blanks {
					whitespaces = parser.read(whitespaces)
				} else {
					parser.skip()
				}
			} else {
				// Check if it is a first line break.
				if !leading_blanks {
					whitespaces = whitespaces[:0]
					leading_break = parser.readLine(leading_break)
					leading_blanks = true
				} else {
					trailing_breaks = parser.readLine(trailing_breaks)
				}
			}
		}

		// Join the whitespaces or fold line breaks.
		if leading_blanks {
			// Do we need to fold line breaks?
			if len(leading_break) > 0 && leading_break[0] == '\n' {
				if len(trailing_breaks) == 0 {
					s = append(s, ' ')
				} else {
					s = append(s, trailing_breaks...)
				}
			} else {
				s = append(s, leading_break...)
				s = append(s, trailing_breaks...)
			}
			trailing_breaks = trailing_breaks[:0]
			leading_break = leading_break[:0]
		} else {
			s = append(s, whitespaces...)
			whitespaces = whitespaces[:0]
		}
	}

	// Eat the right quote.
	parser.skip()
	end_mark := parser.mark()

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     string(s),
		Style:     SINGLE_QUOTED_SCALAR_STYLE,
	}
	if !single {
		token.Style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	return nil
}

// Scan a plain scalar.
func (parser *Parser) scanPlainScalar(token *Token) error {
	var s, leading_break, trailing_breaks, whitespaces []byte
	var leading_blanks bool
	indent := parser.indent + 1

	start_mark := parser.mark()
	end_mark := parser.mark()

	// Consume the content of the plain scalar.
	for {
		// Check for a document indicator.
		if parser.isDocumentIndicator('-') || parser.isDocumentIndicator('.') {
			break
		}

		// Check for a comment.
		if parser.peek(0) == '#' {
			break
		}

		// Consume non-blank characters.
		for !isBlankOrZero(parser.peek(0)) {
			c := parser.peek(0)

			// Check for indicators that may end a plain scalar.
			if c == ':' && (isBlankOrZero(parser.peek(1)) || parser.flow_level > 0 && isFlowIndicator(parser.peek(1))) ||
				parser.flow_level > 0 && isFlowIndicator(c) {
				break
			}

			// Check if we need to join whitespaces and breaks.
			if leading_blanks || len(whitespaces) > 0 {
				if leading_blanks {
					// Do we need to fold line breaks?
					if leading_break[0] == '\n' {
						if len(trailing_breaks) == 0 {
							s = append(s, ' ')
						} else {
							s = append(s, trailing_breaks...)
						}
					} else {
						s = append(s, leading_break...)
						s = append(s, trailing_breaks...)
					}
					trailing_breaks = trailing_breaks[:0]
					leading_break = leading_break[:0]
					leading_blanks = false
				} else {
					s = append(s, whitespaces...)
					whitespaces = whitespaces[:0]
				}
			}

			// Copy the character.
			s = parser.read(s)

			end_mark = parser.mark()
		}

		// Is it the end?
		if !(isBlank(parser.peek(0)) || isBreak(parser.peek(0))) {
			break
		}

		// Consume blank characters.
		for isBlank(parser.peek(0)) || isBreak(parser.peek(0)) {
			if isBlank(parser.peek(0)) {
				// Check for tab characters that abuse indentation.
				if leading_blanks && parser.mark().Column < indent && isTab(parser.peek(0)) {
					return parser.formatScannerError(IndentationError,
						"while scanning a plain scalar", start_mark,
						"found a tab character that violates indentation")
				}

				// Consume a space or a tab character.
				if !leading_blanks {
					whitespaces = parser.read(whitespaces)
				} else {
					parser.skip()
				}
			} else {
				// Check if it is a first line break.
				if !leading_blanks {
					whitespaces = whitespaces[:0]
					leading_break = parser.readLine(leading_break)
					leading_blanks = true
				} else {
					trailing_breaks = parser.readLine(trailing_breaks)
				}
			}
		}

		// Check indentation level.
		if parser.flow_level == 0 && parser.mark().Column < indent {
			break
		}
	}

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     string(s),
		Style:     PLAIN_SCALAR_STYLE,
	}

	// Note that we change the 'simple_key_allowed' flag.
	if leading_blanks {
		parser.simple_key_allowed = true
	}
	return nil
}
