// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Emitter stage: Writes an event stream as YAML text.
// The emitter picks scalar styles and indentation; it never writes comments
// and always produces UTF-8 with "\n" line breaks.

package libyaml

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const output_buffer_size = 512

type EmitterState int

// The emitter states.
const (
	// Expect STREAM-START.
	EMIT_STREAM_START_STATE EmitterState = iota

	EMIT_FIRST_DOCUMENT_START_STATE       // Expect the first DOCUMENT-START or STREAM-END.
	EMIT_DOCUMENT_START_STATE             // Expect DOCUMENT-START or STREAM-END.
	EMIT_DOCUMENT_CONTENT_STATE           // Expect the content of a document.
	EMIT_DOCUMENT_END_STATE               // Expect DOCUMENT-END.
	EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE   // Expect the first item of a flow sequence.
	EMIT_FLOW_SEQUENCE_ITEM_STATE         // Expect an item of a flow sequence.
	EMIT_FLOW_MAPPING_FIRST_KEY_STATE     // Expect the first key of a flow mapping.
	EMIT_FLOW_MAPPING_KEY_STATE           // Expect a key of a flow mapping.
	EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE  // Expect a value for a simple key of a flow mapping.
	EMIT_FLOW_MAPPING_VALUE_STATE         // Expect a value of a flow mapping.
	EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE  // Expect the first item of a block sequence.
	EMIT_BLOCK_SEQUENCE_ITEM_STATE        // Expect an item of a block sequence.
	EMIT_BLOCK_MAPPING_FIRST_KEY_STATE    // Expect the first key of a block mapping.
	EMIT_BLOCK_MAPPING_KEY_STATE          // Expect the key of a block mapping.
	EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE // Expect a value for a simple key of a block mapping.
	EMIT_BLOCK_MAPPING_VALUE_STATE        // Expect a value of a block mapping.
	EMIT_END_STATE                        // Expect nothing.
)

// Emitter holds all information about the current state of the emitter.
type Emitter struct {
	err error

	out    io.Writer // Where flushed output goes.
	buffer []byte    // Pending output.

	// Emitter stuff

	BestIndent int  // The number of indentation spaces.
	best_width int  // The preferred width of the output lines.
	unicode    bool // Allow unescaped non-ASCII characters?

	state  EmitterState   // The current emitter state.
	states []EmitterState // The stack of states.

	events      []Event // The event queue.
	events_head int     // The head of the event queue.

	indents []int // The stack of indentation levels.

	tag_directives []TagDirective // The list of tag directives.

	indent int // The current indentation level.

	flow_level int // The current flow level.

	root_context       bool // Is it the document root context?
	sequence_context   bool // Is it a sequence context?
	mapping_context    bool // Is it a mapping context?
	simple_key_context bool // Is it a simple mapping key context?

	line       int  // The current line.
	column     int  // The current column.
	whitespace bool // If the last character was a whitespace?
	indention  bool // If the last character was an indentation character (' ', '-', '?', ':')?
	OpenEnded  bool // If an explicit document end is required?

	// Anchor analysis.
	anchor_data struct {
		anchor string // The anchor value.
		alias  bool   // Is it an alias?
	}

	// Tag analysis.
	tag_data struct {
		handle string // The tag handle.
		suffix string // The tag suffix.
	}

	// Scalar analysis.
	scalar_data struct {
		value                 string      // The scalar value.
		multiline             bool        // Does the scalar contain line breaks?
		flow_plain_allowed    bool        // Can the scalar be expressed in the flow plain style?
		block_plain_allowed   bool        // Can the scalar be expressed in the block plain style?
		single_quoted_allowed bool        // Can the scalar be expressed in the single quoted style?
		block_allowed         bool        // Can the scalar be expressed in the literal or folded styles?
		style                 ScalarStyle // The output style.
	}
}

// runeAt returns the character starting at byte offset i of s, or 0 past
// the end.
func runeAt(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// Write the buffered output to the writer.
func (emitter *Emitter) flush() bool {
	if len(emitter.buffer) == 0 {
		return true
	}
	if emitter.out != nil {
		if _, err := emitter.out.Write(emitter.buffer); err != nil {
			emitter.err = WriterError{Err: err}
			return false
		}
	}
	emitter.buffer = emitter.buffer[:0]
	return true
}

// Flush the buffer if needed.
func (emitter *Emitter) flushIfNeeded() bool {
	if len(emitter.buffer) >= output_buffer_size {
		return emitter.flush()
	}
	return true
}

// Put a character to the output buffer.
func (emitter *Emitter) put(value byte) bool {
	if !emitter.flushIfNeeded() {
		return false
	}
	emitter.buffer = append(emitter.buffer, value)
	emitter.column++
	return true
}

// Put a line break to the output buffer.
func (emitter *Emitter) putLineBreak() bool {
	if !emitter.flushIfNeeded() {
		return false
	}
	emitter.buffer = append(emitter.buffer, '\n')
	emitter.column = 0
	emitter.line++
	emitter.indention = true
	return true
}

// Copy a character from a string into buffer.
func (emitter *Emitter) write(s string, i *int) bool {
	if !emitter.flushIfNeeded() {
		return false
	}
	_, w := utf8.DecodeRuneInString(s[*i:])
	emitter.buffer = append(emitter.buffer, s[*i:*i+w]...)
	emitter.column++
	*i += w
	return true
}

// Write a whole string into buffer.
func (emitter *Emitter) writeAll(s string) bool {
	for i := 0; i < len(s); {
		if !emitter.write(s, &i) {
			return false
		}
	}
	return true
}

// Copy a line break character from a string into buffer.
func (emitter *Emitter) writeLineBreak(s string, i *int) bool {
	if !emitter.putLineBreak() {
		return false
	}
	*i++
	return true
}

// Set an emitter error and return false.
func (emitter *Emitter) setEmitterError(problem string) bool {
	emitter.err = EmitterError{Message: problem}
	return false
}

// Emit an event.
func (emitter *Emitter) Emit(event *Event) error {
	if emitter.err != nil {
		return emitter.err
	}
	emitter.events = append(emitter.events, *event)
	for !emitter.needMoreEvents() {
		event := &emitter.events[emitter.events_head]
		if !emitter.analyzeEvent(event) || !emitter.stateMachine(event) {
			return emitter.err
		}
		emitter.events[emitter.events_head] = Event{}
		emitter.events_head++
	}
	if emitter.events_head == len(emitter.events) {
		emitter.events = emitter.events[:0]
		emitter.events_head = 0
	}
	return nil
}

// Check if we need to accumulate more events before emitting.
//
// We accumulate extra
//   - 1 event for DOCUMENT-START
//   - 2 events for SEQUENCE-START
//   - 3 events for MAPPING-START
func (emitter *Emitter) needMoreEvents() bool {
	if emitter.events_head == len(emitter.events) {
		return true
	}
	var accumulate int
	switch emitter.events[emitter.events_head].Type {
	case DOCUMENT_START_EVENT:
		accumulate = 1
	case SEQUENCE_START_EVENT:
		accumulate = 2
	case MAPPING_START_EVENT:
		accumulate = 3
	default:
		return false
	}
	if len(emitter.events)-emitter.events_head > accumulate {
		return false
	}
	var level int
	for i := emitter.events_head; i < len(emitter.events); i++ {
		switch emitter.events[i].Type {
		case STREAM_START_EVENT, DOCUMENT_START_EVENT, SEQUENCE_START_EVENT, MAPPING_START_EVENT:
			level++
		case STREAM_END_EVENT, DOCUMENT_END_EVENT, SEQUENCE_END_EVENT, MAPPING_END_EVENT:
			level--
		}
		if level == 0 {
			return false
		}
	}
	return true
}

// Append a directive to the directives stack.
func (emitter *Emitter) appendTagDirective(value TagDirective) {
	for i := range emitter.tag_directives {
		if value.handle == emitter.tag_directives[i].handle {
			return
		}
	}
	emitter.tag_directives = append(emitter.tag_directives, value)
}

// Increase the indentation level.
func (emitter *Emitter) increaseIndent(flow, indentless bool) {
	emitter.indents = append(emitter.indents, emitter.indent)
	if emitter.indent < 0 {
		if flow {
			emitter.indent = emitter.BestIndent
		} else {
			emitter.indent = 0
		}
	} else if !indentless {
		if emitter.states[len(emitter.states)-1] == EMIT_BLOCK_SEQUENCE_ITEM_STATE {
			// The first indent inside a sequence will just skip the "- " indicator.
			emitter.indent += 2
		} else {
			// Everything else aligns to the chosen indentation.
			emitter.indent = emitter.BestIndent * ((emitter.indent + emitter.BestIndent) / emitter.BestIndent)
		}
	}
}

func (emitter *Emitter) popIndent() {
	emitter.indent = emitter.indents[len(emitter.indents)-1]
	emitter.indents = emitter.indents[:len(emitter.indents)-1]
}

func (emitter *Emitter) popState() {
	emitter.state = emitter.states[len(emitter.states)-1]
	emitter.states = emitter.states[:len(emitter.states)-1]
}

// State dispatcher.
func (emitter *Emitter) stateMachine(event *Event) bool {
	switch emitter.state {
	case EMIT_STREAM_START_STATE:
		return emitter.emitStreamStart(event)

	case EMIT_FIRST_DOCUMENT_START_STATE:
		return emitter.emitDocumentStart(event, true)

	case EMIT_DOCUMENT_START_STATE:
		return emitter.emitDocumentStart(event, false)

	case EMIT_DOCUMENT_CONTENT_STATE:
		return emitter.emitDocumentContent(event)

	case EMIT_DOCUMENT_END_STATE:
		return emitter.emitDocumentEnd(event)

	case EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE:
		return emitter.emitFlowSequenceItem(event, true)

	case EMIT_FLOW_SEQUENCE_ITEM_STATE:
		return emitter.emitFlowSequenceItem(event, false)

	case EMIT_FLOW_MAPPING_FIRST_KEY_STATE:
		return emitter.emitFlowMappingKey(event, true)

	case EMIT_FLOW_MAPPING_KEY_STATE:
		return emitter.emitFlowMappingKey(event, false)

	case EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE:
		return emitter.emitFlowMappingValue(event, true)

	case EMIT_FLOW_MAPPING_VALUE_STATE:
		return emitter.emitFlowMappingValue(event, false)

	case EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE:
		return emitter.emitBlockSequenceItem(event, true)

	case EMIT_BLOCK_SEQUENCE_ITEM_STATE:
		return emitter.emitBlockSequenceItem(event, false)

	case EMIT_BLOCK_MAPPING_FIRST_KEY_STATE:
		return emitter.emitBlockMappingKey(event, true)

	case EMIT_BLOCK_MAPPING_KEY_STATE:
		return emitter.emitBlockMappingKey(event, false)

	case EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE:
		return emitter.emitBlockMappingValue(event, true)

	case EMIT_BLOCK_MAPPING_VALUE_STATE:
		return emitter.emitBlockMappingValue(event, false)

	case EMIT_END_STATE:
		return emitter.setEmitterError("expected nothing after STREAM-END")
	}
	return emitter.setEmitterError(fmt.Sprintf("invalid emitter state %d", emitter.state))
}

// Expect STREAM-START.
func (emitter *Emitter) emitStreamStart(event *Event) bool {
	if event.Type != STREAM_START_EVENT {
		return emitter.setEmitterError("expected STREAM-START")
	}
	if emitter.BestIndent < 2 || emitter.BestIndent > 9 {
		emitter.BestIndent = 2
	}
	if emitter.best_width >= 0 && emitter.best_width <= emitter.BestIndent*2 {
		emitter.best_width = 80
	}
	if emitter.best_width < 0 {
		emitter.best_width = 1<<31 - 1
	}

	emitter.indent = -1
	emitter.line = 0
	emitter.column = 0
	emitter.whitespace = true
	emitter.indention = true

	emitter.state = EMIT_FIRST_DOCUMENT_START_STATE
	return true
}

// Expect DOCUMENT-START or STREAM-END.
func (emitter *Emitter) emitDocumentStart(event *Event, first bool) bool {
	if event.Type == DOCUMENT_START_EVENT {
		for i := range default_tag_directives {
			emitter.appendTagDirective(default_tag_directives[i])
		}

		implicit := event.Implicit
		if !first {
			implicit = false
		}
		if emitter.checkEmptyDocument() {
			implicit = false
		}
		if !implicit {
			if !emitter.writeIndent() {
				return false
			}
			if !emitter.writeIndicator("---", true, false, false) {
				return false
			}
			if !emitter.writeIndent() {
				return false
			}
		}

		emitter.state = EMIT_DOCUMENT_CONTENT_STATE
		return true
	}

	if event.Type == STREAM_END_EVENT {
		if emitter.OpenEnded {
			if !emitter.writeIndicator("...", true, false, false) {
				return false
			}
			if !emitter.writeIndent() {
				return false
			}
		}
		if !emitter.flush() {
			return false
		}
		emitter.state = EMIT_END_STATE
		return true
	}

	return emitter.setEmitterError("expected DOCUMENT-START or STREAM-END")
}

// Expect the root node.
func (emitter *Emitter) emitDocumentContent(event *Event) bool {
	emitter.states = append(emitter.states, EMIT_DOCUMENT_END_STATE)
	return emitter.emitNode(event, true, false, false, false)
}

// Expect DOCUMENT-END.
func (emitter *Emitter) emitDocumentEnd(event *Event) bool {
	if event.Type != DOCUMENT_END_EVENT {
		return emitter.setEmitterError("expected DOCUMENT-END")
	}
	if !emitter.writeIndent() {
		return false
	}
	if !event.Implicit {
		if !emitter.writeIndicator("...", true, false, false) {
			return false
		}
		if !emitter.writeIndent() {
			return false
		}
	}
	if !emitter.flush() {
		return false
	}
	emitter.state = EMIT_DOCUMENT_START_STATE
	emitter.tag_directives = emitter.tag_directives[:0]
	return true
}

// Expect a flow item node.
func (emitter *Emitter) emitFlowSequenceItem(event *Event, first bool) bool {
	if first {
		if !emitter.writeIndicator("[", true, true, false) {
			return false
		}
		emitter.increaseIndent(true, false)
		emitter.flow_level++
	}

	if event.Type == SEQUENCE_END_EVENT {
		emitter.flow_level--
		emitter.popIndent()
		if emitter.column == 0 {
			if !emitter.writeIndent() {
				return false
			}
		}
		if !emitter.writeIndicator("]", false, false, false) {
			return false
		}
		emitter.popState()
		return true
	}

	if !first {
		if !emitter.writeIndicator(",", false, false, false) {
			return false
		}
	}
	if emitter.column == 0 || emitter.column > emitter.best_width {
		if !emitter.writeIndent() {
			return false
		}
	}
	emitter.states = append(emitter.states, EMIT_FLOW_SEQUENCE_ITEM_STATE)
	return emitter.emitNode(event, false, true, false, false)
}

// Expect a flow key node.
func (emitter *Emitter) emitFlowMappingKey(event *Event, first bool) bool {
	if first {
		if !emitter.writeIndicator("{", true, true, false) {
			return false
		}
		emitter.increaseIndent(true, false)
		emitter.flow_level++
	}

	if event.Type == MAPPING_END_EVENT {
		emitter.flow_level--
		emitter.popIndent()
		if !emitter.writeIndicator("}", false, false, false) {
			return false
		}
		emitter.popState()
		return true
	}

	if !first {
		if !emitter.writeIndicator(",", false, false, false) {
			return false
		}
	}
	if emitter.column == 0 || emitter.column > emitter.best_width {
		if !emitter.writeIndent() {
			return false
		}
	}

	if emitter.checkSimpleKey() {
		emitter.states = append(emitter.states, EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE)
		if !emitter.emitNode(event, false, false, true, true) {
			return false
		}
		if event.Type == ALIAS_EVENT {
			// ':' is a valid anchor character.
			return emitter.put(' ')
		}
		return true
	}
	if !emitter.writeIndicator("?", true, false, false) {
		return false
	}
	emitter.states = append(emitter.states, EMIT_FLOW_MAPPING_VALUE_STATE)
	return emitter.emitNode(event, false, false, true, false)
}

// Expect a flow value node.
func (emitter *Emitter) emitFlowMappingValue(event *Event, simple bool) bool {
	if simple {
		if !emitter.writeIndicator(":", false, false, false) {
			return false
		}
	} else {
		if emitter.column > emitter.best_width {
			if !emitter.writeIndent() {
				return false
			}
		}
		if !emitter.writeIndicator(":", true, false, false) {
			return false
		}
	}
	emitter.states = append(emitter.states, EMIT_FLOW_MAPPING_KEY_STATE)
	return emitter.emitNode(event, false, false, true, false)
}

// Expect a block item node.
func (emitter *Emitter) emitBlockSequenceItem(event *Event, first bool) bool {
	if first {
		emitter.increaseIndent(false, false)
	}
	if event.Type == SEQUENCE_END_EVENT {
		emitter.popIndent()
		emitter.popState()
		return true
	}
	if !emitter.writeIndent() {
		return false
	}
	if !emitter.writeIndicator("-", true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, EMIT_BLOCK_SEQUENCE_ITEM_STATE)
	return emitter.emitNode(event, false, true, false, false)
}

// Expect a block key node.
func (emitter *Emitter) emitBlockMappingKey(event *Event, first bool) bool {
	if first {
		emitter.increaseIndent(false, false)
	}
	if event.Type == MAPPING_END_EVENT {
		emitter.popIndent()
		emitter.popState()
		return true
	}
	if !emitter.writeIndent() {
		return false
	}
	if emitter.checkSimpleKey() {
		emitter.states = append(emitter.states, EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE)
		if !emitter.emitNode(event, false, false, true, true) {
			return false
		}
		if event.Type == ALIAS_EVENT {
			// make sure there's a space after the alias
			return emitter.put(' ')
		}
		return true
	}
	if !emitter.writeIndicator("?", true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, EMIT_BLOCK_MAPPING_VALUE_STATE)
	return emitter.emitNode(event, false, false, true, false)
}

// Expect a block value node.
func (emitter *Emitter) emitBlockMappingValue(event *Event, simple bool) bool {
	if simple {
		if !emitter.writeIndicator(":", false, false, false) {
			return false
		}
	} else {
		if !emitter.writeIndent() {
			return false
		}
		if !emitter.writeIndicator(":", true, false, true) {
			return false
		}
	}
	emitter.states = append(emitter.states, EMIT_BLOCK_MAPPING_KEY_STATE)
	return emitter.emitNode(event, false, false, true, false)
}

// Expect a node.
func (emitter *Emitter) emitNode(event *Event,
	root bool, sequence bool, mapping bool, simple_key bool,
) bool {
	emitter.root_context = root
	emitter.sequence_context = sequence
	emitter.mapping_context = mapping
	emitter.simple_key_context = simple_key

	switch event.Type {
	case ALIAS_EVENT:
		return emitter.emitAlias()
	case SCALAR_EVENT:
		return emitter.emitScalar(event)
	case SEQUENCE_START_EVENT:
		return emitter.emitSequenceStart(event)
	case MAPPING_START_EVENT:
		return emitter.emitMappingStart(event)
	default:
		return emitter.setEmitterError(
			fmt.Sprintf("expected SCALAR, SEQUENCE-START, MAPPING-START, or ALIAS, but got %v", event.Type))
	}
}

// Expect ALIAS.
func (emitter *Emitter) emitAlias() bool {
	if !emitter.processAnchor() {
		return false
	}
	emitter.popState()
	return true
}

// Expect SCALAR.
func (emitter *Emitter) emitScalar(event *Event) bool {
	if !emitter.selectScalarStyle(event) {
		return false
	}
	if !emitter.processAnchor() {
		return false
	}
	if !emitter.processTag() {
		return false
	}
	emitter.increaseIndent(true, false)
	if !emitter.processScalar() {
		return false
	}
	emitter.popIndent()
	emitter.popState()
	return true
}

// Expect SEQUENCE-START.
func (emitter *Emitter) emitSequenceStart(event *Event) bool {
	if !emitter.processAnchor() {
		return false
	}
	if !emitter.processTag() {
		return false
	}
	if emitter.flow_level > 0 || event.SequenceStyle() == FLOW_SEQUENCE_STYLE ||
		emitter.checkEmptySequence() {
		emitter.state = EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	} else {
		emitter.state = EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	}
	return true
}

// Expect MAPPING-START.
func (emitter *Emitter) emitMappingStart(event *Event) bool {
	if !emitter.processAnchor() {
		return false
	}
	if !emitter.processTag() {
		return false
	}
	if emitter.flow_level > 0 || event.MappingStyle() == FLOW_MAPPING_STYLE ||
		emitter.checkEmptyMapping() {
		emitter.state = EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	} else {
		emitter.state = EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	}
	return true
}

// Check if the document content is an empty plain scalar, which needs an
// explicit document start to be read back.
func (emitter *Emitter) checkEmptyDocument() bool {
	if len(emitter.events)-emitter.events_head < 2 {
		return false
	}
	event := &emitter.events[emitter.events_head+1]
	return event.Type == SCALAR_EVENT && event.Value == "" && event.Implicit
}

// Check if the next events represent an empty sequence.
func (emitter *Emitter) checkEmptySequence() bool {
	if len(emitter.events)-emitter.events_head < 2 {
		return false
	}
	return emitter.events[emitter.events_head].Type == SEQUENCE_START_EVENT &&
		emitter.events[emitter.events_head+1].Type == SEQUENCE_END_EVENT
}

// Check if the next events represent an empty mapping.
func (emitter *Emitter) checkEmptyMapping() bool {
	if len(emitter.events)-emitter.events_head < 2 {
		return false
	}
	return emitter.events[emitter.events_head].Type == MAPPING_START_EVENT &&
		emitter.events[emitter.events_head+1].Type == MAPPING_END_EVENT
}

// Check if the next node can be expressed as a simple key.
func (emitter *Emitter) checkSimpleKey() bool {
	length := 0
	switch emitter.events[emitter.events_head].Type {
	case ALIAS_EVENT:
		length += len(emitter.anchor_data.anchor)
	case SCALAR_EVENT:
		if emitter.scalar_data.multiline {
			return false
		}
		length += len(emitter.anchor_data.anchor) +
			len(emitter.tag_data.handle) +
			len(emitter.tag_data.suffix) +
			len(emitter.scalar_data.value)
	case SEQUENCE_START_EVENT:
		if !emitter.checkEmptySequence() {
			return false
		}
		length += len(emitter.anchor_data.anchor) +
			len(emitter.tag_data.handle) +
			len(emitter.tag_data.suffix)
	case MAPPING_START_EVENT:
		if !emitter.checkEmptyMapping() {
			return false
		}
		length += len(emitter.anchor_data.anchor) +
			len(emitter.tag_data.handle) +
			len(emitter.tag_data.suffix)
	default:
		return false
	}
	return length <= 128
}

// Determine an acceptable scalar style.
func (emitter *Emitter) selectScalarStyle(event *Event) bool {
	no_tag := emitter.tag_data.handle == "" && emitter.tag_data.suffix == ""
	if no_tag && !event.Implicit && !event.quotedImplicit {
		return emitter.setEmitterError("neither tag nor implicit flags are specified")
	}

	style := event.ScalarStyle()
	if style == ANY_SCALAR_STYLE {
		style = PLAIN_SCALAR_STYLE
	}
	if emitter.simple_key_context && emitter.scalar_data.multiline {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}

	if style == PLAIN_SCALAR_STYLE {
		if emitter.flow_level > 0 && !emitter.scalar_data.flow_plain_allowed ||
			emitter.flow_level == 0 && !emitter.scalar_data.block_plain_allowed {
			style = SINGLE_QUOTED_SCALAR_STYLE
		}
		if emitter.scalar_data.value == "" && (emitter.flow_level > 0 || emitter.simple_key_context) {
			style = SINGLE_QUOTED_SCALAR_STYLE
		}
		if no_tag && !event.Implicit {
			style = SINGLE_QUOTED_SCALAR_STYLE
		}
	}
	if style == SINGLE_QUOTED_SCALAR_STYLE {
		if !emitter.scalar_data.single_quoted_allowed {
			style = DOUBLE_QUOTED_SCALAR_STYLE
		}
	}
	if style == LITERAL_SCALAR_STYLE || style == FOLDED_SCALAR_STYLE {
		if !emitter.scalar_data.block_allowed || emitter.flow_level > 0 || emitter.simple_key_context {
			style = DOUBLE_QUOTED_SCALAR_STYLE
		}
	}

	// A quoted scalar of a type other than string keeps its tag.
	if no_tag && !event.quotedImplicit && style != PLAIN_SCALAR_STYLE {
		if event.Tag == "" {
			return emitter.setEmitterError("cannot quote a scalar without a tag")
		}
		if !emitter.analyzeTag(event.Tag) {
			return false
		}
	}
	emitter.scalar_data.style = style
	return true
}

// Write an anchor.
func (emitter *Emitter) processAnchor() bool {
	if emitter.anchor_data.anchor == "" {
		return true
	}
	c := "&"
	if emitter.anchor_data.alias {
		c = "*"
	}
	if !emitter.writeIndicator(c, true, false, false) {
		return false
	}
	return emitter.writeAnchor(emitter.anchor_data.anchor)
}

// Write a tag.
func (emitter *Emitter) processTag() bool {
	if emitter.tag_data.handle == "" && emitter.tag_data.suffix == "" {
		return true
	}
	if emitter.tag_data.handle != "" {
		if !emitter.writeTagHandle(emitter.tag_data.handle) {
			return false
		}
		if emitter.tag_data.suffix != "" {
			if !emitter.writeTagContent(emitter.tag_data.suffix, false) {
				return false
			}
		}
	} else {
		if !emitter.writeIndicator("!<", true, false, false) {
			return false
		}
		if !emitter.writeTagContent(emitter.tag_data.suffix, false) {
			return false
		}
		if !emitter.writeIndicator(">", false, false, false) {
			return false
		}
	}
	return true
}

// Write a scalar.
func (emitter *Emitter) processScalar() bool {
	switch emitter.scalar_data.style {
	case PLAIN_SCALAR_STYLE:
		return emitter.writePlainScalar(emitter.scalar_data.value, !emitter.simple_key_context)

	case SINGLE_QUOTED_SCALAR_STYLE:
		return emitter.writeSingleQuotedScalar(emitter.scalar_data.value, !emitter.simple_key_context)

	case DOUBLE_QUOTED_SCALAR_STYLE:
		return emitter.writeDoubleQuotedScalar(emitter.scalar_data.value, !emitter.simple_key_context)

	case LITERAL_SCALAR_STYLE:
		return emitter.writeLiteralScalar(emitter.scalar_data.value)

	case FOLDED_SCALAR_STYLE:
		return emitter.writeFoldedScalar(emitter.scalar_data.value)
	}
	return emitter.setEmitterError(fmt.Sprintf("unknown scalar style %v", emitter.scalar_data.style))
}

// Check if an anchor is valid.
func (emitter *Emitter) analyzeAnchor(anchor string, alias bool) bool {
	if anchor == "" {
		problem := "anchor value must not be empty"
		if alias {
			problem = "alias value must not be empty"
		}
		return emitter.setEmitterError(problem)
	}
	for _, r := range anchor {
		if !isAnchorChar(r) {
			problem := "anchor value must contain valid characters only"
			if alias {
				problem = "alias value must contain valid characters only"
			}
			return emitter.setEmitterError(problem)
		}
	}
	emitter.anchor_data.anchor = anchor
	emitter.anchor_data.alias = alias
	return true
}

// Check if a tag is valid.
func (emitter *Emitter) analyzeTag(tag string) bool {
	if tag == "" {
		return emitter.setEmitterError("tag value must not be empty")
	}
	for i := range emitter.tag_directives {
		tag_directive := &emitter.tag_directives[i]
		if strings.HasPrefix(tag, tag_directive.prefix) && len(tag) > len(tag_directive.prefix) {
			emitter.tag_data.handle = tag_directive.handle
			emitter.tag_data.suffix = tag[len(tag_directive.prefix):]
			return true
		}
	}
	emitter.tag_data.suffix = tag
	return true
}

// Check if a scalar is valid.
func (emitter *Emitter) analyzeScalar(value string) bool {
	var block_indicators,
		flow_indicators,
		line_breaks,
		special_characters,
		tab_characters,

		leading_space,
		leading_break,
		trailing_space,
		trailing_break,
		break_space,
		space_break,

		preceded_by_whitespace,
		followed_by_whitespace,
		previous_space,
		previous_break bool

	emitter.scalar_data.value = value

	if value == "" {
		emitter.scalar_data.multiline = false
		emitter.scalar_data.flow_plain_allowed = false
		emitter.scalar_data.block_plain_allowed = true
		emitter.scalar_data.single_quoted_allowed = true
		emitter.scalar_data.block_allowed = false
		return true
	}

	if strings.HasPrefix(value, "---") || strings.HasPrefix(value, "...") {
		block_indicators = true
		flow_indicators = true
	}

	preceded_by_whitespace = true
	for i, w := 0, 0; i < len(value); i += w {
		var r rune
		r, w = utf8.DecodeRuneInString(value[i:])
		followed_by_whitespace = i+w >= len(value) || isBlank(runeAt(value, i+w))

		if i == 0 {
			switch r {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				flow_indicators = true
				block_indicators = true
			case '?', ':':
				flow_indicators = true
				if followed_by_whitespace {
					block_indicators = true
				}
			case '-':
				if followed_by_whitespace {
					flow_indicators = true
					block_indicators = true
				}
			}
		} else {
			switch r {
			case ',', '?', '[', ']', '{', '}':
				flow_indicators = true
			case ':':
				flow_indicators = true
				if followed_by_whitespace {
					block_indicators = true
				}
			case '#':
				if preceded_by_whitespace {
					flow_indicators = true
					block_indicators = true
				}
			}
		}

		if r == '\t' {
			tab_characters = true
		} else if !isPrintable(r) || !isASCII(r) && !emitter.unicode {
			// '\r' lands here and is always escaped, as it would be read
			// back as a line break.
			special_characters = true
		}
		if isSpace(r) {
			if i == 0 {
				leading_space = true
			}
			if i+w == len(value) {
				trailing_space = true
			}
			if previous_break {
				break_space = true
			}
			previous_space = true
			previous_break = false
		} else if r == '\n' {
			line_breaks = true
			if i == 0 {
				leading_break = true
			}
			if i+w == len(value) {
				trailing_break = true
			}
			if previous_space {
				space_break = true
			}
			previous_space = false
			previous_break = true
		} else {
			previous_space = false
			previous_break = false
		}

		preceded_by_whitespace = isBlankOrZero(r)
	}

	emitter.scalar_data.multiline = line_breaks
	emitter.scalar_data.flow_plain_allowed = true
	emitter.scalar_data.block_plain_allowed = true
	emitter.scalar_data.single_quoted_allowed = true
	emitter.scalar_data.block_allowed = true

	if leading_space || leading_break || trailing_space || trailing_break {
		emitter.scalar_data.flow_plain_allowed = false
		emitter.scalar_data.block_plain_allowed = false
	}
	if trailing_space {
		emitter.scalar_data.block_allowed = false
	}
	if break_space {
		emitter.scalar_data.flow_plain_allowed = false
		emitter.scalar_data.block_plain_allowed = false
		emitter.scalar_data.single_quoted_allowed = false
	}
	if space_break || tab_characters || special_characters {
		emitter.scalar_data.flow_plain_allowed = false
		emitter.scalar_data.block_plain_allowed = false
		emitter.scalar_data.single_quoted_allowed = false
	}
	if space_break || special_characters {
		emitter.scalar_data.block_allowed = false
	}
	if line_breaks {
		emitter.scalar_data.flow_plain_allowed = false
		emitter.scalar_data.block_plain_allowed = false
	}
	if flow_indicators {
		emitter.scalar_data.flow_plain_allowed = false
	}
	if block_indicators {
		emitter.scalar_data.block_plain_allowed = false
	}
	return true
}

// Check if the event data is valid.
func (emitter *Emitter) analyzeEvent(event *Event) bool {
	emitter.anchor_data.anchor = ""
	emitter.tag_data.handle = ""
	emitter.tag_data.suffix = ""
	emitter.scalar_data.value = ""

	switch event.Type {
	case ALIAS_EVENT:
		if !emitter.analyzeAnchor(event.Anchor, true) {
			return false
		}

	case SCALAR_EVENT:
		if event.Anchor != "" {
			if !emitter.analyzeAnchor(event.Anchor, false) {
				return false
			}
		}
		if event.Tag != "" && !event.Implicit && !event.quotedImplicit {
			if !emitter.analyzeTag(event.Tag) {
				return false
			}
		}
		if !emitter.analyzeScalar(event.Value) {
			return false
		}

	case SEQUENCE_START_EVENT, MAPPING_START_EVENT:
		if event.Anchor != "" {
			if !emitter.analyzeAnchor(event.Anchor, false) {
				return false
			}
		}
		if event.Tag != "" && !event.Implicit {
			if !emitter.analyzeTag(event.Tag) {
				return false
			}
		}
	}
	return true
}

func (emitter *Emitter) writeIndent() bool {
	indent := emitter.indent
	if indent < 0 {
		indent = 0
	}
	if !emitter.indention || emitter.column > indent || (emitter.column == indent && !emitter.whitespace) {
		if !emitter.putLineBreak() {
			return false
		}
	}
	for emitter.column < indent {
		if !emitter.put(' ') {
			return false
		}
	}
	emitter.whitespace = true
	return true
}

func (emitter *Emitter) writeIndicator(indicator string, need_whitespace, is_whitespace, is_indention bool) bool {
	if need_whitespace && !emitter.whitespace {
		if !emitter.put(' ') {
			return false
		}
	}
	if !emitter.writeAll(indicator) {
		return false
	}
	emitter.whitespace = is_whitespace
	emitter.indention = (emitter.indention && is_indention)
	emitter.OpenEnded = false
	return true
}

func (emitter *Emitter) writeAnchor(value string) bool {
	if !emitter.writeAll(value) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func (emitter *Emitter) writeTagHandle(value string) bool {
	if !emitter.whitespace {
		if !emitter.put(' ') {
			return false
		}
	}
	if !emitter.writeAll(value) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

const hexDigits = "0123456789ABCDEF"

func (emitter *Emitter) writeTagContent(value string, need_whitespace bool) bool {
	if need_whitespace && !emitter.whitespace {
		if !emitter.put(' ') {
			return false
		}
	}
	for i := 0; i < len(value); {
		r, w := utf8.DecodeRuneInString(value[i:])
		// Flow indicators are escaped so the tag reads back in any context.
		if isAlpha(r) || strings.ContainsRune(";/?:@&=+$_.~*'()", r) {
			if !emitter.write(value, &i) {
				return false
			}
			continue
		}
		for k := 0; k < w; k++ {
			octet := value[i]
			i++
			if !emitter.put('%') || !emitter.put(hexDigits[octet>>4]) || !emitter.put(hexDigits[octet&0x0f]) {
				return false
			}
		}
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func (emitter *Emitter) writePlainScalar(value string, allow_breaks bool) bool {
	if value != "" && !emitter.whitespace {
		if !emitter.put(' ') {
			return false
		}
	}

	spaces := false
	for i := 0; i < len(value); {
		if isSpace(runeAt(value, i)) {
			if allow_breaks && !spaces && emitter.column > emitter.best_width && !isSpace(runeAt(value, i+1)) {
				if !emitter.writeIndent() {
					return false
				}
				i++
			} else {
				if !emitter.write(value, &i) {
					return false
				}
			}
			spaces = true
		} else {
			if !emitter.write(value, &i) {
				return false
			}
			emitter.indention = false
			spaces = false
		}
	}

	if value != "" {
		emitter.whitespace = false
		emitter.indention = false
	}
	if emitter.root_context {
		emitter.OpenEnded = true
	}
	return true
}

func (emitter *Emitter) writeSingleQuotedScalar(value string, allow_breaks bool) bool {
	if !emitter.writeIndicator("'", true, false, false) {
		return false
	}

	spaces := false
	breaks := false
	for i := 0; i < len(value); {
		r := runeAt(value, i)
		if isSpace(r) {
			if allow_breaks && !spaces && emitter.column > emitter.best_width && i > 0 && i < len(value)-1 && !isSpace(runeAt(value, i+1)) {
				if !emitter.writeIndent() {
					return false
				}
				i++
			} else {
				if !emitter.write(value, &i) {
					return false
				}
			}
			spaces = true
		} else if r == '\n' {
			if !breaks {
				if !emitter.putLineBreak() {
					return false
				}
			}
			if !emitter.writeLineBreak(value, &i) {
				return false
			}
			breaks = true
		} else {
			if breaks {
				if !emitter.writeIndent() {
					return false
				}
			}
			if r == '\'' {
				if !emitter.put('\'') {
					return false
				}
			}
			if !emitter.write(value, &i) {
				return false
			}
			emitter.indention = false
			spaces = false
			breaks = false
		}
	}
	if breaks {
		if !emitter.writeIndent() {
			return false
		}
	}
	if !emitter.writeIndicator("'", false, false, false) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func (emitter *Emitter) writeDoubleQuotedScalar(value string, allow_breaks bool) bool {
	spaces := false
	if !emitter.writeIndicator("\"", true, false, false) {
		return false
	}

	for i := 0; i < len(value); {
		v, w := utf8.DecodeRuneInString(value[i:])
		if !isPrintable(v) || (!emitter.unicode && !isASCII(v)) ||
			isBOM(v) || v == '\n' || v == '"' || v == '\\' {
			i += w

			if !emitter.put('\\') {
				return false
			}

			var ok bool
			switch v {
			case 0x00:
				ok = emitter.put('0')
			case 0x07:
				ok = emitter.put('a')
			case 0x08:
				ok = emitter.put('b')
			case 0x09:
				ok = emitter.put('t')
			case 0x0A:
				ok = emitter.put('n')
			case 0x0b:
				ok = emitter.put('v')
			case 0x0c:
				ok = emitter.put('f')
			case 0x0d:
				ok = emitter.put('r')
			case 0x1b:
				ok = emitter.put('e')
			case 0x22:
				ok = emitter.put('"')
			case 0x5c:
				ok = emitter.put('\\')
			case 0x85:
				ok = emitter.put('N')
			case 0xA0:
				ok = emitter.put('_')
			case 0x2028:
				ok = emitter.put('L')
			case 0x2029:
				ok = emitter.put('P')
			default:
				if v <= 0xFF {
					ok = emitter.put('x')
					w = 2
				} else if v <= 0xFFFF {
					ok = emitter.put('u')
					w = 4
				} else {
					ok = emitter.put('U')
					w = 8
				}
				for k := (w - 1) * 4; ok && k >= 0; k -= 4 {
					ok = emitter.put(hexDigits[(v>>uint(k))&0x0F])
				}
			}
			if !ok {
				return false
			}
			spaces = false
		} else if isSpace(v) {
			if allow_breaks && !spaces && emitter.column > emitter.best_width && i > 0 && i < len(value)-1 {
				if !emitter.writeIndent() {
					return false
				}
				if isSpace(runeAt(value, i+1)) {
					if !emitter.put('\\') {
						return false
					}
				}
				i += w
			} else if !emitter.write(value, &i) {
				return false
			}
			spaces = true
		} else {
			if !emitter.write(value, &i) {
				return false
			}
			spaces = false
		}
	}
	if !emitter.writeIndicator("\"", false, false, false) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func (emitter *Emitter) writeBlockScalarHints(value string) bool {
	if isSpace(runeAt(value, 0)) || runeAt(value, 0) == '\n' {
		// The hint is relative to the indentation of the enclosing node.
		parent := max(emitter.indents[len(emitter.indents)-1], 0)
		indent_hint := string(rune('0' + emitter.indent - parent))
		if !emitter.writeIndicator(indent_hint, false, false, false) {
			return false
		}
	}

	emitter.OpenEnded = false

	var chomp_hint string
	switch {
	case !strings.HasSuffix(value, "\n"):
		chomp_hint = "-"
	case len(value) == 1 || strings.HasSuffix(value, "\n\n"):
		chomp_hint = "+"
		emitter.OpenEnded = true
	}
	if chomp_hint != "" {
		if !emitter.writeIndicator(chomp_hint, false, false, false) {
			return false
		}
	}
	return true
}

func (emitter *Emitter) writeLiteralScalar(value string) bool {
	if !emitter.writeIndicator("|", true, false, false) {
		return false
	}
	if !emitter.writeBlockScalarHints(value) {
		return false
	}
	if !emitter.putLineBreak() {
		return false
	}
	emitter.whitespace = true
	breaks := true
	for i := 0; i < len(value); {
		if value[i] == '\n' {
			if !emitter.writeLineBreak(value, &i) {
				return false
			}
			breaks = true
		} else {
			if breaks {
				if !emitter.writeIndent() {
					return false
				}
			}
			if !emitter.write(value, &i) {
				return false
			}
			emitter.indention = false
			breaks = false
		}
	}
	return true
}

func (emitter *Emitter) writeFoldedScalar(value string) bool {
	if !emitter.writeIndicator(">", true, false, false) {
		return false
	}
	if !emitter.writeBlockScalarHints(value) {
		return false
	}
	if !emitter.putLineBreak() {
		return false
	}
	emitter.whitespace = true

	breaks := true
	leading_spaces := true
	for i := 0; i < len(value); {
		if value[i] == '\n' {
			if !breaks && !leading_spaces {
				k := i
				for k < len(value) && value[k] == '\n' {
					k++
				}
				if !isBlankOrZero(runeAt(value, k)) {
					if !emitter.putLineBreak() {
						return false
					}
				}
			}
			if !emitter.writeLineBreak(value, &i) {
				return false
			}
			breaks = true
		} else {
			if breaks {
				if !emitter.writeIndent() {
					return false
				}
				leading_spaces = isBlank(runeAt(value, i))
			}
			if !breaks && isSpace(runeAt(value, i)) && !isSpace(runeAt(value, i+1)) && emitter.column > emitter.best_width {
				if !emitter.writeIndent() {
					return false
				}
				i++
			} else {
				if !emitter.write(value, &i) {
					return false
				}
			}
			emitter.indention = false
			breaks = false
		}
	}
	return true
}
