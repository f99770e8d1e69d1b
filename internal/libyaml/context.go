// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Context frames: the nesting stack owned by the parser.
// Every collection the parser opens pushes a frame and every end event pops
// one. Flow frames must be closed by the bracket of their own kind.

package libyaml

import "fmt"

// FrameKind identifies the construct a context frame belongs to.
type FrameKind int8

const (
	DocumentFrame FrameKind = iota
	BlockMappingFrame
	BlockSequenceFrame
	FlowMappingFrame
	FlowSequenceFrame
)

var frameKindStrings = []string{
	DocumentFrame:      "document",
	BlockMappingFrame:  "block mapping",
	BlockSequenceFrame: "block sequence",
	FlowMappingFrame:   "flow mapping",
	FlowSequenceFrame:  "flow sequence",
}

func (k FrameKind) String() string {
	if k < 0 || int(k) >= len(frameKindStrings) {
		return fmt.Sprintf("frame kind %d", int(k))
	}
	return frameKindStrings[k]
}

// Frame is one level of nesting.
type Frame struct {
	Kind FrameKind

	// Indent is the column block content must start at. It is -1 for flow
	// frames and documents.
	Indent int

	// ImplicitMappings counts the single-pair mappings currently open inside
	// a flow sequence, as in "[a: b, c]".
	ImplicitMappings int

	// Implicit marks a flow mapping that was opened without a '{'.
	Implicit bool

	// Mark is where the frame was opened.
	Mark Mark
}

func (parser *Parser) pushFrame(kind FrameKind, indent int, mark Mark) {
	parser.frames = append(parser.frames, Frame{Kind: kind, Indent: indent, Mark: mark})
}

// topFrame returns the innermost frame, or nil when none is open.
func (parser *Parser) topFrame() *Frame {
	if len(parser.frames) == 0 {
		return nil
	}
	return &parser.frames[len(parser.frames)-1]
}

// popFrame closes the innermost frame, which must be of the given kind.
func (parser *Parser) popFrame(kind FrameKind, mark Mark) error {
	top := parser.topFrame()
	if top == nil || top.Kind != kind || top.Implicit {
		return parser.frameMismatch(kind, mark)
	}
	parser.frames = parser.frames[:len(parser.frames)-1]
	return nil
}

func (parser *Parser) frameMismatch(kind FrameKind, mark Mark) error {
	top := parser.topFrame()
	errKind := UnexpectedToken
	if kind == FlowMappingFrame || kind == FlowSequenceFrame {
		errKind = UnbalancedFlowContext
	}
	if top == nil {
		return formatParserError(errKind,
			fmt.Sprintf("found the end of a %s outside of any collection", kind), mark)
	}
	return formatParserErrorContext(errKind,
		fmt.Sprintf("while parsing a %s", top.Kind), top.Mark,
		fmt.Sprintf("found the end of a %s", kind), mark)
}

// openImplicitMapping starts a single-pair mapping inside the innermost
// flow sequence. While it is open the implicit frame is on top, so a second
// entry cannot be opened until closeImplicitMapping runs.
func (parser *Parser) openImplicitMapping(mark Mark) error {
	top := parser.topFrame()
	if top == nil {
		return formatParserError(UnbalancedFlowContext,
			"found an implicit mapping entry outside of a flow sequence", mark)
	}
	if top.Kind != FlowSequenceFrame {
		return formatParserErrorContext(UnbalancedFlowContext,
			fmt.Sprintf("while parsing a %s", top.Kind), top.Mark,
			"found an implicit mapping entry outside of a flow sequence", mark)
	}
	top.ImplicitMappings++
	parser.frames = append(parser.frames, Frame{
		Kind:     FlowMappingFrame,
		Indent:   -1,
		Implicit: true,
		Mark:     mark,
	})
	return nil
}

// closeImplicitMapping ends the single-pair mapping opened by
// openImplicitMapping and releases it from the enclosing sequence.
func (parser *Parser) closeImplicitMapping(mark Mark) error {
	n := len(parser.frames)
	if n < 2 || !parser.frames[n-1].Implicit || parser.frames[n-2].Kind != FlowSequenceFrame {
		return formatParserError(UnbalancedFlowContext,
			"found the end of an implicit mapping outside of a flow sequence", mark)
	}
	seq := &parser.frames[n-2]
	if seq.ImplicitMappings == 0 {
		return formatParserErrorContext(UnbalancedFlowContext,
			"while parsing a flow sequence", seq.Mark,
			"found the end of an implicit mapping that was never opened", mark)
	}
	seq.ImplicitMappings--
	parser.frames = parser.frames[:n-1]
	return nil
}

// Frames returns a copy of the open context frames, outermost first.
func (parser *Parser) Frames() []Frame {
	return append([]Frame(nil), parser.frames...)
}
