// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Serializer stage: Converts a document tree (Nodes) to an event stream.
// Walks the node tree and produces events for the emitter.

package libyaml

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SerializerOptions configures the output of a Serializer.
type SerializerOptions struct {
	// Indent is the number of spaces per nesting level, 2 to 9.
	Indent int

	// LineWidth is the preferred line width. Zero or negative disables
	// line folding.
	LineWidth int

	// MultilineStrings writes strings holding a line break as literal block
	// scalars instead of double-quoted ones.
	MultilineStrings bool
}

// Serializer handles serialization of YAML nodes to event stream.
type Serializer struct {
	Emitter          Emitter
	multilineStrings bool
	doneInit         bool
}

// NewSerializer creates a new Serializer writing to w.
func NewSerializer(w io.Writer, opts SerializerOptions) *Serializer {
	emitter := NewEmitter(w)
	if opts.Indent != 0 {
		emitter.SetIndent(opts.Indent)
	}
	if opts.LineWidth > 0 {
		emitter.SetWidth(opts.LineWidth)
	}
	return &Serializer{
		Emitter:          emitter,
		multilineStrings: opts.MultilineStrings,
	}
}

func (s *Serializer) init() error {
	if s.doneInit {
		return nil
	}
	s.doneInit = true
	return s.emit(NewStreamStartEvent())
}

// Finish ends the stream and flushes the output.
func (s *Serializer) Finish() error {
	if err := s.init(); err != nil {
		return err
	}
	s.Emitter.OpenEnded = false
	return s.emit(NewStreamEndEvent())
}

func (s *Serializer) emit(event Event) error {
	return s.Emitter.Emit(&event)
}

// Serialize walks a Node tree and emits events to produce YAML output. A
// node that is not a document is written as the root of a new document.
func (s *Serializer) Serialize(node *Node) error {
	if err := s.init(); err != nil {
		return err
	}
	if node != nil && node.Kind == DocumentNode {
		return s.node(node)
	}
	if err := s.emit(NewDocumentStartEvent(nil, nil, true)); err != nil {
		return err
	}
	if err := s.node(node); err != nil {
		return err
	}
	return s.emit(NewDocumentEndEvent(true))
}

// node serializes a Node tree into YAML events.
func (s *Serializer) node(node *Node) error {
	// Missing nodes are written as null.
	if node == nil || node.Kind == 0 && node.IsZero() {
		return s.emit(NewScalarEvent("", longTag(nullTag), "", true, false, PLAIN_SCALAR_STYLE))
	}

	tag := node.ShortTag()
	explicit := node.Style&TaggedStyle != 0

	switch node.Kind {
	case DocumentNode:
		if len(node.Content) > 1 {
			return EmitterError{Message: fmt.Sprintf("document node has %d roots", len(node.Content))}
		}
		if err := s.emit(NewDocumentStartEvent(nil, nil, true)); err != nil {
			return err
		}
		var root *Node
		if len(node.Content) == 1 {
			root = node.Content[0]
		}
		if err := s.node(root); err != nil {
			return err
		}
		return s.emit(NewDocumentEndEvent(true))

	case SequenceNode:
		style := BLOCK_SEQUENCE_STYLE
		if node.Style&FlowStyle != 0 {
			style = FLOW_SEQUENCE_STYLE
		}
		implicit := tag == seqTag && !explicit
		if err := s.emit(NewSequenceStartEvent(node.Anchor, longTag(tag), implicit, style)); err != nil {
			return err
		}
		for _, child := range node.Content {
			if err := s.node(child); err != nil {
				return err
			}
		}
		return s.emit(NewSequenceEndEvent())

	case MappingNode:
		if len(node.Content)%2 != 0 {
			return EmitterError{Message: fmt.Sprintf("mapping node at line %d has an odd number of children", node.Line)}
		}
		style := BLOCK_MAPPING_STYLE
		if node.Style&FlowStyle != 0 {
			style = FLOW_MAPPING_STYLE
		}
		implicit := tag == mapTag && !explicit
		if err := s.emit(NewMappingStartEvent(node.Anchor, longTag(tag), implicit, style)); err != nil {
			return err
		}
		for _, child := range node.Content {
			if err := s.node(child); err != nil {
				return err
			}
		}
		return s.emit(NewMappingEndEvent())

	case AliasNode:
		return s.emit(NewAliasEvent(node.Value))

	case ScalarNode:
		value := node.Value
		if !utf8.ValidString(value) {
			return EmitterError{Message: fmt.Sprintf("cannot emit invalid UTF-8 data as %s", tag)}
		}

		style := PLAIN_SCALAR_STYLE
		switch {
		case node.Style&DoubleQuotedStyle != 0:
			style = DOUBLE_QUOTED_SCALAR_STYLE
		case node.Style&SingleQuotedStyle != 0:
			style = SINGLE_QUOTED_SCALAR_STYLE
		case node.Style&LiteralStyle != 0:
			style = LITERAL_SCALAR_STYLE
		case node.Style&FoldedStyle != 0:
			style = FOLDED_SCALAR_STYLE
		case strings.Contains(value, "\n"):
			if s.multilineStrings {
				style = LITERAL_SCALAR_STYLE
			} else {
				style = DOUBLE_QUOTED_SCALAR_STYLE
			}
		}

		// A plain scalar must read back with the same tag, and a quoted one
		// always reads back as a string.
		plainImplicit := !explicit && resolve(value) == tag && !(tag == strTag && needsQuoting(value))
		quotedImplicit := !explicit && tag == strTag
		return s.emit(NewScalarEvent(node.Anchor, longTag(tag), value, plainImplicit, quotedImplicit, style))
	}
	return EmitterError{Message: fmt.Sprintf("cannot represent node with unknown kind %d", node.Kind)}
}
